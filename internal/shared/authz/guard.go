package authz

import (
	"errors"

	"github.com/google/uuid"
)

// ErrForbidden is returned when the acting identity does not own the resource.
var ErrForbidden = errors.New("forbidden: actor does not own this resource")

// RequireOwner verifies that the acting identity matches the resource owner.
// Role-based gating (reviewer access) is handled separately by the JWT
// middleware; this guard only covers ownership.
func RequireOwner(actor, owner uuid.UUID) error {
	if actor != owner {
		return ErrForbidden
	}
	return nil
}
