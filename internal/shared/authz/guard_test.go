package authz

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestRequireOwner(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	if err := RequireOwner(owner, owner); err != nil {
		t.Errorf("RequireOwner(owner, owner) = %v, want nil", err)
	}

	err := RequireOwner(stranger, owner)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("RequireOwner(stranger, owner) = %v, want ErrForbidden", err)
	}
}
