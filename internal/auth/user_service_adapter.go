package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserServiceAdapter implements the seats UserService interface using the auth repository.
// This adapter prevents import cycles while allowing the seats service to verify holders.
type UserServiceAdapter struct {
	repo Repository
}

// NewUserServiceAdapter creates a new user service adapter
func NewUserServiceAdapter(repo Repository) *UserServiceAdapter {
	return &UserServiceAdapter{
		repo: repo,
	}
}

// UserExists reports whether a user with the given ID is registered.
func (usa *UserServiceAdapter) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return usa.repo.UserExists(ctx, userID.String())
}

// GetUserByID fetches user details by ID and returns email, firstName, lastName.
// This implements the UserDirectory interface expected by the notifications service.
func (usa *UserServiceAdapter) GetUserByID(ctx context.Context, userID uuid.UUID) (email, firstName, lastName string, err error) {
	user, err := usa.repo.GetUserByID(ctx, userID.String())
	if err != nil {
		return "", "", "", fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	return user.Email, user.FirstName, user.LastName, nil
}
