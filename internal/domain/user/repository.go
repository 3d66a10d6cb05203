package user

import (
	"context"
)

// UserRepository defines data access for console logins.
type UserRepository interface {
	// GetByEmail retrieves a user by email for login.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, id string) (User, error)
}
