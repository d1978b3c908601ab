package user

import "context"

// UserRepository defines data access methods for portal accounts.
type UserRepository interface {
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)
}
