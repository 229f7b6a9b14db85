package user

import "context"

// Repository defines persistence operations for the user aggregate.
type Repository interface {
	// Create inserts a new user and assigns its ID.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID.
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *User) error

	// ExistsByEmail reports whether a user with the email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
