package usecases

import (
	"context"

	"triagedesk/internal/shared/authorization"
)

// PasswordHasher hashes and verifies login credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues signed access tokens.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (token string, expiresIn int64, err error)
}

// RegisterExecutor creates patient accounts.
type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*UserResult, error)
}

// LoginExecutor authenticates a user and issues a token.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// GetProfileExecutor returns the authenticated user's profile.
type GetProfileExecutor interface {
	Execute(ctx context.Context, userID uint) (*UserResult, error)
}

// UpdateProfileExecutor edits contact details on the authenticated account.
type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UserResult, error)
}
