package usecases

import (
	"context"
	"fmt"

	"triagedesk/internal/domain/user"
	vo "triagedesk/internal/domain/user/valueobjects"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// LoginCommand carries the submitted credentials.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult is the issued session.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"`
	User      *UserResult `json:"user"`
}

// LoginUseCase authenticates a user. Unknown accounts and wrong passwords
// produce the same error so emails cannot be enumerated.
type LoginUseCase struct {
	repo   user.Repository
	hasher PasswordHasher
	tokens TokenService
	logger logger.Interface
}

func NewLoginUseCase(repo user.Repository, hasher PasswordHasher, tokens TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	account, err := uc.repo.GetByEmail(ctx, email.String())
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("login attempt for unknown email", "email", email.String())
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to load account for login", "error", err)
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Generate(account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", account.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", account.Role().String())

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      newUserResult(account),
	}, nil
}
