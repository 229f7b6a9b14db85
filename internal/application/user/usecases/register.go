package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"triagedesk/internal/domain/user"
	vo "triagedesk/internal/domain/user/valueobjects"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// RegisterCommand represents a self-service patient signup. Phone and
// DateOfBirth (YYYY-MM-DD) are optional.
type RegisterCommand struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	DateOfBirth *string
}

// RegisterUseCase creates a patient account. Staff and admin accounts are
// provisioned out of band, never through this endpoint.
type RegisterUseCase struct {
	repo   user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

func NewRegisterUseCase(repo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*UserResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(strings.TrimSpace(cmd.Name)) == 0 {
		return nil, errors.NewValidationError("name is required")
	}

	var dob *time.Time
	if cmd.DateOfBirth != nil && *cmd.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *cmd.DateOfBirth)
		if err != nil {
			return nil, errors.NewValidationError("date of birth must be in YYYY-MM-DD format")
		}
		dob = &parsed
	}

	exists, err := uc.repo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check existing email", "error", err)
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(email, hash, strings.TrimSpace(cmd.Name), authorization.RolePatient)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Phone != "" || dob != nil {
		newUser.UpdateProfile(strings.TrimSpace(cmd.Phone), dob)
	}

	if err := uc.repo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "email", email.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email.String())

	return newUserResult(newUser), nil
}
