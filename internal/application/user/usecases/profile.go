package usecases

import (
	"context"
	"time"

	"triagedesk/internal/domain/user"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// GetProfileUseCase returns the authenticated user's own profile.
type GetProfileUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

func NewGetProfileUseCase(repo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{repo: repo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*UserResult, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return newUserResult(account), nil
}

// UpdateProfileCommand edits contact details. Nil fields are untouched.
type UpdateProfileCommand struct {
	UserID      uint
	Phone       *string
	DateOfBirth *string // YYYY-MM-DD
}

// UpdateProfileUseCase updates phone and date of birth on the caller's own
// account.
type UpdateProfileUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

func NewUpdateProfileUseCase(repo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{repo: repo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.repo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	phone := account.Phone()
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}

	dob := account.DateOfBirth()
	if cmd.DateOfBirth != nil {
		parsed, err := time.Parse("2006-01-02", *cmd.DateOfBirth)
		if err != nil {
			return nil, errors.NewValidationError("date of birth must be in YYYY-MM-DD format")
		}
		dob = &parsed
	}

	account.UpdateProfile(phone, dob)

	if err := uc.repo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)

	return newUserResult(account), nil
}
