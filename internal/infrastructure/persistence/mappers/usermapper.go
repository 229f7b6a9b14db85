package mappers

import (
	"fmt"
	"time"

	"triagedesk/internal/domain/user"
	uservo "triagedesk/internal/domain/user/valueobjects"
	"triagedesk/internal/infrastructure/persistence/models"
	"triagedesk/internal/shared/authorization"
)

// UserMapper converts between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		Version:      u.Version(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}

	if u.DateOfBirth() != nil {
		dob := u.DateOfBirth().UnixMilli()
		model.DateOfBirth = &dob
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := uservo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email for user %d: %w", model.ID, err)
	}

	var dob *time.Time
	if model.DateOfBirth != nil {
		t := millisToTime(*model.DateOfBirth)
		dob = &t
	}

	return user.ReconstructUser(
		model.ID,
		email,
		model.PasswordHash,
		model.Name,
		model.Phone,
		dob,
		authorization.ParseUserRole(model.Role),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		model.Version,
	)
}
