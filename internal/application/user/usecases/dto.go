package usecases

import (
	"time"

	"triagedesk/internal/domain/user"
)

// UserResult is the account representation returned to clients. It never
// carries the password hash.
type UserResult struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Role        string  `json:"role"`
	CreatedAt   string  `json:"created_at"`
}

func newUserResult(u *user.User) *UserResult {
	var dob *string
	if u.DateOfBirth() != nil {
		formatted := u.DateOfBirth().Format("2006-01-02")
		dob = &formatted
	}

	return &UserResult{
		ID:          u.ID(),
		Email:       u.Email().String(),
		Name:        u.Name(),
		Phone:       u.Phone(),
		DateOfBirth: dob,
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt().Format(time.RFC3339),
	}
}
