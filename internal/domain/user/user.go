package user

import (
	"fmt"
	"strings"
	"time"

	vo "triagedesk/internal/domain/user/valueobjects"
	"triagedesk/internal/shared/authorization"
)

// User is the account aggregate. Patients register themselves; staff and
// admin accounts are provisioned out of band.
type User struct {
	id           uint
	email        *vo.Email
	passwordHash string
	name         string
	phone        string
	dateOfBirth  *time.Time
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
	version      int
}

func NewUser(email *vo.Email, passwordHash, name string, role authorization.UserRole) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		name:         strings.TrimSpace(name),
		role:         role,
		createdAt:    now,
		updatedAt:    now,
		version:      1,
	}, nil
}

func ReconstructUser(
	id uint,
	email *vo.Email,
	passwordHash string,
	name string,
	phone string,
	dateOfBirth *time.Time,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
	version int,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		dateOfBirth:  dateOfBirth,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Name() string                 { return u.name }
func (u *User) Phone() string                { return u.phone }
func (u *User) DateOfBirth() *time.Time      { return u.dateOfBirth }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }
func (u *User) Version() int                 { return u.version }

// SetID is for persistence layer use after the initial insert.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile sets the optional contact fields collected at registration
// or edited later.
func (u *User) UpdateProfile(phone string, dateOfBirth *time.Time) {
	u.phone = strings.TrimSpace(phone)
	u.dateOfBirth = dateOfBirth
	u.updatedAt = time.Now()
	u.version++
}

// ChangePasswordHash replaces the stored hash. Hashing happens elsewhere;
// the aggregate never sees plaintext.
func (u *User) ChangePasswordHash(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	u.version++
	return nil
}

func (u *User) CanReviewCases() bool {
	return u.role.CanReviewCases()
}
