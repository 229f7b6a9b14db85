package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated, normalized email address.
type Email struct {
	value string
}

// NewEmail validates and normalizes an email address. The stored value is
// always lowercase with surrounding whitespace removed.
func NewEmail(value string) (*Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return nil, fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}

	return &Email{value: normalized}, nil
}

func (e *Email) String() string {
	return e.value
}

func (e *Email) Equals(other *Email) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value == other.value
}

// Domain returns the part after the @ sign.
func (e *Email) Domain() string {
	parts := strings.Split(e.value, "@")
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
