package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid password",
			input: "secure.pass1",
		},
		{
			name:    "too short",
			input:   "abc123",
			wantErr: true,
		},
		{
			name:    "too long for bcrypt",
			input:   strings.Repeat("a", 70) + "123",
			wantErr: true,
		},
		{
			name:    "no numbers",
			input:   "onlyletters",
			wantErr: true,
		},
		{
			name:    "no letters",
			input:   "1234567890",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPassword(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}
