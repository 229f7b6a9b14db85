package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCaseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CaseStatus
		wantErr bool
	}{
		{"open", "OPEN", StatusOpen, false},
		{"in progress", "IN_PROGRESS", StatusInProgress, false},
		{"resolved", "RESOLVED", StatusResolved, false},
		{"closed", "CLOSED", StatusClosed, false},
		{"invalid", "ARCHIVED", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCaseStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCaseStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from CaseStatus
		to   CaseStatus
		want bool
	}{
		{"open to in progress", StatusOpen, StatusInProgress, true},
		{"open to closed", StatusOpen, StatusClosed, true},
		{"open to resolved skips review", StatusOpen, StatusResolved, false},
		{"in progress to resolved", StatusInProgress, StatusResolved, true},
		{"in progress to closed", StatusInProgress, StatusClosed, true},
		{"in progress back to open", StatusInProgress, StatusOpen, false},
		{"resolved is terminal", StatusResolved, StatusInProgress, false},
		{"resolved to closed rejected", StatusResolved, StatusClosed, false},
		{"closed is terminal", StatusClosed, StatusOpen, false},
		{"closed to in progress rejected", StatusClosed, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCaseStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusOpen.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
}
