package triage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/shared/authorization"
)

func mustAssessment(t *testing.T, level vo.UrgencyLevel) *Assessment {
	t.Helper()
	a, err := NewAssessment(level, "clinical summary", StructuredData{ChiefComplaint: "headache"}, []string{}, "", "")
	require.NoError(t, err)
	return a
}

func newOpenCase(t *testing.T, level vo.UrgencyLevel) *Case {
	t.Helper()
	c, err := NewCase(1, "I have had a mild headache since this morning", vo.InputText, nil, mustAssessment(t, level))
	require.NoError(t, err)
	return c
}

func TestNormalizeNarrative(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "trims surrounding whitespace",
			input: "  persistent cough for two weeks  ",
			want:  "persistent cough for two weeks",
		},
		{
			name:    "too short rejected",
			input:   "headache",
			wantErr: true,
		},
		{
			name:    "whitespace only rejected",
			input:   "              ",
			wantErr: true,
		},
		{
			name:    "nine chars after trim rejected",
			input:   "  flu signs  ",
			wantErr: true,
		},
		{
			name:  "exactly ten chars accepted",
			input: "flu sympto",
			want:  "flu sympto",
		},
		{
			name:    "over maximum length rejected",
			input:   strings.Repeat("a", MaxNarrativeLength+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNarrative(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCase(t *testing.T) {
	assessment := func() *Assessment {
		a, err := NewAssessment(vo.UrgencyEmergency, "crushing chest pain, possible MI", StructuredData{}, []string{"chest pain"}, "classic presentation", "call 911")
		require.NoError(t, err)
		return a
	}

	t.Run("success", func(t *testing.T) {
		transcript := "I have severe chest pain"
		c, err := NewCase(42, "I have had severe crushing chest pain for 20 minutes", vo.InputVoice, &transcript, assessment())

		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, c.Status())
		assert.Equal(t, uint(42), c.PatientID())
		assert.Equal(t, vo.UrgencyEmergency, c.UrgencyLevel())
		assert.Equal(t, []string{"chest pain"}, c.RedFlags())
		assert.Nil(t, c.ResolvedAt())
		assert.Equal(t, 1, c.Version())
		assert.NotNil(t, c.Transcript())
	})

	t.Run("missing patient", func(t *testing.T) {
		_, err := NewCase(0, "I have had severe crushing chest pain for 20 minutes", vo.InputText, nil, assessment())
		assert.Error(t, err)
	})

	t.Run("missing assessment", func(t *testing.T) {
		_, err := NewCase(42, "I have had severe crushing chest pain for 20 minutes", vo.InputText, nil, nil)
		assert.Error(t, err)
	})

	t.Run("invalid input type", func(t *testing.T) {
		_, err := NewCase(42, "I have had severe crushing chest pain for 20 minutes", vo.InputType("video"), nil, assessment())
		assert.Error(t, err)
	})
}

func TestCase_ChangeStatus(t *testing.T) {
	t.Run("resolve sets resolvedAt exactly once", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencyClinicVisit)

		require.NoError(t, c.ChangeStatus(vo.StatusInProgress))
		assert.Nil(t, c.ResolvedAt())

		require.NoError(t, c.ChangeStatus(vo.StatusResolved))
		require.NotNil(t, c.ResolvedAt())

		first := *c.ResolvedAt()
		// Re-applying the same status is a no-op.
		require.NoError(t, c.ChangeStatus(vo.StatusResolved))
		assert.Equal(t, first, *c.ResolvedAt())
	})

	t.Run("in progress never sets resolvedAt", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencyClinicVisit)

		require.NoError(t, c.ChangeStatus(vo.StatusInProgress))
		assert.Nil(t, c.ResolvedAt())
	})

	t.Run("terminal states reject transitions", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencyClinicVisit)
		require.NoError(t, c.ChangeStatus(vo.StatusClosed))

		assert.Error(t, c.ChangeStatus(vo.StatusOpen))
		assert.Error(t, c.ChangeStatus(vo.StatusInProgress))
		assert.Error(t, c.ChangeStatus(vo.StatusResolved))
	})

	t.Run("open cannot jump to resolved", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencyClinicVisit)
		assert.Error(t, c.ChangeStatus(vo.StatusResolved))
	})

	t.Run("version increments on transition", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencyClinicVisit)
		require.NoError(t, c.ChangeStatus(vo.StatusInProgress))
		assert.Equal(t, 2, c.Version())
	})
}

func TestCase_OverrideUrgency(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencySelfCare)

		require.NoError(t, c.OverrideUrgency(vo.UrgencyUrgentVisit, "patient is immunocompromised"))
		assert.Equal(t, vo.UrgencyUrgentVisit, c.UrgencyLevel())
		assert.True(t, c.StaffOverride())
		assert.Equal(t, "patient is immunocompromised", c.OverrideReason())
		assert.Equal(t, 2, c.Version())
	})

	t.Run("reason required", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencySelfCare)
		assert.Error(t, c.OverrideUrgency(vo.UrgencyUrgentVisit, "   "))
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		c := newOpenCase(t, vo.UrgencySelfCare)
		assert.Error(t, c.OverrideUrgency(vo.UrgencyLevel("SEVERE"), "reason"))
	})
}

func TestCase_CanBeViewedBy(t *testing.T) {
	c := newOpenCase(t, vo.UrgencyClinicVisit)

	assert.True(t, c.CanBeViewedBy(1, authorization.RolePatient))
	assert.False(t, c.CanBeViewedBy(2, authorization.RolePatient))
	assert.True(t, c.CanBeViewedBy(2, authorization.RoleStaff))
	assert.True(t, c.CanBeViewedBy(2, authorization.RoleAdmin))
}

func TestReconstructCase_DefaultsRedFlags(t *testing.T) {
	now := time.Now()
	c, err := ReconstructCase(
		7, "TRI-20260830-0001", 1,
		"I have had a mild headache since this morning",
		vo.InputText, nil,
		vo.UrgencySelfCare, "summary", StructuredData{}, nil,
		"rationale", "rest", vo.StatusOpen, "", false, "",
		nil, 1, now, now,
	)

	require.NoError(t, err)
	assert.NotNil(t, c.RedFlags())
	assert.Empty(t, c.RedFlags())
}
