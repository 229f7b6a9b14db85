package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/shared/errors"
)

func TestParseAssessment(t *testing.T) {
	t.Run("complete response", func(t *testing.T) {
		raw := `{
			"structuredData": {
				"chiefComplaint": "chest pain",
				"symptoms": ["crushing chest pain", "shortness of breath"],
				"duration": "20 minutes",
				"onset": "sudden",
				"severity": "critical",
				"emotionalState": "panicked"
			},
			"urgencyLevel": "EMERGENCY",
			"redFlags": ["possible cardiac event"],
			"aiSummary": "Acute chest pain with dyspnea, possible MI",
			"rationale": "Sudden onset crushing chest pain is an emergency presentation",
			"recommendedAction": "Call 911 immediately"
		}`

		a, err := parseAssessment(raw)

		require.NoError(t, err)
		assert.Equal(t, vo.UrgencyEmergency, a.UrgencyLevel())
		assert.Equal(t, "Acute chest pain with dyspnea, possible MI", a.AISummary())
		assert.Equal(t, "chest pain", a.StructuredData().ChiefComplaint)
		// Keyword scan of the symptoms adds flags the model missed.
		assert.Contains(t, a.RedFlags(), "possible cardiac event")
		assert.Contains(t, a.RedFlags(), "chest pain")
	})

	t.Run("fenced json accepted", func(t *testing.T) {
		raw := "```json\n{\"urgencyLevel\": \"SELF_CARE\", \"aiSummary\": \"mild cold\"}\n```"

		a, err := parseAssessment(raw)

		require.NoError(t, err)
		assert.Equal(t, vo.UrgencySelfCare, a.UrgencyLevel())
	})

	t.Run("unrecognized urgency coerced to clinic visit", func(t *testing.T) {
		raw := `{"urgencyLevel": "SEVERE", "aiSummary": "unclear presentation"}`

		a, err := parseAssessment(raw)

		require.NoError(t, err)
		assert.Equal(t, vo.UrgencyClinicVisit, a.UrgencyLevel())
	})

	t.Run("missing urgency level rejected", func(t *testing.T) {
		raw := `{"aiSummary": "summary without classification"}`

		_, err := parseAssessment(raw)

		require.Error(t, err)
		assert.True(t, errors.IsClassificationError(err))
	})

	t.Run("missing summary rejected", func(t *testing.T) {
		raw := `{"urgencyLevel": "SELF_CARE"}`

		_, err := parseAssessment(raw)

		require.Error(t, err)
		assert.True(t, errors.IsClassificationError(err))
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := parseAssessment("the patient should rest")

		require.Error(t, err)
		assert.True(t, errors.IsClassificationError(err))
	})

	t.Run("defaults for optional fields", func(t *testing.T) {
		raw := `{"urgencyLevel": "CLINIC_VISIT", "aiSummary": "persistent cough"}`

		a, err := parseAssessment(raw)

		require.NoError(t, err)
		assert.Equal(t, "No rationale provided", a.Rationale())
		assert.Equal(t, "Please consult with a healthcare provider", a.RecommendedAction())
		assert.Empty(t, a.RedFlags())
	})
}

func TestIsAllowedAudioMIMETypeBasic(t *testing.T) {
	assert.True(t, IsAllowedAudioMIMEType("audio/mpeg"))
	assert.True(t, IsAllowedAudioMIMEType("audio/webm;codecs=opus"))
	assert.True(t, IsAllowedAudioMIMEType("Audio/WAV"))
	assert.False(t, IsAllowedAudioMIMEType("video/mp4"))
	assert.False(t, IsAllowedAudioMIMEType("application/octet-stream"))
	assert.False(t, IsAllowedAudioMIMEType(""))
}
