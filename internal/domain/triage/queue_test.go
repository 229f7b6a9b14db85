package triage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "triagedesk/internal/domain/triage/valueobjects"
)

func queueCase(t *testing.T, id uint, level vo.UrgencyLevel, createdAt time.Time) *Case {
	t.Helper()
	c, err := ReconstructCase(
		id, "", 1,
		"symptom narrative long enough to pass validation",
		vo.InputText, nil,
		level, "summary", StructuredData{}, nil,
		"", "", vo.StatusOpen, "", false, "",
		nil, 1, createdAt, createdAt,
	)
	require.NoError(t, err)
	return c
}

func rankedIDs(cases []*Case) []uint {
	ids := make([]uint, len(cases))
	for i, c := range cases {
		ids[i] = c.ID()
	}
	return ids
}

func TestRankCases(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	t.Run("emergency first regardless of submission order", func(t *testing.T) {
		cases := []*Case{
			queueCase(t, 1, vo.UrgencySelfCare, base),
			queueCase(t, 2, vo.UrgencyClinicVisit, base.Add(time.Minute)),
			queueCase(t, 3, vo.UrgencyEmergency, base.Add(2*time.Minute)),
			queueCase(t, 4, vo.UrgencyUrgentVisit, base.Add(3*time.Minute)),
		}

		ranked := RankCases(cases)

		assert.Equal(t, []uint{3, 4, 2, 1}, rankedIDs(ranked))
	})

	t.Run("self care always last among mixed urgencies", func(t *testing.T) {
		cases := []*Case{
			queueCase(t, 1, vo.UrgencySelfCare, base.Add(time.Hour)),
			queueCase(t, 2, vo.UrgencyUrgentVisit, base),
		}

		ranked := RankCases(cases)

		assert.Equal(t, vo.UrgencySelfCare, ranked[len(ranked)-1].UrgencyLevel())
	})

	t.Run("newest first within a tier", func(t *testing.T) {
		cases := []*Case{
			queueCase(t, 1, vo.UrgencyClinicVisit, base),
			queueCase(t, 2, vo.UrgencyClinicVisit, base.Add(time.Minute)),
			queueCase(t, 3, vo.UrgencyClinicVisit, base.Add(2*time.Minute)),
		}

		ranked := RankCases(cases)

		assert.Equal(t, []uint{3, 2, 1}, rankedIDs(ranked))
	})

	t.Run("re-ranking is idempotent", func(t *testing.T) {
		cases := []*Case{
			queueCase(t, 1, vo.UrgencyClinicVisit, base),
			queueCase(t, 2, vo.UrgencyEmergency, base.Add(time.Minute)),
			queueCase(t, 3, vo.UrgencySelfCare, base.Add(2*time.Minute)),
		}

		once := RankCases(cases)
		twice := RankCases(once)

		assert.Equal(t, rankedIDs(once), rankedIDs(twice))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		cases := []*Case{
			queueCase(t, 1, vo.UrgencySelfCare, base),
			queueCase(t, 2, vo.UrgencyEmergency, base.Add(time.Minute)),
		}

		_ = RankCases(cases)

		assert.Equal(t, []uint{1, 2}, rankedIDs(cases))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, RankCases(nil))
	})
}
