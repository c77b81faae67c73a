package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

func badgeStatus(advisor string, mdrtFyp, cases, fyc float64) model.AdvisorStatus {
	return model.AdvisorStatus{
		Advisor:  advisor,
		Approved: model.MoneyKpis{MDRTFyp: mdrtFyp, CaseCount: cases, FYC: fyc},
	}
}

func TestMonthlyExcellenceBadgesTiers(t *testing.T) {
	t.Parallel()

	statuses := []model.AdvisorStatus{
		badgeStatus("Ana Cruz", 420_000, 9, 150_000),
		badgeStatus("Bea Santos", 100_000, 3, 40_000), // exact Silver thresholds
		badgeStatus("Cai Reyes", 80_000, 2, 10_000),   // below every ladder
		badgeStatus("Dio Velasco", 0, 0, 0),           // skipped entirely
	}
	ix := NewRosterIndex([]model.RosterEntry{
		{Advisor: "Ana Cruz", Cohort: model.CohortSpartan},
	})

	got := BuildMonthlyExcellenceBadges(statuses, "2026-01", ix)

	assert.Equal(t, "2026-01", got.AsOfMonth)

	require.Len(t, got.Premiums.Achieved, 2)
	assert.Equal(t, model.BadgeAchieved{
		Advisor: "Ana Cruz", Cohort: model.CohortSpartan, Tier: model.TierMaster, Value: 420_000,
	}, got.Premiums.Achieved[0])
	assert.Equal(t, model.TierSilver, got.Premiums.Achieved[1].Tier, "meeting a threshold exactly achieves it")

	// Ana tops the premium ladder: no close entry for her.
	for _, c := range got.Premiums.Close {
		assert.NotEqual(t, "Ana Cruz", c.Advisor)
	}

	// Bea is simultaneously achieved (Silver) and close (to Gold).
	require.Len(t, got.Premiums.Close, 2)
	assert.Equal(t, model.BadgeClose{
		Advisor: "Bea Santos", TargetTier: model.TierGold, Remaining: 50_000, Value: 100_000,
	}, got.Premiums.Close[0])
	assert.Equal(t, model.BadgeClose{
		Advisor: "Cai Reyes", TargetTier: model.TierSilver, Remaining: 20_000, Value: 80_000,
	}, got.Premiums.Close[1])

	require.Len(t, got.SavedLives.Achieved, 2)
	assert.Equal(t, model.TierMaster, got.SavedLives.Achieved[0].Tier)
	assert.Equal(t, model.TierSilver, got.SavedLives.Achieved[1].Tier)

	require.Len(t, got.Income.Achieved, 2)
	assert.Equal(t, model.TierMaster, got.Income.Achieved[0].Tier)
	assert.Equal(t, model.TierSilver, got.Income.Achieved[1].Tier)
}

func TestMonthlyExcellenceBadgesCloseRanking(t *testing.T) {
	t.Parallel()

	statuses := []model.AdvisorStatus{
		badgeStatus("Ana Cruz", 90_000, 0, 0),
		badgeStatus("Bea Santos", 99_000, 0, 0),
	}

	got := BuildMonthlyExcellenceBadges(statuses, "2026-01", NewRosterIndex(nil))

	require.Len(t, got.Premiums.Close, 2)
	assert.Equal(t, "Bea Santos", got.Premiums.Close[0].Advisor, "ranked by value, not by gap")
	assert.Equal(t, 1_000.0, got.Premiums.Close[0].Remaining)
	assert.Empty(t, got.Premiums.Achieved)
}
