package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

func TestBuildLeaderboards(t *testing.T) {
	t.Parallel()

	statuses := []model.AdvisorStatus{
		{Advisor: "Ana Cruz", Unit: "Alpha", Approved: model.MoneyKpis{FYC: 5000, FYP: 1000}},
		{Advisor: "Bea Santos", Unit: "Alpha", Approved: model.MoneyKpis{FYC: 3000, FYP: 9000}},
		{Advisor: "Cai Reyes", Unit: "", Approved: model.MoneyKpis{FYC: 4000, FYP: 4000}},
	}

	got := BuildLeaderboards(statuses)

	require.Len(t, got.AdvisorsByFYC, 3)
	assert.Equal(t, "Ana Cruz", got.AdvisorsByFYC[0].Advisor)
	assert.Equal(t, "Cai Reyes", got.AdvisorsByFYC[1].Advisor)

	require.Len(t, got.AdvisorsByFYP, 3)
	assert.Equal(t, "Bea Santos", got.AdvisorsByFYP[0].Advisor)

	// Alpha sums both members; the blank unit rolls up as Unassigned.
	require.Len(t, got.UnitsByFYC, 2)
	assert.Equal(t, model.UnitRank{Unit: "Alpha", Value: 8000}, got.UnitsByFYC[0])
	assert.Equal(t, model.UnitRank{Unit: model.UnassignedUnit, Value: 4000}, got.UnitsByFYC[1])

	assert.Equal(t, model.UnitRank{Unit: "Alpha", Value: 10000}, got.UnitsByFYP[0])
}

func TestBuildLeaderboardsTruncatesToTen(t *testing.T) {
	t.Parallel()

	statuses := make([]model.AdvisorStatus, 0, 14)
	for i := 0; i < 14; i++ {
		statuses = append(statuses, model.AdvisorStatus{
			Advisor:  fmt.Sprintf("Advisor %02d", i),
			Unit:     fmt.Sprintf("Unit %02d", i),
			Approved: model.MoneyKpis{FYC: float64(100 * (i + 1))},
		})
	}

	got := BuildLeaderboards(statuses)

	assert.Len(t, got.AdvisorsByFYC, 10)
	assert.Len(t, got.UnitsByFYC, 10)
	assert.Equal(t, "Advisor 13", got.AdvisorsByFYC[0].Advisor)
}

func TestBuildLeaderboardsTieKeepsInputOrder(t *testing.T) {
	t.Parallel()

	statuses := []model.AdvisorStatus{
		{Advisor: "Ana Cruz", Approved: model.MoneyKpis{FYC: 5000}},
		{Advisor: "Bea Santos", Approved: model.MoneyKpis{FYC: 5000}},
	}

	got := BuildLeaderboards(statuses)

	require.Len(t, got.AdvisorsByFYC, 2)
	assert.Equal(t, "Ana Cruz", got.AdvisorsByFYC[0].Advisor)
	assert.Equal(t, "Bea Santos", got.AdvisorsByFYC[1].Advisor)
}
