package metrics

import (
	"sort"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

const leaderboardSize = 10

// BuildLeaderboards derives the four top-10 boards from the status set:
// advisors by approved FYC and FYP, and units (advisor units summed, with
// the Unassigned default) by the same two metrics.
func BuildLeaderboards(statuses []model.AdvisorStatus) model.Leaderboards {
	advisorsByFYC := make([]model.AdvisorRank, 0, len(statuses))
	advisorsByFYP := make([]model.AdvisorRank, 0, len(statuses))
	for i := range statuses {
		s := &statuses[i]
		advisorsByFYC = append(advisorsByFYC, model.AdvisorRank{Advisor: s.Advisor, Value: s.Approved.FYC})
		advisorsByFYP = append(advisorsByFYP, model.AdvisorRank{Advisor: s.Advisor, Value: s.Approved.FYP})
	}

	unitFYC := make(map[string]float64)
	unitFYP := make(map[string]float64)
	var unitOrder []string
	for i := range statuses {
		u := model.ResolveUnit(statuses[i].Unit)
		if _, ok := unitFYC[u]; !ok {
			unitOrder = append(unitOrder, u)
		}
		unitFYC[u] += statuses[i].Approved.FYC
		unitFYP[u] += statuses[i].Approved.FYP
	}

	unitsByFYC := make([]model.UnitRank, 0, len(unitOrder))
	unitsByFYP := make([]model.UnitRank, 0, len(unitOrder))
	for _, u := range unitOrder {
		unitsByFYC = append(unitsByFYC, model.UnitRank{Unit: u, Value: unitFYC[u]})
		unitsByFYP = append(unitsByFYP, model.UnitRank{Unit: u, Value: unitFYP[u]})
	}

	return model.Leaderboards{
		AdvisorsByFYC: topAdvisors(advisorsByFYC),
		AdvisorsByFYP: topAdvisors(advisorsByFYP),
		UnitsByFYC:    topUnits(unitsByFYC),
		UnitsByFYP:    topUnits(unitsByFYP),
	}
}

func topAdvisors(ranks []model.AdvisorRank) []model.AdvisorRank {
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Value > ranks[j].Value })
	if len(ranks) > leaderboardSize {
		ranks = ranks[:leaderboardSize]
	}
	return ranks
}

func topUnits(ranks []model.UnitRank) []model.UnitRank {
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Value > ranks[j].Value })
	if len(ranks) > leaderboardSize {
		ranks = ranks[:leaderboardSize]
	}
	return ranks
}
