package metrics

import (
	"sort"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

const (
	highPerformerCases = 2
	topTierCases       = 6
)

// BuildCohortMonitoring computes the Spartan or Legacy monitoring block:
// cohort size, producing count, activity ratio, the ranked high-performer
// list (2+ approved cases, 6+ flagged as top tier), and cohort production
// totals. Ratio and average guards return 0 on empty denominators, never
// NaN.
func BuildCohortMonitoring(statuses []model.AdvisorStatus, roster []model.RosterEntry, cohort model.Cohort, unitFilter string, ix *RosterIndex) model.CohortMonitoring {
	total := 0
	for _, e := range roster {
		if e.Cohort == cohort && ix.MatchesUnit(e.Advisor, unitFilter) {
			total++
		}
	}

	out := model.CohortMonitoring{Cohort: cohort, Total: total}

	for i := range statuses {
		s := &statuses[i]
		if ix.Cohort(s.Advisor) != cohort || !ix.MatchesUnit(s.Advisor, unitFilter) {
			continue
		}

		if s.IsProducing() {
			out.Producing++
		}
		out.Totals.ApprovedFYC += s.Approved.FYC
		out.Totals.ApprovedCases += s.Approved.CaseCount

		if s.Approved.CaseCount >= highPerformerCases {
			out.HighPerformers = append(out.HighPerformers, model.CohortPerformer{
				Advisor: s.Advisor,
				Cases:   s.Approved.CaseCount,
				TopTier: s.Approved.CaseCount >= topTierCases,
			})
		}
	}

	if out.Total > 0 {
		out.ActivityRatio = float64(out.Producing) / float64(out.Total)
	}
	if out.Totals.ApprovedCases > 0 {
		out.Totals.AvgFYCPerCase = out.Totals.ApprovedFYC / out.Totals.ApprovedCases
	}

	sort.SliceStable(out.HighPerformers, func(i, j int) bool {
		a, b := out.HighPerformers[i], out.HighPerformers[j]
		if a.Cases != b.Cases {
			return a.Cases > b.Cases
		}
		return a.Advisor < b.Advisor
	})

	return out
}
