package metrics

import (
	"sort"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// MDRT's published multipliers: Court of the Table is 3x the base
// production requirement, Top of the Table 6x.
const (
	cotMultiplier = 3
	totMultiplier = 6
)

// BuildMdrtTracker ranks advisors by year-to-date MDRT-qualifying premium
// against the configured target. Balances never go negative; COT and TOT
// balances only appear once the base target is met.
func BuildMdrtTracker(ytdStatuses []model.AdvisorStatus, targetPremium float64, asOf string, ix *RosterIndex) model.MdrtTracker {
	out := model.MdrtTracker{AsOf: asOf, TargetPremium: targetPremium}

	for i := range ytdStatuses {
		s := &ytdStatuses[i]
		v := s.Approved.MDRTFyp
		if v <= 0 {
			continue
		}

		row := model.MdrtRow{
			Advisor:       s.Advisor,
			Cohort:        ix.Cohort(s.Advisor),
			MDRTFyp:       v,
			Qualified:     targetPremium > 0 && v >= targetPremium,
			BalanceToMdrt: clampBalance(targetPremium - v),
		}
		if row.Qualified {
			cot := clampBalance(targetPremium*cotMultiplier - v)
			tot := clampBalance(targetPremium*totMultiplier - v)
			row.BalanceToCot = &cot
			row.BalanceToTot = &tot
		}
		out.Rows = append(out.Rows, row)
	}

	sort.SliceStable(out.Rows, func(i, j int) bool {
		if out.Rows[i].MDRTFyp != out.Rows[j].MDRTFyp {
			return out.Rows[i].MDRTFyp > out.Rows[j].MDRTFyp
		}
		return out.Rows[i].Advisor < out.Rows[j].Advisor
	})
	return out
}

func clampBalance(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
