package metrics

import (
	"sort"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// badgeStep pairs a tier label with its threshold, lowest first.
type badgeStep struct {
	tier      model.BadgeTier
	threshold float64
}

// Guide tables for the three monthly-excellence metrics. Fixed agency
// literals, not configuration.
var (
	premiumBadgeSteps = []badgeStep{
		{model.TierSilver, 100_000},
		{model.TierGold, 150_000},
		{model.TierDiamond, 300_000},
		{model.TierMaster, 400_000},
	}
	savedLivesBadgeSteps = []badgeStep{
		{model.TierSilver, 3},
		{model.TierGold, 4},
		{model.TierDiamond, 6},
		{model.TierMaster, 8},
	}
	incomeBadgeSteps = []badgeStep{
		{model.TierSilver, 35_000},
		{model.TierGold, 50_000},
		{model.TierDiamond, 100_000},
		{model.TierMaster, 140_000},
	}
)

// BuildMonthlyExcellenceBadges classifies each advisor's month-to-date
// approved values (MDRT FYP, case count, FYC) against the fixed guide
// ladders. A value meeting a threshold exactly is achieved at that tier.
// Advisors below Silver, or between tiers, land in the close list with
// the remaining delta to their next threshold. Both lists carry the full
// ranking; display truncation is the caller's concern.
func BuildMonthlyExcellenceBadges(monthStatuses []model.AdvisorStatus, asOfMonth string, ix *RosterIndex) model.MonthlyExcellenceBadges {
	return model.MonthlyExcellenceBadges{
		AsOfMonth: asOfMonth,
		Premiums: classifyBadges(monthStatuses, premiumBadgeSteps, ix, func(s *model.AdvisorStatus) float64 {
			return s.Approved.MDRTFyp
		}),
		SavedLives: classifyBadges(monthStatuses, savedLivesBadgeSteps, ix, func(s *model.AdvisorStatus) float64 {
			return s.Approved.CaseCount
		}),
		Income: classifyBadges(monthStatuses, incomeBadgeSteps, ix, func(s *model.AdvisorStatus) float64 {
			return s.Approved.FYC
		}),
	}
}

func classifyBadges(statuses []model.AdvisorStatus, steps []badgeStep, ix *RosterIndex, value func(*model.AdvisorStatus) float64) model.BadgeBlock {
	var block model.BadgeBlock

	for i := range statuses {
		s := &statuses[i]
		v := value(s)
		if v <= 0 {
			continue
		}
		cohort := ix.Cohort(s.Advisor)

		achieved := -1
		for step := range steps {
			if v >= steps[step].threshold {
				achieved = step
			}
		}

		if achieved >= 0 {
			block.Achieved = append(block.Achieved, model.BadgeAchieved{
				Advisor: s.Advisor,
				Cohort:  cohort,
				Tier:    steps[achieved].tier,
				Value:   v,
			})
		}
		if next := achieved + 1; next < len(steps) {
			block.Close = append(block.Close, model.BadgeClose{
				Advisor:    s.Advisor,
				Cohort:     cohort,
				TargetTier: steps[next].tier,
				Remaining:  steps[next].threshold - v,
				Value:      v,
			})
		}
	}

	sort.SliceStable(block.Achieved, func(i, j int) bool {
		return block.Achieved[i].Value > block.Achieved[j].Value
	})
	sort.SliceStable(block.Close, func(i, j int) bool {
		return block.Close[i].Value > block.Close[j].Value
	})
	return block
}
