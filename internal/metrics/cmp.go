package metrics

import (
	"sort"
	"time"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// cmpMaxStreak caps the backward walk. A safety bound against unbounded
// loops, not a business rule.
const cmpMaxStreak = 240

// carryOverBoundary is the month where the pre-migration tracking system
// left off. A streak whose walk terminates exactly here is extended by
// the roster's carried 2025 streak count, once.
const carryOverBoundary = "2025-12"

// BuildConsistentMonthlyProducers computes per-advisor unbroken monthly
// approval streaks ending at the month containing asOf. The month an
// approval counts for prefers the sheet's month-approved label over the
// exact approved date. Advisors are bucketed by streak length; zero
// streaks are omitted.
func BuildConsistentMonthlyProducers(rows []model.TransactionRecord, roster []model.RosterEntry, unitFilter string, asOf time.Time) model.CmpReport {
	produced := make(map[string]map[string]bool)
	for i := range rows {
		r := &rows[i]
		if r.Advisor == "" {
			continue
		}
		md := approvalMonth(r)
		if md == nil {
			continue
		}
		key := model.NormalizeName(r.Advisor)
		if produced[key] == nil {
			produced[key] = make(map[string]bool)
		}
		produced[key][monthKey(*md)] = true
	}

	endMonth := monthStart(asOf)
	report := model.CmpReport{AsOfMonth: monthKey(endMonth)}

	for _, e := range roster {
		if e.Advisor == "" {
			continue
		}
		if unitFilter != "" && unitFilter != FilterAll && model.ResolveUnit(e.Unit) != unitFilter {
			continue
		}

		months := produced[model.NormalizeName(e.Advisor)]

		streak := 0
		cursor := endMonth
		for months[monthKey(cursor)] && streak < cmpMaxStreak {
			streak++
			cursor = addMonths(cursor, -1)
		}

		// Bridge the one-time migration boundary between the 2025 and
		// 2026 tracking systems.
		if streak > 0 && monthKey(cursor) == carryOverBoundary && e.MonthsCMP2025 > 0 {
			streak += e.MonthsCMP2025
		}

		entry := model.CmpStreak{Advisor: e.Advisor, StreakMonths: streak}
		switch {
		case streak >= 3:
			report.ThreePlus = append(report.ThreePlus, entry)
		case streak == 2:
			report.WatchTwo = append(report.WatchTwo, entry)
		case streak == 1:
			report.WatchOne = append(report.WatchOne, entry)
		}
	}

	byStreak := func(list []model.CmpStreak) {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].StreakMonths != list[j].StreakMonths {
				return list[i].StreakMonths > list[j].StreakMonths
			}
			return list[i].Advisor < list[j].Advisor
		})
	}
	byStreak(report.ThreePlus)
	byStreak(report.WatchTwo)
	byStreak(report.WatchOne)

	return report
}
