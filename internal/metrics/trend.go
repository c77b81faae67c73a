package metrics

import (
	"sort"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// BuildApprovedTrends buckets approved records by calendar day, after the
// optional unit and advisor filters. Records without an exact approved
// date land on the first day of their approved month. The series is
// sparse and sorted ascending by date; callers needing dense series fill
// gaps themselves.
func BuildApprovedTrends(rows []model.TransactionRecord, rng Range, unitFilter, advisorFilter string, ix *RosterIndex) []model.TrendPoint {
	byDay := make(map[string]*model.TrendPoint)

	for i := range rows {
		r := &rows[i]
		if !ix.MatchesUnit(r.Advisor, unitFilter) {
			continue
		}
		if !matchesAdvisor(r.Advisor, advisorFilter) {
			continue
		}
		if !IsApprovedInRange(r, rng) {
			continue
		}
		day := approvalDay(r)
		if day == nil {
			continue
		}

		key := isoDate(*day)
		pt, ok := byDay[key]
		if !ok {
			pt = &model.TrendPoint{Date: key}
			byDay[key] = pt
		}
		pt.FYC += r.FYC
		pt.FYP += r.FYP
		pt.Cases += r.CaseCount
	}

	out := make([]model.TrendPoint, 0, len(byDay))
	for _, pt := range byDay {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// matchesAdvisor applies the advisor filter via normalized names, like
// every other name comparison in the engine.
func matchesAdvisor(advisor, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return model.NormalizeName(advisor) == model.NormalizeName(filter)
}
