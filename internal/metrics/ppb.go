package metrics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// rateTier is one step of a bonus ladder.
type rateTier struct {
	threshold float64
	rate      float64
}

// ppbTiers maps quarter-to-date FYC to the production-based-bonus rate.
// The two 10% steps are intentional: 20k is the rookie floor, 30k the
// tenured floor, and both pay the same entry rate.
var ppbTiers = []rateTier{
	{20_000, 0.10},
	{30_000, 0.10},
	{50_000, 0.15},
	{80_000, 0.20},
	{120_000, 0.30},
	{200_000, 0.35},
	{350_000, 0.40},
}

// ccbTiers maps deduplicated non-Guardian case counts to the case-count
// bonus rate.
var ccbTiers = []rateTier{
	{3, 0.05},
	{5, 0.10},
	{7, 0.15},
	{9, 0.20},
}

const (
	rookieFloorFYC  = 20_000
	tenuredFloorFYC = 30_000

	// First two years of production authority, in months.
	rookieWindowMonths = 24

	// Projected bonus assumes 82.5%+ persistency; actual persistency data
	// is not ingested for this calculation.
	persistencyMultiplier = 1.0
)

// Guardian product variants earn FYC but never case credits.
var guardianPattern = regexp.MustCompile(`(?i)guardian`)

// ppbAccum is one advisor's in-progress quarter accumulation.
type ppbAccum struct {
	display    string
	fyc        float64
	cases      float64
	monthCases [3]float64
	seen       map[string]*caseOccurrence
}

// caseOccurrence tracks where a dedup key's case credit currently sits.
type caseOccurrence struct {
	monthIdx int
	credit   float64
}

// BuildPpbTracker computes the quarter-to-date production-based-bonus
// block for the calendar quarter containing rangeEnd. Records approved
// within [quarter start, rangeEnd] qualify; FYC always accumulates, while
// case credits are deduplicated by {advisor, policy owner, product, mode}
// with Guardian products excluded from case counting entirely. When a
// duplicate key surfaces with an earlier quarter month than previously
// recorded, its credit moves to that earlier month (chronologically
// earliest occurrence wins month attribution, in input order). FYC totals
// are reconciled against the DPR monthly feed by taking the maximum of
// the two sources, since DPR ingestion lags live approvals.
func BuildPpbTracker(rows []model.TransactionRecord, dpr []model.DprRow, rangeEnd time.Time, unitFilter string, ix *RosterIndex) model.PpbTracker {
	qStart, quarterLabel, monthLabels := quarterOf(rangeEnd)
	window := Range{Start: qStart, End: dayUTC(rangeEnd.Year(), rangeEnd.Month(), rangeEnd.Day())}

	accums := make(map[string]*ppbAccum)
	var order []string

	accumFor := func(key, display string) *ppbAccum {
		a, ok := accums[key]
		if !ok {
			a = &ppbAccum{display: display, seen: make(map[string]*caseOccurrence)}
			accums[key] = a
			order = append(order, key)
		}
		return a
	}

	for i := range rows {
		r := &rows[i]
		if r.Advisor == "" {
			continue
		}
		if !ix.MatchesUnit(r.Advisor, unitFilter) {
			continue
		}
		if !IsApprovedInRange(r, window) {
			continue
		}

		a := accumFor(model.NormalizeName(r.Advisor), r.Advisor)
		a.fyc += r.FYC

		// Guardian FYC counts; Guardian cases never do.
		if guardianPattern.MatchString(r.Product) {
			continue
		}

		mi := quarterMonthIndex(qStart, approvalDay(r))
		if mi < 0 {
			continue
		}
		credit := model.ResolveCaseCount(r.CaseCount)
		key := dedupKey(r)

		occ, dup := a.seen[key]
		if !dup {
			a.cases += credit
			a.monthCases[mi] += credit
			a.seen[key] = &caseOccurrence{monthIdx: mi, credit: credit}
			continue
		}
		// Duplicate: no new credit. Reassign the existing credit if this
		// occurrence is chronologically earlier.
		if mi < occ.monthIdx {
			a.monthCases[occ.monthIdx] -= occ.credit
			a.monthCases[mi] += occ.credit
			occ.monthIdx = mi
		}
	}

	dprTotals, dprOrder := dprQuarterTotals(dpr, qStart, window.End, unitFilter, ix)

	var ppbRows []model.PpbRow
	for _, key := range order {
		a := accums[key]
		fyc := a.fyc
		if d, ok := dprTotals[key]; ok && d.fyc > fyc {
			fyc = d.fyc
		}
		ppbRows = append(ppbRows, buildPpbRow(a.display, fyc, a, qStart, ix))
	}
	// Advisors reported only by DPR still surface, with zero cases.
	for _, key := range dprOrder {
		if _, ok := accums[key]; ok {
			continue
		}
		d := dprTotals[key]
		empty := &ppbAccum{display: d.display}
		ppbRows = append(ppbRows, buildPpbRow(d.display, d.fyc, empty, qStart, ix))
	}

	filtered := ppbRows[:0]
	for _, row := range ppbRows {
		if row.FYC != 0 || row.Cases != 0 {
			filtered = append(filtered, row)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].FYC != filtered[j].FYC {
			return filtered[i].FYC > filtered[j].FYC
		}
		return filtered[i].Advisor < filtered[j].Advisor
	})

	return model.PpbTracker{Quarter: quarterLabel, Months: monthLabels, Rows: filtered}
}

func buildPpbRow(display string, fyc float64, a *ppbAccum, qStart time.Time, ix *RosterIndex) model.PpbRow {
	entry, _ := ix.Entry(display)
	tenure := resolveTenure(entry, qStart)

	floor := float64(tenuredFloorFYC)
	if tenure == model.TenureRookie {
		floor = rookieFloorFYC
	}

	ppbRate := 0.0
	if fyc >= floor {
		ppbRate = ladderRate(ppbTiers, fyc)
	}

	activeMonths := 0
	for _, c := range a.monthCases {
		if c > 0 {
			activeMonths++
		}
	}
	requiredActive := 2
	if paInThirdMonth(entry.PADate, qStart) {
		// Grace for advisors who received production authority mid-quarter.
		requiredActive = 1
	}

	var ccbRate *float64
	if ppbRate > 0 && a.cases >= 3 && activeMonths >= requiredActive {
		rate := ladderRate(ccbTiers, a.cases)
		ccbRate = &rate
	}

	total := ppbRate
	if ccbRate != nil {
		total += *ccbRate
	}

	var projected *float64
	if total > 0 {
		p := total * persistencyMultiplier * fyc
		projected = &p
	}

	fycToNext, nextPpb := nextLadderStep(ppbTiers, fyc, ppbRate)
	casesToNext, nextCcb := nextLadderStep(ccbTiers, a.cases, deref(ccbRate))

	return model.PpbRow{
		Advisor:            display,
		Cohort:             entry.Cohort,
		FYC:                fyc,
		Cases:              a.cases,
		M1Cases:            a.monthCases[0],
		M2Cases:            a.monthCases[1],
		M3Cases:            a.monthCases[2],
		PpbRate:            ppbRate,
		CCBRate:            ccbRate,
		TotalBonusRate:     total,
		ProjectedBonus:     projected,
		FYCToNextBonusTier: fycToNext,
		NextPpbRate:        nextPpb,
		CasesToNextCCBTier: casesToNext,
		NextCCBRate:        nextCcb,
	}
}

// resolveTenure trusts an explicit roster label, falls back to the PA
// date versus quarter start, and defaults leniently to rookie when even
// the PA date is missing.
func resolveTenure(e model.RosterEntry, qStart time.Time) model.Tenure {
	if e.Tenure == model.TenureRookie || e.Tenure == model.TenureTenured {
		return e.Tenure
	}
	if e.PADate == nil {
		return model.TenureRookie
	}
	if monthsBetween(*e.PADate, qStart) < rookieWindowMonths {
		return model.TenureRookie
	}
	return model.TenureTenured
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

func paInThirdMonth(pa *time.Time, qStart time.Time) bool {
	if pa == nil {
		return false
	}
	return monthStart(*pa).Equal(addMonths(qStart, 2))
}

// ladderRate returns the rate of the highest tier whose threshold the
// value meets, or 0 below the ladder.
func ladderRate(tiers []rateTier, value float64) float64 {
	rate := 0.0
	for _, t := range tiers {
		if value >= t.threshold {
			rate = t.rate
		}
	}
	return rate
}

// nextLadderStep finds the smallest threshold strictly above value whose
// rate strictly beats currentRate, skipping thresholds that share the
// current rate. Returns nil pointers at the top of the ladder.
func nextLadderStep(tiers []rateTier, value, currentRate float64) (delta, nextRate *float64) {
	for _, t := range tiers {
		if t.threshold > value && t.rate > currentRate {
			d := t.threshold - value
			r := t.rate
			return &d, &r
		}
	}
	return nil, nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// dedupKey identifies a policy sale independent of which sheet row
// recorded it: same advisor, owner, product, and mode.
func dedupKey(r *model.TransactionRecord) string {
	return strings.Join([]string{
		model.NormalizeName(r.Advisor),
		model.NormalizeName(r.PolicyOwner),
		model.NormalizeName(r.Product),
		model.NormalizeName(r.Mode),
	}, "|")
}

// quarterMonthIndex maps a record's approval day to its 0-based month
// slot within the quarter, or -1 when unattributable.
func quarterMonthIndex(qStart time.Time, day *time.Time) int {
	if day == nil {
		return -1
	}
	mi := monthsBetween(qStart, monthStart(*day))
	if mi < 0 || mi > 2 {
		return -1
	}
	return mi
}

// quarterOf resolves the calendar quarter containing the date.
func quarterOf(t time.Time) (qStart time.Time, label string, months [3]string) {
	y := t.Year()
	q := (int(t.Month()) - 1) / 3
	qStart = dayUTC(y, time.Month(q*3+1), 1)
	label = fmt.Sprintf("Q%d %d", q+1, y)
	for i := 0; i < 3; i++ {
		months[i] = addMonths(qStart, i).Format("Jan")
	}
	return qStart, label, months
}

type dprTotal struct {
	display string
	fyc     float64
}

// dprQuarterTotals sums each advisor's DPR FYC across the quarter months
// up to and including the month containing end.
func dprQuarterTotals(dpr []model.DprRow, qStart, end time.Time, unitFilter string, ix *RosterIndex) (map[string]*dprTotal, []string) {
	endMonth := monthKey(end)
	inQuarter := map[string]bool{}
	for i := 0; i < 3; i++ {
		mk := monthKey(addMonths(qStart, i))
		if mk <= endMonth {
			inQuarter[mk] = true
		}
	}

	totals := make(map[string]*dprTotal)
	var order []string
	for _, row := range dpr {
		if row.Advisor == "" || !inQuarter[row.Month] {
			continue
		}
		if !ix.MatchesUnit(row.Advisor, unitFilter) {
			continue
		}
		key := model.NormalizeName(row.Advisor)
		t, ok := totals[key]
		if !ok {
			t = &dprTotal{display: row.Advisor}
			totals[key] = t
			order = append(order, key)
		}
		t.fyc += row.FYC
	}
	return totals, order
}
