package metrics

import (
	"sort"
	"time"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// Params carries the resolved request parameters into a computation pass.
// ReportID and GeneratedAt are envelope metadata supplied by the caller
// so the aggregation itself stays deterministic.
type Params struct {
	Preset            model.RangePreset
	Range             Range
	Unit              string
	Advisor           string
	ReportID          string
	GeneratedAt       time.Time
	MdrtTargetPremium float64
}

// BuildReport runs the full aggregation pass and assembles the response
// tree. Each block is computed by an independent pure function; this is
// only the composition order. The echoed filters reflect the resolved
// range, not the raw request.
func BuildReport(rows []model.TransactionRecord, roster []model.RosterEntry, dpr []model.DprRow, p Params) *model.Report {
	ix := NewRosterIndex(roster)
	end := p.Range.End

	statuses := BuildAdvisorStatuses(rows, roster, p.Range, p.Unit)

	// Badges score the month containing the range end; MDRT scores the
	// calendar year to date.
	badgeRange := Range{Start: monthStart(end), End: end}
	badgeStatuses := BuildAdvisorStatuses(rows, roster, badgeRange, p.Unit)
	ytdRange := Range{Start: dayUTC(end.Year(), time.January, 1), End: end}
	ytdStatuses := BuildAdvisorStatuses(rows, roster, ytdRange, p.Unit)

	report := &model.Report{
		ReportID:    p.ReportID,
		GeneratedAt: p.GeneratedAt.UTC().Format(time.RFC3339),
		Filters: model.Filters{
			Preset:  p.Preset,
			Start:   isoDate(p.Range.Start),
			End:     isoDate(end),
			Unit:    p.Unit,
			Advisor: p.Advisor,
		},
		Options:           BuildOptions(rows, roster),
		Team:              AggregateTeam(statuses.Advisors),
		ProducingAdvisors: model.ProducingAdvisors{Producing: statuses.Producing, Pending: statuses.Pending, NonProducing: statuses.NonProducing},
		Leaderboards:      BuildLeaderboards(statuses.Advisors),
		Trends: model.Trends{
			ApprovedByDay: BuildApprovedTrends(rows, p.Range, p.Unit, FilterAll, ix),
		},
		SpartanMonitoring: BuildCohortMonitoring(statuses.Advisors, roster, model.CohortSpartan, p.Unit, ix),
		LegacyMonitoring:  BuildCohortMonitoring(statuses.Advisors, roster, model.CohortLegacy, p.Unit, ix),
		SpecialLookouts: model.SpecialLookouts{
			ProductSellers:             BuildProductSellers(rows, p.Range, p.Unit, ix),
			ConsistentMonthlyProducers: BuildConsistentMonthlyProducers(rows, roster, p.Unit, end),
			SalesRoundup:               BuildSalesRoundup(rows, p.Range, p.Unit, p.Advisor, ix),
		},
		PpbTracker:              BuildPpbTracker(rows, dpr, end, p.Unit, ix),
		MonthlyExcellenceBadges: BuildMonthlyExcellenceBadges(badgeStatuses.Advisors, monthKey(end), ix),
		Mdrt:                    BuildMdrtTracker(ytdStatuses.Advisors, p.MdrtTargetPremium, isoDate(end), ix),
	}

	if p.Advisor != "" && p.Advisor != FilterAll {
		report.AdvisorDetail = BuildAdvisorDetail(rows, p.Advisor, p.Range, p.Unit, ix)
	}

	return report
}

// BuildOptions collects the dropdown values: units seen on either the
// roster or the transaction rows, and the roster's advisor names, each
// headed by the literal "All".
func BuildOptions(rows []model.TransactionRecord, roster []model.RosterEntry) model.Options {
	unitSet := make(map[string]bool)
	for _, e := range roster {
		if u := model.ResolveUnit(e.Unit); u != model.UnassignedUnit {
			unitSet[u] = true
		}
	}
	for i := range rows {
		if u := model.ResolveUnit(rows[i].UnitManager); u != model.UnassignedUnit {
			unitSet[u] = true
		}
	}
	units := make([]string, 0, len(unitSet))
	for u := range unitSet {
		units = append(units, u)
	}
	sort.Strings(units)

	seen := make(map[string]bool, len(roster))
	advisors := make([]string, 0, len(roster))
	for _, e := range roster {
		key := model.NormalizeName(e.Advisor)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		advisors = append(advisors, e.Advisor)
	}
	sort.Strings(advisors)

	return model.Options{
		Units:    append([]string{FilterAll}, units...),
		Advisors: append([]string{FilterAll}, advisors...),
	}
}
