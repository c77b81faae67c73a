package metrics

import (
	"sort"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// StatusSet is the classifier's output: every advisor's bucket snapshot
// plus the three-way partition derived from it.
type StatusSet struct {
	Advisors     []model.AdvisorStatus
	Producing    []model.AdvisorStatus
	Pending      []model.AdvisorStatus
	NonProducing []model.AdvisorStatus
}

// BuildAdvisorStatuses seeds one status per roster advisor (so advisors
// with zero transactions surface as Non-Producing), folds every matching
// transaction record into the four KPI buckets, and partitions the
// result. Advisors present in transactions but absent from the roster are
// upserted on first sight; historical advisors must not disappear. The
// unit filter is applied independently during seeding and during record
// folding, both via the roster-resolved unit.
func BuildAdvisorStatuses(rows []model.TransactionRecord, roster []model.RosterEntry, rng Range, unitFilter string) StatusSet {
	ix := NewRosterIndex(roster)

	byKey := make(map[string]*model.AdvisorStatus, len(roster))
	var order []string

	upsert := func(key, displayName string) *model.AdvisorStatus {
		if st, ok := byKey[key]; ok {
			return st
		}
		st := &model.AdvisorStatus{Advisor: displayName}
		if e, ok := ix.entries[key]; ok {
			st.Unit = e.Unit
		}
		byKey[key] = st
		order = append(order, key)
		return st
	}

	for _, key := range ix.keys {
		e := ix.entries[key]
		if !ix.MatchesUnit(e.Advisor, unitFilter) {
			continue
		}
		upsert(key, e.Advisor)
	}

	for i := range rows {
		r := &rows[i]
		if r.Advisor == "" {
			continue
		}
		if !ix.MatchesUnit(r.Advisor, unitFilter) {
			continue
		}

		st := upsert(model.NormalizeName(r.Advisor), r.Advisor)

		if IsApprovedInRange(r, rng) {
			st.Approved.AddRecord(r)
		}
		if rng.Contains(r.DateSubmitted) {
			st.Submitted.AddRecord(r)
		}
		if rng.Contains(r.DatePaid) {
			st.Paid.AddRecord(r)
		}

		// Open pipeline: money already collected from the client, case
		// still with underwriting. A submitted case is not pending until
		// it is paid, and any approval proof removes it from Open.
		if !r.HasApprovalProof() && rng.Contains(r.DatePaid) {
			st.Open.AddRecord(r)
		}
	}

	set := StatusSet{Advisors: make([]model.AdvisorStatus, 0, len(order))}
	for _, key := range order {
		set.Advisors = append(set.Advisors, *byKey[key])
	}

	for _, a := range set.Advisors {
		producing := a.IsProducing()
		pending := a.IsPending()

		if producing {
			set.Producing = append(set.Producing, a)
		}
		if pending {
			if producing {
				// Presentation convention: already producing, but also has
				// something pending.
				p := a
				p.Advisor = "(" + a.Advisor + ")"
				set.Pending = append(set.Pending, p)
			} else {
				set.Pending = append(set.Pending, a)
			}
		}
		if !producing && !pending {
			set.NonProducing = append(set.NonProducing, a)
		}
	}

	sort.SliceStable(set.Producing, func(i, j int) bool {
		return set.Producing[i].Approved.FYC > set.Producing[j].Approved.FYC
	})
	sort.SliceStable(set.Pending, func(i, j int) bool {
		return set.Pending[i].Open.FYC > set.Pending[j].Open.FYC
	})
	sort.SliceStable(set.NonProducing, func(i, j int) bool {
		return set.NonProducing[i].Advisor < set.NonProducing[j].Advisor
	})

	return set
}

// AggregateTeam sums every advisor's approved/submitted/paid buckets into
// the team totals. The fold is a monoid: disjoint record sets aggregated
// separately and merged give the same totals as one pass.
func AggregateTeam(statuses []model.AdvisorStatus) model.TeamKpis {
	var team model.TeamKpis
	for i := range statuses {
		team.Approved.Merge(statuses[i].Approved)
		team.Submitted.Merge(statuses[i].Submitted)
		team.Paid.Merge(statuses[i].Paid)
	}
	return team
}

// CombineTeam merges two team aggregates field-wise.
func CombineTeam(a, b model.TeamKpis) model.TeamKpis {
	a.Approved.Merge(b.Approved)
	a.Submitted.Merge(b.Submitted)
	a.Paid.Merge(b.Paid)
	return a
}
