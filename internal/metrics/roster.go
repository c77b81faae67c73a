package metrics

import (
	"github.com/judd-droid/supernovabigboard/internal/model"
)

// RosterIndex maps normalized advisor names to their roster entries. It
// is built once per computation pass and threaded through every
// downstream function: all unit, cohort, and tenure lookups go through
// it, keyed by the same normalization everywhere.
type RosterIndex struct {
	entries map[string]model.RosterEntry
	keys    []string // normalized keys in first-seen roster order
}

// NewRosterIndex indexes roster entries, keeping the first occurrence of
// each case-insensitively duplicated name.
func NewRosterIndex(entries []model.RosterEntry) *RosterIndex {
	ix := &RosterIndex{entries: make(map[string]model.RosterEntry, len(entries))}
	for _, e := range entries {
		key := model.NormalizeName(e.Advisor)
		if key == "" {
			continue
		}
		if _, ok := ix.entries[key]; ok {
			continue
		}
		ix.entries[key] = e
		ix.keys = append(ix.keys, key)
	}
	return ix
}

// Entry looks up a roster entry by raw advisor name.
func (ix *RosterIndex) Entry(advisor string) (model.RosterEntry, bool) {
	e, ok := ix.entries[model.NormalizeName(advisor)]
	return e, ok
}

// Unit resolves an advisor's unit with the Unassigned default. Advisors
// absent from the roster are Unassigned.
func (ix *RosterIndex) Unit(advisor string) string {
	e, _ := ix.Entry(advisor)
	return model.ResolveUnit(e.Unit)
}

// Cohort resolves an advisor's SPA/LEG cohort, Unknown when unrostered.
func (ix *RosterIndex) Cohort(advisor string) model.Cohort {
	e, _ := ix.Entry(advisor)
	return e.Cohort
}

// MatchesUnit applies the unit filter by roster-resolved unit. The
// literal "All" (or an empty filter) matches everyone.
func (ix *RosterIndex) MatchesUnit(advisor, unitFilter string) bool {
	if unitFilter == "" || unitFilter == FilterAll {
		return true
	}
	return ix.Unit(advisor) == unitFilter
}
