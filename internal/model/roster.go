package model

import (
	"strings"
	"time"
)

// Cohort is the normalized SPA/LEG roster classification. Free-text roster
// labels are normalized exactly once, at parse time; downstream code only
// ever compares Cohort values.
type Cohort string

const (
	CohortUnknown Cohort = ""
	CohortSpartan Cohort = "spartan"
	CohortLegacy  Cohort = "legacy"
)

// ParseCohort normalizes a free-text SPA/LEG label. It accepts variants
// like "SPA", "Spartan", "Spartans", "LEG", "Legacy".
func ParseCohort(label string) Cohort {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case s == "":
		return CohortUnknown
	case strings.HasPrefix(s, "spa") || strings.Contains(s, "spartan"):
		return CohortSpartan
	case strings.HasPrefix(s, "leg") || strings.Contains(s, "legacy"):
		return CohortLegacy
	default:
		return CohortUnknown
	}
}

// Tenure is the normalized roster tenure label used by the PPB tracker.
type Tenure string

const (
	TenureUnknown Tenure = ""
	TenureRookie  Tenure = "rookie"
	TenureTenured Tenure = "tenured"
)

// ParseTenure normalizes a free-text tenure label.
func ParseTenure(label string) Tenure {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "rookie":
		return TenureRookie
	case "tenured":
		return TenureTenured
	default:
		return TenureUnknown
	}
}

// RosterEntry is one advisor's profile row from the roster sheet.
type RosterEntry struct {
	Advisor       string     `json:"advisor"`
	Unit          string     `json:"unit,omitempty"`
	Cohort        Cohort     `json:"spaLeg,omitempty"`
	Program       string     `json:"program,omitempty"`
	PADate        *time.Time `json:"paDate,omitempty"`
	Tenure        Tenure     `json:"tenure,omitempty"`
	MonthsCMP2025 int        `json:"monthsCmp2025,omitempty"`
}

// NormalizeName is the single normalization applied to advisor (and
// policy-owner, product, mode) names before any map lookup or equality
// check. Raw-string comparison of names is a bug; see ResolveUnit for the
// matching unit policy.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// UnassignedUnit labels advisors with no roster unit.
const UnassignedUnit = "Unassigned"

// ResolveUnit applies the unit-defaulting policy: blank or
// whitespace-only units become UnassignedUnit.
func ResolveUnit(unit string) string {
	if u := strings.TrimSpace(unit); u != "" {
		return u
	}
	return UnassignedUnit
}

// ResolveCaseCount applies the case-count-defaulting policy for dedup
// units: absent or non-positive counts are worth one case credit.
func ResolveCaseCount(caseCount float64) float64 {
	if caseCount > 0 {
		return caseCount
	}
	return 1
}

func trimmed(s string) string { return strings.TrimSpace(s) }
