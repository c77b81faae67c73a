package sheet

import (
	"strings"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

var rosterHeaders = []string{
	"advisors", "advisor", "unit", "spa / leg", "spa/leg",
	"program", "pa date", "tenure", "months cmp 2025", "months cmp",
}

// ParseRosterEntries converts the raw roster grid into roster entries,
// deduplicated case-insensitively by advisor name with the first
// occurrence winning. Grids with no recognizable header fall back to the
// legacy format where the first column holds names.
func ParseRosterEntries(values [][]string) []model.RosterEntry {
	if len(values) == 0 {
		return nil
	}

	headerRow, score := detectHeaderRow(values, rosterHeaders)
	if score < 1 {
		return legacyRoster(values)
	}
	headers := values[headerRow]

	iAdvisor := columnIndex(headers, "Advisors", "Advisor", "Name")
	iUnit := columnIndex(headers, "Unit")
	iSpaLeg := columnIndex(headers, "SPA / LEG", "SPA/LEG")
	iProgram := columnIndex(headers, "Program")
	iPADate := columnIndex(headers, "PA Date", "PA")
	iTenure := columnIndex(headers, "Tenure")
	iMonthsCMP := columnIndex(headers, "Months CMP 2025", "Months CMP2025", "CMP 2025", "Months CMP")

	var entries []model.RosterEntry
	for _, r := range values[headerRow+1:] {
		if rowIsEmpty(r) {
			continue
		}
		advisor := strings.TrimSpace(cellAt(r, iAdvisor))
		if advisor == "" && iAdvisor < 0 {
			advisor = strings.TrimSpace(cellAt(r, 0))
		}
		if advisor == "" {
			continue
		}
		entries = append(entries, model.RosterEntry{
			Advisor:       advisor,
			Unit:          strings.TrimSpace(cellAt(r, iUnit)),
			Cohort:        model.ParseCohort(cellAt(r, iSpaLeg)),
			Program:       strings.TrimSpace(cellAt(r, iProgram)),
			PADate:        ParseDate(cellAt(r, iPADate)),
			Tenure:        model.ParseTenure(cellAt(r, iTenure)),
			MonthsCMP2025: int(ParseCurrency(cellAt(r, iMonthsCMP))),
		})
	}
	return dedupeRoster(entries)
}

func legacyRoster(values [][]string) []model.RosterEntry {
	var entries []model.RosterEntry
	for _, r := range values[1:] {
		if advisor := strings.TrimSpace(cellAt(r, 0)); advisor != "" {
			entries = append(entries, model.RosterEntry{Advisor: advisor})
		}
	}
	return dedupeRoster(entries)
}

func dedupeRoster(entries []model.RosterEntry) []model.RosterEntry {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		key := model.NormalizeName(e.Advisor)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}
