package sheet

import (
	"strings"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

var dprHeaders = []string{"month", "advisor", "fyc", "anp", "fyp", "persistency"}

// ParseDprRows converts the monthly DPR totals grid into rows keyed by
// YYYY-MM month. Rows whose month cell cannot be resolved to a calendar
// month are dropped; money cells degrade to 0 like everywhere else.
func ParseDprRows(values [][]string) []model.DprRow {
	if len(values) < 2 {
		return nil
	}

	headerRow, score := detectHeaderRow(values, dprHeaders)
	if score < 2 {
		headerRow = 0
	}
	headers := values[headerRow]

	iMonth := columnIndex(headers, "Month")
	iAdvisor := columnIndex(headers, "Advisor", "Advisors", "Name")
	iFYC := columnIndex(headers, "FYC")
	iANP := columnIndex(headers, "ANP")
	iFYP := columnIndex(headers, "FYP")
	iPersistency := columnIndex(headers, "Persistency")

	var rows []model.DprRow
	for _, r := range values[headerRow+1:] {
		if rowIsEmpty(r) {
			continue
		}
		advisor := strings.TrimSpace(cellAt(r, iAdvisor))
		month := ParseMonth(cellAt(r, iMonth))
		if advisor == "" || month == nil {
			continue
		}
		rows = append(rows, model.DprRow{
			Month:       month.Format("2006-01"),
			Advisor:     advisor,
			FYC:         ParseCurrency(cellAt(r, iFYC)),
			ANP:         ParseCurrency(cellAt(r, iANP)),
			FYP:         ParseCurrency(cellAt(r, iFYP)),
			Persistency: ParseCurrency(cellAt(r, iPersistency)),
		})
	}
	return rows
}
