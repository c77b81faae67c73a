package metrics

import (
	"time"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// onDay returns a pointer to a UTC calendar day, the shape every record
// date field carries.
func onDay(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func january2026() Range {
	return Range{Start: dayUTC(2026, time.January, 1), End: dayUTC(2026, time.January, 31)}
}

// approvedRec is a record carrying an exact approved date plus uniform
// money fields, the common case in classifier tests.
func approvedRec(advisor string, approved *time.Time, fyc float64) model.TransactionRecord {
	return model.TransactionRecord{
		Advisor:      advisor,
		Product:      "Term Shield",
		DateApproved: approved,
		ANP:          fyc * 2,
		FYP:          fyc * 2,
		FYC:          fyc,
		AFYC:         fyc,
		MDRTFyp:      fyc * 2,
		CaseCount:    1,
	}
}

// paidRec is paid in range with no approval proof, the Open-bucket shape.
func paidRec(advisor string, paid *time.Time, fyc float64) model.TransactionRecord {
	return model.TransactionRecord{
		Advisor:   advisor,
		Product:   "Term Shield",
		DatePaid:  paid,
		FYP:       fyc * 2,
		FYC:       fyc,
		AFYC:      fyc,
		CaseCount: 1,
	}
}

func rosterOf(entries ...model.RosterEntry) []model.RosterEntry {
	return entries
}
