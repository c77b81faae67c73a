package metrics

import (
	"time"

	"github.com/judd-droid/supernovabigboard/internal/model"
	"github.com/judd-droid/supernovabigboard/internal/sheet"
)

// IsApprovedInRange reports whether a record counts as approved within
// the window. The exact approved date wins when present; otherwise the
// free-text month-approved label is tested at month granularity: its
// month must fall between the window's start month and end month,
// inclusive. This tolerates sheets that record approval only by month
// name. Records with neither signal, or with unparseable month text, are
// excluded.
func IsApprovedInRange(r *model.TransactionRecord, rng Range) bool {
	if rng.Contains(r.DateApproved) {
		return true
	}
	if r.DateApproved != nil || r.MonthApproved == "" {
		return false
	}
	md := sheet.ParseMonth(r.MonthApproved)
	if md == nil {
		return false
	}
	return !md.Before(monthStart(rng.Start)) && !md.After(monthStart(rng.End))
}

// approvalDay resolves the calendar day a record's approval is attributed
// to: the exact approved date, else the first day of the month-approved
// month. Used by the daily trend builder.
func approvalDay(r *model.TransactionRecord) *time.Time {
	if r.DateApproved != nil {
		return r.DateApproved
	}
	return sheet.ParseMonth(r.MonthApproved)
}

// approvalMonth resolves the calendar month a record's approval belongs
// to, preferring the month-approved label over the exact date. The CMP
// streak engine uses this reversed priority: the sheet's month label is
// the system of record for "which month did this count for".
func approvalMonth(r *model.TransactionRecord) *time.Time {
	if md := sheet.ParseMonth(r.MonthApproved); md != nil {
		return md
	}
	if r.DateApproved != nil {
		ms := monthStart(*r.DateApproved)
		return &ms
	}
	return nil
}
