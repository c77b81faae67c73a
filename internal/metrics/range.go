// Package metrics is the aggregation engine: pure, synchronous
// transformations from parsed transaction/roster/DPR rows into the
// dashboard's aggregate blocks. Nothing in this package performs I/O or
// keeps state between calls; given identical inputs every function
// produces identical output.
package metrics

import (
	"regexp"
	"time"

	"github.com/rotisserie/eris"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// FilterAll is the literal unit/advisor filter value meaning "no filter".
const FilterAll = "All"

// ErrInvalidRange signals a malformed custom date range. The caller
// decides the fallback; the resolver never substitutes a default.
var ErrInvalidRange = eris.New("metrics: invalid custom range")

// Range is an inclusive [Start, End] window of UTC calendar days.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the window. A nil date is never
// in range.
func (r Range) Contains(d *time.Time) bool {
	if d == nil {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// PresetRange resolves a preset against the reference instant. The
// calendar day is read in the reference's own location (the agency
// timezone, see config's report timezone) and then pinned to a UTC
// day, so an early Manila morning still resolves to the Manila date.
func PresetRange(preset model.RangePreset, ref time.Time) Range {
	y, m, d := ref.Date()
	end := dayUTC(y, m, d)

	switch preset {
	case model.PresetQTD:
		qm := time.Month((int(m)-1)/3*3 + 1)
		return Range{Start: dayUTC(y, qm, 1), End: end}
	case model.PresetYTD:
		return Range{Start: dayUTC(y, time.January, 1), End: end}
	case model.PresetPrevMonth:
		// time.Date normalizes day 0 to the last day of the prior month.
		return Range{Start: dayUTC(y, m-1, 1), End: dayUTC(y, m, 0)}
	default: // MTD
		return Range{Start: dayUTC(y, m, 1), End: end}
	}
}

var isoDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CustomRange validates explicit start/end strings (YYYY-MM-DD) and
// returns the inclusive window. Non-ISO input and impossible calendar
// dates are rejected with ErrInvalidRange.
func CustomRange(start, end string) (Range, error) {
	s, err := parseISODay(start)
	if err != nil {
		return Range{}, eris.Wrapf(ErrInvalidRange, "start %q", start)
	}
	e, err := parseISODay(end)
	if err != nil {
		return Range{}, eris.Wrapf(ErrInvalidRange, "end %q", end)
	}
	return Range{Start: s, End: e}, nil
}

func parseISODay(s string) (time.Time, error) {
	if !isoDay.MatchString(s) {
		return time.Time{}, eris.Errorf("metrics: not an ISO day: %q", s)
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, eris.Wrap(err, "metrics: parse ISO day")
	}
	return t, nil
}

func dayUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthStart truncates a date to the first day of its month.
func monthStart(t time.Time) time.Time {
	return dayUTC(t.Year(), t.Month(), 1)
}

// addMonths moves a month-start date by delta whole months.
func addMonths(t time.Time, delta int) time.Time {
	return dayUTC(t.Year(), t.Month()+time.Month(delta), 1)
}

// monthKey renders a date's month as YYYY-MM.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// isoDate renders a date as YYYY-MM-DD.
func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
