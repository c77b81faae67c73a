// Package sheet normalizes raw spreadsheet cell grids into the typed
// records the metrics engine consumes. Parsing is best-effort throughout:
// a malformed currency string or date degrades to zero or nil, never to an
// error, because a single bad cell must not take down the whole report.
package sheet

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParseCurrency converts a sheet cell to a number, stripping currency
// symbols, commas, and whitespace. Unparseable input yields 0.
func ParseCurrency(v string) float64 {
	s := strings.TrimSpace(v)
	if s == "" {
		return 0
	}
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseDate converts a sheet cell to a UTC day-granularity date. It
// accepts m/d/yyyy and yyyy/m/d with "/" or "-" separators, two-digit
// years (mapped to 20xx), and falls back to a few common layouts.
// Unparseable input yields nil.
func ParseDate(v string) *time.Time {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}

	parts := splitDate(s)
	if len(parts) == 3 && len(parts[2]) >= 2 {
		ymd := len(parts[0]) == 4
		var mRaw, dRaw, yRaw string
		if ymd {
			yRaw, mRaw, dRaw = parts[0], parts[1], parts[2]
		} else {
			mRaw, dRaw, yRaw = parts[0], parts[1], parts[2]
		}
		if len(yRaw) == 2 {
			yRaw = "20" + yRaw
		}
		y, errY := strconv.Atoi(yRaw)
		m, errM := strconv.Atoi(mRaw)
		d, errD := strconv.Atoi(dRaw)
		if errY == nil && errM == nil && errD == nil && y > 1900 && m >= 1 && m <= 12 && d >= 1 && d <= 31 {
			t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
			// Reject impossible dates that normalized into the next month.
			if t.Day() == d && int(t.Month()) == m {
				return &t
			}
			return nil
		}
	}

	for _, layout := range []string{"2006-01-02T15:04:05Z07:00", "January 2, 2006", "Jan 2, 2006", "2 January 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	return nil
}

func splitDate(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var numericMonth = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})(?:[/-](\d{1,2}))?$`)

// ParseMonth converts a month-approved label to the first day of that
// calendar month in UTC. It accepts YYYY-MM, YYYY/MM, YYYY-MM-DD, and
// textual forms like "January 2026" or "Jan 2026". Unparseable input
// yields nil.
func ParseMonth(v string) *time.Time {
	raw := strings.TrimSpace(v)
	if raw == "" {
		return nil
	}

	if m := numericMonth.FindStringSubmatch(raw); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		if mo >= 1 && mo <= 12 {
			t := time.Date(y, time.Month(mo), 1, 0, 0, 0, 0, time.UTC)
			return &t
		}
		return nil
	}

	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return nil
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}

	token := strings.ToLower(parts[0])
	mi := -1
	for i, name := range monthNames {
		if name == token {
			mi = i
			break
		}
	}
	if mi == -1 && len(token) >= 3 {
		abbr := token[:3]
		for i, name := range monthNames {
			if strings.HasPrefix(name, abbr) {
				mi = i
				break
			}
		}
	}
	if mi == -1 {
		return nil
	}
	t := time.Date(year, time.Month(mi+1), 1, 0, 0, 0, 0, time.UTC)
	return &t
}

// normHeader collapses whitespace runs and lowercases a header cell so
// line breaks and stray spaces inside merged header cells don't break
// column resolution.
func normHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// detectHeaderRow scans the first few rows of a grid for the row that
// matches the most expected headers. Sheets often carry a decorative
// title row above the real header.
func detectHeaderRow(values [][]string, expected []string) (rowIndex, score int) {
	best := -1
	scanLimit := len(values)
	if scanLimit > 10 {
		scanLimit = 10
	}
	for i := 0; i < scanLimit; i++ {
		here := make(map[string]bool, len(values[i]))
		for _, cell := range values[i] {
			here[normHeader(cell)] = true
		}
		s := 0
		for _, h := range expected {
			if here[h] {
				s++
			}
		}
		if s > best {
			best = s
			rowIndex = i
		}
	}
	return rowIndex, best
}

// columnIndex resolves the first matching header among candidates, or -1.
func columnIndex(headers []string, candidates ...string) int {
	for _, c := range candidates {
		want := normHeader(c)
		for i, h := range headers {
			if normHeader(h) == want {
				return i
			}
		}
	}
	return -1
}

// cellAt returns the cell at column i, tolerating ragged rows.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// rowIsEmpty reports whether every cell is blank.
func rowIsEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
