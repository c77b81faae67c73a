package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", "1234.5", 1234.5},
		{"peso sign and commas", "₱1,234,567.89", 1234567.89},
		{"dollar sign", "$500", 500},
		{"negative", "-2,000", -2000},
		{"surrounding spaces", "  42  ", 42},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"pure text", "n/a", 0},
		{"lone dash", "-", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseCurrency(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string // empty means nil
	}{
		{"mdy slashes", "1/15/2026", "2026-01-15"},
		{"mdy dashes", "1-15-2026", "2026-01-15"},
		{"ymd", "2026/1/15", "2026-01-15"},
		{"two digit year", "3/9/26", "2026-03-09"},
		{"long month name", "January 15, 2026", "2026-01-15"},
		{"impossible day", "2/31/2026", ""},
		{"month thirteen", "13/1/2026", ""},
		{"empty", "", ""},
		{"garbage", "soon", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseDate(tt.in)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string // YYYY-MM, empty means nil
	}{
		{"numeric dash", "2026-01", "2026-01"},
		{"numeric slash", "2026/01", "2026-01"},
		{"full date collapses to month", "2026-01-15", "2026-01"},
		{"month name", "January 2026", "2026-01"},
		{"abbreviation", "Jan 2026", "2026-01"},
		{"mixed case abbreviation", "SEP 2026", "2026-09"},
		{"month thirteen", "2026-13", ""},
		{"year only", "2026", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseMonth(tt.in)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01"))
			assert.Equal(t, 1, got.Day())
		})
	}
}

func TestDetectHeaderRow(t *testing.T) {
	t.Parallel()

	values := [][]string{
		{"NEW BUSINESS 2026", "", ""},
		{"", "", ""},
		{"Advisor", "Product", "FYC"},
		{"Ana Cruz", "Term Shield", "1000"},
	}

	row, score := detectHeaderRow(values, []string{"advisor", "product", "fyc"})
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, score)
}

func TestNormHeaderCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "month approved", normHeader("Month\nApproved"))
	assert.Equal(t, "unit manager", normHeader("  Unit   Manager  "))
}
