package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

func TestParseRosterEntries(t *testing.T) {
	t.Parallel()

	values := [][]string{
		{"ROSTER 2026"},
		{"Advisors", "Unit", "SPA / LEG", "Program", "PA Date", "Tenure", "Months CMP 2025"},
		{"Ana Cruz", "Alpha", "SPA", "Fast Track", "3/1/2025", "Rookie", "7"},
		{"Bea Santos", "Bravo", "Legacy", "", "", "Tenured", ""},
		{"ana   CRUZ", "Zulu", "LEG", "", "", "", ""},
		{"", "", "", "", "", "", ""},
	}

	got := ParseRosterEntries(values)

	require.Len(t, got, 2, "case-insensitive duplicate drops the later row")

	ana := got[0]
	assert.Equal(t, "Ana Cruz", ana.Advisor)
	assert.Equal(t, "Alpha", ana.Unit, "first occurrence wins")
	assert.Equal(t, model.CohortSpartan, ana.Cohort)
	assert.Equal(t, "Fast Track", ana.Program)
	require.NotNil(t, ana.PADate)
	assert.Equal(t, "2025-03-01", ana.PADate.Format("2006-01-02"))
	assert.Equal(t, model.TenureRookie, ana.Tenure)
	assert.Equal(t, 7, ana.MonthsCMP2025)

	bea := got[1]
	assert.Equal(t, model.CohortLegacy, bea.Cohort)
	assert.Equal(t, model.TenureTenured, bea.Tenure)
	assert.Nil(t, bea.PADate)
	assert.Equal(t, 0, bea.MonthsCMP2025)
}

func TestParseRosterEntriesLegacyFormat(t *testing.T) {
	t.Parallel()

	values := [][]string{
		{"Team Members"},
		{"Ana Cruz"},
		{"Bea Santos"},
		{""},
		{"Ana Cruz"},
	}

	got := ParseRosterEntries(values)

	require.Len(t, got, 2)
	assert.Equal(t, "Ana Cruz", got[0].Advisor)
	assert.Equal(t, "Bea Santos", got[1].Advisor)
	assert.Empty(t, got[0].Unit)
}
