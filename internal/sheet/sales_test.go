package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalesRows(t *testing.T) {
	t.Parallel()

	values := [][]string{
		{"TEAM SUPERNOVA NEW BUSINESS"},
		{"Month Approved", "Policy Number", "Advisor", "Unit Manager", "Policy Owner", "Product", "Mode", "ANP", "FYP", "FYC", "AFYC", "MDRT FYP", "Case Count", "Face Amount", "Date Submitted", "Date Paid", "Date Approved", "Remarks"},
		{"January 2026", "PN-001", "Ana Cruz", "Alpha", "Juan Dela Cruz", "Term Shield", "Annual", "₱24,000", "24,000", "12,000.50", "12,000.50", "24,000", "1", "1,000,000", "1/2/2026", "1/5/2026", "1/20/2026", "Issued"},
		{"", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"", "PN-002", "  Bea Santos ", "Bravo", "", "Ascend Peso", "", "", "", "abc", "", "", "", "", "", "1/9/2026", "", ""},
	}

	got := ParseSalesRows(values)

	require.Len(t, got, 2, "blank rows are skipped")

	first := got[0]
	assert.Equal(t, "January 2026", first.MonthApproved)
	assert.Equal(t, "PN-001", first.PolicyNumber)
	assert.Equal(t, "Ana Cruz", first.Advisor)
	assert.Equal(t, "Alpha", first.UnitManager)
	assert.Equal(t, "Juan Dela Cruz", first.PolicyOwner)
	assert.Equal(t, 24000.0, first.ANP)
	assert.Equal(t, 12000.50, first.FYC)
	assert.Equal(t, 1.0, first.CaseCount)
	require.NotNil(t, first.DateApproved)
	assert.Equal(t, "2026-01-20", first.DateApproved.Format("2006-01-02"))
	assert.Equal(t, "Issued", first.Remarks)

	second := got[1]
	assert.Equal(t, "Bea Santos", second.Advisor, "cells are trimmed")
	assert.Equal(t, 0.0, second.FYC, "unparseable money degrades to zero")
	assert.Nil(t, second.DateApproved)
	require.NotNil(t, second.DatePaid)
}

func TestParseSalesRowsHeaderOnFirstRowWhenNoneDetected(t *testing.T) {
	t.Parallel()

	values := [][]string{
		{"Advisor", "FYC"},
		{"Ana Cruz", "500"},
	}

	got := ParseSalesRows(values)

	// Below the detection threshold the first row is still treated as the
	// header, so the data row survives.
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Cruz", got[0].Advisor)
	assert.Equal(t, 500.0, got[0].FYC)
}

func TestParseSalesRowsEmptyGrid(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseSalesRows(nil))
	assert.Nil(t, ParseSalesRows([][]string{{"Advisor"}}))
}
