package sheet

import (
	"strings"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// salesHeaders are the columns used to locate the real header row of the
// new-business sheet.
var salesHeaders = []string{
	"month approved",
	"policy number",
	"advisor",
	"unit manager",
	"product",
	"date submitted",
	"date paid",
	"date approved",
}

// ParseSalesRows converts the raw new-business grid into transaction
// records. Rows above the detected header and fully blank rows are
// skipped; missing columns yield zero values.
func ParseSalesRows(values [][]string) []model.TransactionRecord {
	if len(values) < 2 {
		return nil
	}

	headerRow, score := detectHeaderRow(values, salesHeaders)
	if score < 3 {
		headerRow = 0
	}
	headers := values[headerRow]

	col := func(names ...string) int { return columnIndex(headers, names...) }
	iMonthApproved := col("Month Approved")
	iPolicyNumber := col("Policy Number")
	iAdvisor := col("Advisor")
	iUnitManager := col("Unit Manager")
	iPolicyOwner := col("Policy Owner")
	iProduct := col("Product")
	iANP := col("ANP")
	iFYP := col("FYP")
	iFYC := col("FYC")
	iMode := col("Mode")
	iMDRTFyp := col("MDRT FYP")
	iAFYC := col("AFYC")
	iCaseCount := col("Case Count")
	iFaceAmount := col("Face Amount")
	iDateSubmitted := col("Date Submitted")
	iDatePaid := col("Date Paid")
	iDateApproved := col("Date Approved")
	iRemarks := col("Remarks / Status", "Remarks")

	var rows []model.TransactionRecord
	for _, r := range values[headerRow+1:] {
		if rowIsEmpty(r) {
			continue
		}
		rows = append(rows, model.TransactionRecord{
			MonthApproved: strings.TrimSpace(cellAt(r, iMonthApproved)),
			PolicyNumber:  strings.TrimSpace(cellAt(r, iPolicyNumber)),
			Advisor:       strings.TrimSpace(cellAt(r, iAdvisor)),
			UnitManager:   strings.TrimSpace(cellAt(r, iUnitManager)),
			PolicyOwner:   strings.TrimSpace(cellAt(r, iPolicyOwner)),
			Product:       strings.TrimSpace(cellAt(r, iProduct)),
			Mode:          strings.TrimSpace(cellAt(r, iMode)),
			ANP:           ParseCurrency(cellAt(r, iANP)),
			FYP:           ParseCurrency(cellAt(r, iFYP)),
			FYC:           ParseCurrency(cellAt(r, iFYC)),
			AFYC:          ParseCurrency(cellAt(r, iAFYC)),
			MDRTFyp:       ParseCurrency(cellAt(r, iMDRTFyp)),
			CaseCount:     ParseCurrency(cellAt(r, iCaseCount)),
			FaceAmount:    ParseCurrency(cellAt(r, iFaceAmount)),
			DateSubmitted: ParseDate(cellAt(r, iDateSubmitted)),
			DatePaid:      ParseDate(cellAt(r, iDatePaid)),
			DateApproved:  ParseDate(cellAt(r, iDateApproved)),
			Remarks:       strings.TrimSpace(cellAt(r, iRemarks)),
		})
	}
	return rows
}
