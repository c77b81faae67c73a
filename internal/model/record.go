// Package model defines the data types shared by the sheet normalizer and
// the metrics engine: transaction records, roster entries, monthly DPR
// totals, the MoneyKpis accumulator, and the report tree returned to the
// dashboard.
package model

import "time"

// TransactionRecord is one insurance case's lifecycle snapshot as parsed
// from the new-business sheet. All money fields default to 0 and all dates
// to nil when the source cell is blank or unparseable. Records are
// immutable once parsed.
type TransactionRecord struct {
	MonthApproved string     `json:"monthApproved,omitempty"`
	PolicyNumber  string     `json:"policyNumber,omitempty"`
	Advisor       string     `json:"advisor,omitempty"`
	UnitManager   string     `json:"unitManager,omitempty"`
	PolicyOwner   string     `json:"policyOwner,omitempty"`
	Product       string     `json:"product,omitempty"`
	Mode          string     `json:"mode,omitempty"`
	ANP           float64    `json:"anp"`
	FYP           float64    `json:"fyp"`
	FYC           float64    `json:"fyc"`
	AFYC          float64    `json:"afyc"`
	MDRTFyp       float64    `json:"mdrtFyp"`
	CaseCount     float64    `json:"caseCount"`
	FaceAmount    float64    `json:"faceAmount"`
	DateSubmitted *time.Time `json:"dateSubmitted,omitempty"`
	DatePaid      *time.Time `json:"datePaid,omitempty"`
	DateApproved  *time.Time `json:"dateApproved,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
}

// HasApprovalProof reports whether the record carries any evidence of
// approval: an exact approved date or a non-empty month-approved label.
func (r *TransactionRecord) HasApprovalProof() bool {
	return r.DateApproved != nil || trimmed(r.MonthApproved) != ""
}

// DprRow is one advisor's one-month total from the independently
// maintained DPR ledger. Month is a YYYY-MM key.
type DprRow struct {
	Month       string  `json:"month"`
	Advisor     string  `json:"advisor"`
	FYC         float64 `json:"fyc"`
	ANP         float64 `json:"anp"`
	FYP         float64 `json:"fyp"`
	Persistency float64 `json:"persistency"`
}
