package model

// MoneyKpis is the additive aggregate threaded through every fold in the
// engine. The zero value is the identity; AddRecord and Merge keep it a
// commutative monoid, so processing order never changes a total.
type MoneyKpis struct {
	ANP        float64 `json:"anp"`
	FYP        float64 `json:"fyp"`
	FYC        float64 `json:"fyc"`
	AFYC       float64 `json:"afyc"`
	MDRTFyp    float64 `json:"mdrtFyp"`
	CaseCount  float64 `json:"caseCount"`
	FaceAmount float64 `json:"faceAmount"`
}

// AddRecord folds one transaction record into the accumulator in place.
func (k *MoneyKpis) AddRecord(r *TransactionRecord) {
	k.ANP += r.ANP
	k.FYP += r.FYP
	k.FYC += r.FYC
	k.AFYC += r.AFYC
	k.MDRTFyp += r.MDRTFyp
	k.CaseCount += r.CaseCount
	k.FaceAmount += r.FaceAmount
}

// Merge adds another aggregate field-wise into the accumulator in place.
func (k *MoneyKpis) Merge(o MoneyKpis) {
	k.ANP += o.ANP
	k.FYP += o.FYP
	k.FYC += o.FYC
	k.AFYC += o.AFYC
	k.MDRTFyp += o.MDRTFyp
	k.CaseCount += o.CaseCount
	k.FaceAmount += o.FaceAmount
}

// AdvisorStatus is one advisor's per-range snapshot: the four KPI buckets
// the classifier fills while folding transaction records. Open holds paid
// activity with no approval proof yet (case still with underwriting).
type AdvisorStatus struct {
	Advisor   string    `json:"advisor"`
	Unit      string    `json:"unit,omitempty"`
	Approved  MoneyKpis `json:"approved"`
	Submitted MoneyKpis `json:"submitted"`
	Paid      MoneyKpis `json:"paid"`
	Open      MoneyKpis `json:"open"`
}

// IsProducing reports approved activity in the range.
func (s *AdvisorStatus) IsProducing() bool {
	return s.Approved.CaseCount > 0 || s.Approved.FYC > 0 || s.Approved.FYP > 0
}

// IsPending reports unapproved paid pipeline in the range.
func (s *AdvisorStatus) IsPending() bool {
	return s.Open.CaseCount > 0 || s.Open.FYC > 0 || s.Open.FYP > 0
}
