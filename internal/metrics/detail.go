package metrics

import (
	"sort"
	"strings"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

const productMixSize = 10

// BuildAdvisorDetail computes the drill-down block for one advisor: the
// three KPI buckets over the range, the top products by approved FYC,
// and the advisor-filtered daily trend.
func BuildAdvisorDetail(rows []model.TransactionRecord, advisor string, rng Range, unitFilter string, ix *RosterIndex) *model.AdvisorDetail {
	detail := &model.AdvisorDetail{Advisor: advisor}

	type mix struct {
		fyc   float64
		cases float64
	}
	byProduct := make(map[string]*mix)
	var productOrder []string

	for i := range rows {
		r := &rows[i]
		if !matchesAdvisor(r.Advisor, advisor) {
			continue
		}
		if !ix.MatchesUnit(r.Advisor, unitFilter) {
			continue
		}

		if IsApprovedInRange(r, rng) {
			detail.Approved.AddRecord(r)

			p := strings.TrimSpace(r.Product)
			if p == "" {
				p = "Unknown"
			}
			m, ok := byProduct[p]
			if !ok {
				m = &mix{}
				byProduct[p] = m
				productOrder = append(productOrder, p)
			}
			m.fyc += r.FYC
			m.cases += r.CaseCount
		}
		if rng.Contains(r.DateSubmitted) {
			detail.Submitted.AddRecord(r)
		}
		if rng.Contains(r.DatePaid) {
			detail.Paid.AddRecord(r)
		}
	}

	for _, p := range productOrder {
		detail.ProductMix = append(detail.ProductMix, model.ProductMixEntry{
			Product: p,
			FYC:     byProduct[p].fyc,
			Cases:   byProduct[p].cases,
		})
	}
	sort.SliceStable(detail.ProductMix, func(i, j int) bool {
		return detail.ProductMix[i].FYC > detail.ProductMix[j].FYC
	})
	if len(detail.ProductMix) > productMixSize {
		detail.ProductMix = detail.ProductMix[:productMixSize]
	}

	detail.ApprovedByDay = BuildApprovedTrends(rows, rng, unitFilter, advisor, ix)
	return detail
}
