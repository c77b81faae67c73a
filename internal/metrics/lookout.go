package metrics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

var (
	aPlusPattern  = regexp.MustCompile(`(?i)a\+\s*signature`)
	ascendPattern = regexp.MustCompile(`(?i)\bascend\b`)
	fivePattern   = regexp.MustCompile(`\b5\b`)
	payPattern    = regexp.MustCompile(`(?i)pay`)
)

func isFutureSafeUsd5Pay(product string) bool {
	collapsed := strings.ToLower(strings.Join(strings.Fields(product), ""))
	return strings.Contains(collapsed, "futuresafe") &&
		strings.Contains(collapsed, "usd") &&
		fivePattern.MatchString(product) &&
		payPattern.MatchString(product)
}

// BuildProductSellers lists approved sales of the three watched products
// within the range, each list sorted by FYC descending. A record can land
// in more than one list if its product name matches several patterns.
func BuildProductSellers(rows []model.TransactionRecord, rng Range, unitFilter string, ix *RosterIndex) model.ProductSellers {
	var out model.ProductSellers

	for i := range rows {
		r := &rows[i]
		if r.Advisor == "" || r.Product == "" {
			continue
		}
		if !ix.MatchesUnit(r.Advisor, unitFilter) {
			continue
		}
		if !IsApprovedInRange(r, rng) {
			continue
		}

		item := model.ProductSale{
			Advisor:       r.Advisor,
			Product:       r.Product,
			FYC:           r.FYC,
			PolicyNumber:  r.PolicyNumber,
			MonthApproved: r.MonthApproved,
		}

		if aPlusPattern.MatchString(r.Product) {
			out.APlusSignature = append(out.APlusSignature, item)
		}
		if ascendPattern.MatchString(r.Product) {
			out.Ascend = append(out.Ascend, item)
		}
		if isFutureSafeUsd5Pay(r.Product) {
			out.FutureSafeUsd5Pay = append(out.FutureSafeUsd5Pay, item)
		}
	}

	byFYC := func(items []model.ProductSale) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].FYC > items[j].FYC })
	}
	byFYC(out.APlusSignature)
	byFYC(out.Ascend)
	byFYC(out.FutureSafeUsd5Pay)

	return out
}

// BuildSalesRoundup lists every approved sale in the range as a shareable
// line item, tagged with the seller's cohort so the UI can filter
// Spartans/Legacy. Sorted by AFYC descending, ties alphabetical.
func BuildSalesRoundup(rows []model.TransactionRecord, rng Range, unitFilter, advisorFilter string, ix *RosterIndex) []model.RoundupItem {
	var out []model.RoundupItem

	for i := range rows {
		r := &rows[i]
		if r.Advisor == "" || r.Product == "" {
			continue
		}
		if !matchesAdvisor(r.Advisor, advisorFilter) {
			continue
		}
		if !ix.MatchesUnit(r.Advisor, unitFilter) {
			continue
		}
		if !IsApprovedInRange(r, rng) {
			continue
		}

		out = append(out, model.RoundupItem{
			Advisor:       r.Advisor,
			Cohort:        ix.Cohort(r.Advisor),
			Product:       r.Product,
			AFYC:          r.AFYC,
			PolicyNumber:  r.PolicyNumber,
			MonthApproved: r.MonthApproved,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AFYC != out[j].AFYC {
			return out[i].AFYC > out[j].AFYC
		}
		return out[i].Advisor < out[j].Advisor
	})
	return out
}
