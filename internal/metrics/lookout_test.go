package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

func productRec(advisor, product string, fyc float64) model.TransactionRecord {
	r := approvedRec(advisor, onDay(2026, time.January, 10), fyc)
	r.Product = product
	return r
}

func TestBuildProductSellers(t *testing.T) {
	t.Parallel()

	ix := NewRosterIndex(nil)
	rows := []model.TransactionRecord{
		productRec("Ana Cruz", "A+ Signature", 1000),
		productRec("Bea Santos", "a+signature plus", 2000),
		productRec("Cai Reyes", "Ascend Peso", 1500),
		productRec("Dio Velasco", "Ascendant Fund", 900), // needs the whole word
		productRec("Eli Ramos", "FutureSafe USD 5-Pay", 800),
		productRec("Fey Torres", "FutureSafe USD 10 Pay", 700),
		productRec("Gia Lopez", "Some Other Plan", 600),
	}

	got := BuildProductSellers(rows, january2026(), FilterAll, ix)

	require.Len(t, got.APlusSignature, 2)
	assert.Equal(t, "Bea Santos", got.APlusSignature[0].Advisor, "sorted by FYC descending")

	require.Len(t, got.Ascend, 1)
	assert.Equal(t, "Cai Reyes", got.Ascend[0].Advisor)

	require.Len(t, got.FutureSafeUsd5Pay, 1)
	assert.Equal(t, "Eli Ramos", got.FutureSafeUsd5Pay[0].Advisor)
}

func TestBuildSalesRoundup(t *testing.T) {
	t.Parallel()

	roster := rosterOf(
		model.RosterEntry{Advisor: "Ana Cruz", Unit: "Alpha", Cohort: model.CohortSpartan},
		model.RosterEntry{Advisor: "Bea Santos", Unit: "Bravo", Cohort: model.CohortLegacy},
	)
	ix := NewRosterIndex(roster)

	high := productRec("Ana Cruz", "Term Shield", 1000)
	high.AFYC = 5000
	low := productRec("Bea Santos", "Ascend Peso", 2000)
	low.AFYC = 1200
	unapproved := model.TransactionRecord{Advisor: "Ana Cruz", Product: "Term Shield", AFYC: 9999}

	got := BuildSalesRoundup([]model.TransactionRecord{low, high, unapproved}, january2026(), FilterAll, FilterAll, ix)

	require.Len(t, got, 2)
	assert.Equal(t, "Ana Cruz", got[0].Advisor)
	assert.Equal(t, model.CohortSpartan, got[0].Cohort)
	assert.Equal(t, 5000.0, got[0].AFYC)
	assert.Equal(t, model.CohortLegacy, got[1].Cohort)
}

func TestBuildSalesRoundupAdvisorFilter(t *testing.T) {
	t.Parallel()

	ix := NewRosterIndex(nil)
	rows := []model.TransactionRecord{
		productRec("Ana Cruz", "Term Shield", 1000),
		productRec("Bea Santos", "Term Shield", 2000),
	}

	got := BuildSalesRoundup(rows, january2026(), FilterAll, "ANA cruz", ix)

	require.Len(t, got, 1)
	assert.Equal(t, "Ana Cruz", got[0].Advisor)
}
