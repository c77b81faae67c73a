// Package summary renders the copy-paste text blocks the team leads
// drop into their group chats: the sales roundup and the consistent
// monthly producers list. Formatting quirks here (the peso sign, the
// threshold below which amounts are hidden) are chat conventions, not
// display bugs.
package summary

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/judd-droid/supernovabigboard/internal/model"
)

// amountFloor hides small amounts from the shared roundup; tiny AFYC
// lines read as noise in chat.
const amountFloor = 1000

var peso = message.NewPrinter(language.English)

func formatPeso(v float64) string {
	return peso.Sprintf("₱%.0f", v)
}

func cohortTag(c model.Cohort) string {
	switch c {
	case model.CohortSpartan:
		return " [SPA]"
	case model.CohortLegacy:
		return " [LEG]"
	default:
		return ""
	}
}

// SalesRoundup renders the approved-sales list as a shareable bullet
// block. Amounts below the floor are omitted from the line entirely.
func SalesRoundup(items []model.RoundupItem) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("SALES ROUNDUP\n")
	for _, item := range items {
		b.WriteString("• ")
		b.WriteString(item.Advisor)
		b.WriteString(cohortTag(item.Cohort))
		b.WriteString(" — ")
		b.WriteString(item.Product)
		if item.AFYC >= amountFloor {
			b.WriteString(" — ")
			b.WriteString(formatPeso(item.AFYC))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// CMP renders the consistent-monthly-producer buckets as a shareable
// bullet block. Empty buckets are skipped.
func CMP(report model.CmpReport) string {
	if len(report.ThreePlus) == 0 && len(report.WatchTwo) == 0 && len(report.WatchOne) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("CONSISTENT MONTHLY PRODUCERS\n")
	fmt.Fprintf(&b, "As of %s\n", strings.ReplaceAll(report.AsOfMonth, "-", "/"))

	writeBucket := func(title string, streaks []model.CmpStreak) {
		if len(streaks) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(title)
		b.WriteString("\n")
		for _, s := range streaks {
			fmt.Fprintf(&b, "• %s (%d)\n", s.Advisor, s.StreakMonths)
		}
	}
	writeBucket("3+ months:", report.ThreePlus)
	writeBucket("2 months:", report.WatchTwo)
	writeBucket("1 month:", report.WatchOne)

	return strings.TrimRight(b.String(), "\n")
}

// Build fills both summaries for a computed report.
func Build(report *model.Report) model.Summaries {
	return model.Summaries{
		SalesRoundup: SalesRoundup(report.SpecialLookouts.SalesRoundup),
		CMP:          CMP(report.SpecialLookouts.ConsistentMonthlyProducers),
	}
}
