package model

// RangePreset selects how the reporting window is derived from the
// reference date.
type RangePreset string

const (
	PresetMTD       RangePreset = "MTD"
	PresetQTD       RangePreset = "QTD"
	PresetYTD       RangePreset = "YTD"
	PresetPrevMonth RangePreset = "PREV_MONTH"
	PresetCustom    RangePreset = "CUSTOM"
)

// Filters echoes the resolved request parameters back to the caller so the
// UI can display what was actually computed, not what was asked for.
type Filters struct {
	Preset  RangePreset `json:"preset"`
	Start   string      `json:"start"`
	End     string      `json:"end"`
	Unit    string      `json:"unit"`
	Advisor string      `json:"advisor"`
}

// Options lists the values available for the unit/advisor filter
// dropdowns, each headed by the literal "All".
type Options struct {
	Units    []string `json:"units"`
	Advisors []string `json:"advisors"`
}

// TeamKpis sums every advisor's buckets. Open is deliberately absent: the
// team view only reports approved, submitted, and paid totals.
type TeamKpis struct {
	Approved  MoneyKpis `json:"approved"`
	Submitted MoneyKpis `json:"submitted"`
	Paid      MoneyKpis `json:"paid"`
}

// ProducingAdvisors is the three-way status partition. An advisor can
// appear in both Producing and Pending (with a parenthesized display name
// in Pending), but never in NonProducing alongside either.
type ProducingAdvisors struct {
	Producing    []AdvisorStatus `json:"producing"`
	Pending      []AdvisorStatus `json:"pending"`
	NonProducing []AdvisorStatus `json:"nonProducing"`
}

// AdvisorRank is one leaderboard row for a single advisor.
type AdvisorRank struct {
	Advisor string  `json:"advisor"`
	Value   float64 `json:"value"`
}

// UnitRank is one leaderboard row for a unit.
type UnitRank struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Leaderboards holds the four top-10 boards.
type Leaderboards struct {
	AdvisorsByFYC []AdvisorRank `json:"advisorsByFYC"`
	AdvisorsByFYP []AdvisorRank `json:"advisorsByFYP"`
	UnitsByFYC    []UnitRank    `json:"unitsByFYC"`
	UnitsByFYP    []UnitRank    `json:"unitsByFYP"`
}

// TrendPoint is one calendar day of approved activity. The series is
// sparse: days with no approvals do not appear.
type TrendPoint struct {
	Date  string  `json:"date"`
	FYC   float64 `json:"fyc"`
	FYP   float64 `json:"fyp"`
	Cases float64 `json:"cases"`
}

// Trends wraps the daily approved series.
type Trends struct {
	ApprovedByDay []TrendPoint `json:"approvedByDay"`
}

// CohortPerformer is a cohort member with at least 2 approved cases;
// TopTier flags the 6+ superlative.
type CohortPerformer struct {
	Advisor string  `json:"advisor"`
	Cases   float64 `json:"cases"`
	TopTier bool    `json:"isTopTier"`
}

// CohortTotals aggregates a cohort's approved production.
type CohortTotals struct {
	ApprovedFYC   float64 `json:"approvedFyc"`
	ApprovedCases float64 `json:"approvedCases"`
	AvgFYCPerCase float64 `json:"avgFycPerCase"`
}

// CohortMonitoring is the Spartan or Legacy monitoring block.
type CohortMonitoring struct {
	Cohort         Cohort            `json:"cohort"`
	Total          int               `json:"total"`
	Producing      int               `json:"producing"`
	ActivityRatio  float64           `json:"activityRatio"`
	HighPerformers []CohortPerformer `json:"highPerformers"`
	Totals         CohortTotals      `json:"totals"`
}

// ProductSale is one approved sale of a watched product.
type ProductSale struct {
	Advisor       string  `json:"advisor"`
	Product       string  `json:"product"`
	FYC           float64 `json:"fyc"`
	PolicyNumber  string  `json:"policyNumber,omitempty"`
	MonthApproved string  `json:"monthApproved,omitempty"`
}

// ProductSellers lists approved sales of the three watched products.
type ProductSellers struct {
	APlusSignature    []ProductSale `json:"aPlusSignature"`
	Ascend            []ProductSale `json:"ascend"`
	FutureSafeUsd5Pay []ProductSale `json:"futureSafeUsd5Pay"`
}

// RoundupItem is one approved sale in the roundup list.
type RoundupItem struct {
	Advisor       string  `json:"advisor"`
	Cohort        Cohort  `json:"spaLeg,omitempty"`
	Product       string  `json:"product"`
	AFYC          float64 `json:"afyc"`
	PolicyNumber  string  `json:"policyNumber,omitempty"`
	MonthApproved string  `json:"monthApproved,omitempty"`
}

// CmpStreak is one advisor's unbroken monthly approval streak.
type CmpStreak struct {
	Advisor      string `json:"advisor"`
	StreakMonths int    `json:"streakMonths"`
}

// CmpReport buckets advisors by streak length as of AsOfMonth (YYYY-MM).
// Zero-streak advisors are omitted entirely.
type CmpReport struct {
	AsOfMonth string      `json:"asOfMonth"`
	ThreePlus []CmpStreak `json:"threePlus"`
	WatchTwo  []CmpStreak `json:"watch2"`
	WatchOne  []CmpStreak `json:"watch1"`
}

// SpecialLookouts groups the product watches, CMP streaks, and the
// roundup list.
type SpecialLookouts struct {
	ProductSellers             ProductSellers `json:"productSellers"`
	ConsistentMonthlyProducers CmpReport      `json:"consistentMonthlyProducers"`
	SalesRoundup               []RoundupItem  `json:"salesRoundup"`
}

// PpbRow is one advisor's quarter-to-date production-based-bonus state.
// Pointer fields are null when the concept does not apply: CCBRate when
// the case-count bonus is inapplicable, ProjectedBonus when no bonus rate
// is earned, the next-tier fields when the top tier is already reached.
type PpbRow struct {
	Advisor            string   `json:"advisor"`
	Cohort             Cohort   `json:"spaLeg,omitempty"`
	FYC                float64  `json:"fyc"`
	Cases              float64  `json:"cases"`
	M1Cases            float64  `json:"m1Cases"`
	M2Cases            float64  `json:"m2Cases"`
	M3Cases            float64  `json:"m3Cases"`
	PpbRate            float64  `json:"ppbRate"`
	CCBRate            *float64 `json:"ccbRate"`
	TotalBonusRate     float64  `json:"totalBonusRate"`
	ProjectedBonus     *float64 `json:"projectedBonus"`
	FYCToNextBonusTier *float64 `json:"fycToNextBonusTier"`
	NextPpbRate        *float64 `json:"nextPpbRate"`
	CasesToNextCCBTier *float64 `json:"casesToNextCcbTier"`
	NextCCBRate        *float64 `json:"nextCcbRate"`
}

// PpbTracker is the quarter-to-date bonus block. Months holds the three
// short month labels of the quarter in calendar order.
type PpbTracker struct {
	Quarter string    `json:"quarter"`
	Months  [3]string `json:"months"`
	Rows    []PpbRow  `json:"rows"`
}

// BadgeTier is a monthly-excellence tier label.
type BadgeTier string

const (
	TierSilver  BadgeTier = "Silver"
	TierGold    BadgeTier = "Gold"
	TierDiamond BadgeTier = "Diamond"
	TierMaster  BadgeTier = "Master"
)

// BadgeAchieved is an advisor at or above a tier threshold.
type BadgeAchieved struct {
	Advisor string    `json:"advisor"`
	Cohort  Cohort    `json:"spaLeg,omitempty"`
	Tier    BadgeTier `json:"tier"`
	Value   float64   `json:"value"`
}

// BadgeClose is an advisor short of their next tier by Remaining.
type BadgeClose struct {
	Advisor    string    `json:"advisor"`
	Cohort     Cohort    `json:"spaLeg,omitempty"`
	TargetTier BadgeTier `json:"targetTier"`
	Remaining  float64   `json:"remaining"`
	Value      float64   `json:"value"`
}

// BadgeBlock holds the full ranked achieved/close lists for one metric;
// display truncation is the caller's concern.
type BadgeBlock struct {
	Achieved []BadgeAchieved `json:"achieved"`
	Close    []BadgeClose    `json:"close"`
}

// MonthlyExcellenceBadges classifies month-to-date values against the
// fixed guide tables for the three badge metrics.
type MonthlyExcellenceBadges struct {
	AsOfMonth  string     `json:"asOfMonth"`
	Premiums   BadgeBlock `json:"premiums"`
	SavedLives BadgeBlock `json:"savedLives"`
	Income     BadgeBlock `json:"income"`
}

// MdrtRow is one advisor's YTD MDRT-FYP position. COT/TOT balances are
// null until the base MDRT target is met.
type MdrtRow struct {
	Advisor       string   `json:"advisor"`
	Cohort        Cohort   `json:"spaLeg,omitempty"`
	MDRTFyp       float64  `json:"mdrtFyp"`
	Qualified     bool     `json:"qualified"`
	BalanceToMdrt float64  `json:"balanceToMdrt"`
	BalanceToCot  *float64 `json:"balanceToCot"`
	BalanceToTot  *float64 `json:"balanceToTot"`
}

// MdrtTracker is the year-to-date MDRT qualification block.
type MdrtTracker struct {
	AsOf          string    `json:"asOf"`
	TargetPremium float64   `json:"targetPremium"`
	Rows          []MdrtRow `json:"rows"`
}

// ProductMixEntry is one product's share of an advisor's approved
// production.
type ProductMixEntry struct {
	Product string  `json:"product"`
	FYC     float64 `json:"fyc"`
	Cases   float64 `json:"cases"`
}

// AdvisorDetail is the drill-down block for a single selected advisor.
type AdvisorDetail struct {
	Advisor       string            `json:"advisor"`
	Approved      MoneyKpis         `json:"approved"`
	Submitted     MoneyKpis         `json:"submitted"`
	Paid          MoneyKpis         `json:"paid"`
	ProductMix    []ProductMixEntry `json:"productMix"`
	ApprovedByDay []TrendPoint      `json:"approvedByDay"`
}

// Summaries carries the pre-rendered copy-paste text blocks.
type Summaries struct {
	SalesRoundup string `json:"salesRoundup,omitempty"`
	CMP          string `json:"cmp,omitempty"`
}

// Report is the full aggregate tree produced by one computation pass.
type Report struct {
	ReportID                string                  `json:"reportId"`
	GeneratedAt             string                  `json:"generatedAt"`
	Filters                 Filters                 `json:"filters"`
	Options                 Options                 `json:"options"`
	Team                    TeamKpis                `json:"team"`
	ProducingAdvisors       ProducingAdvisors       `json:"producingAdvisors"`
	Leaderboards            Leaderboards            `json:"leaderboards"`
	Trends                  Trends                  `json:"trends"`
	SpartanMonitoring       CohortMonitoring        `json:"spartanMonitoring"`
	LegacyMonitoring        CohortMonitoring        `json:"legacyMonitoring"`
	SpecialLookouts         SpecialLookouts         `json:"specialLookouts"`
	PpbTracker              PpbTracker              `json:"ppbTracker"`
	MonthlyExcellenceBadges MonthlyExcellenceBadges `json:"monthlyExcellenceBadges"`
	Mdrt                    MdrtTracker             `json:"mdrtTracker"`
	AdvisorDetail           *AdvisorDetail          `json:"advisorDetail,omitempty"`
	Summaries               Summaries               `json:"summaries"`
}
