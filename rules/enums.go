package rules

import "fmt"

// Enumerated campaign fields. These are closed sets: a value outside the
// set is a caller bug, so the check helpers panic instead of returning an
// error. Wizard-level validation catches user input long before these run.

type CampaignKind string

const (
	KindAutomated CampaignKind = "automated"
	KindManual    CampaignKind = "manual"
)

type CampaignStatus string

const (
	StatusPending   CampaignStatus = "pending"
	StatusRunning   CampaignStatus = "running"
	StatusCompleted CampaignStatus = "completed"
	StatusFailed    CampaignStatus = "failed"
	StatusCancelled CampaignStatus = "cancelled"
)

type Recurrence string

const (
	RecurrenceNone      Recurrence = "none"
	RecurrenceWeekly    Recurrence = "weekly"
	RecurrenceBiweekly  Recurrence = "biweekly"
	RecurrenceMonthly   Recurrence = "monthly"
	RecurrenceQuarterly Recurrence = "quarterly"
	RecurrenceCustom    Recurrence = "custom"
)

type Metric string

const (
	MetricProScore   Metric = "pro_score"
	MetricRevenue    Metric = "revenue"
	MetricReviews    Metric = "reviews"
	MetricCompletion Metric = "completion"
	MetricReferrals  Metric = "referrals"
)

type QualifierType string

const (
	QualifierTopN      QualifierType = "top_n"
	QualifierThreshold QualifierType = "threshold"
	QualifierEveryone  QualifierType = "everyone"
)

type RewardType string

const (
	RewardPoints RewardType = "points"
	// RewardCurrency is legacy; amounts are always computed in points and
	// converted at the fixed rate in spend.go.
	RewardCurrency RewardType = "currency"
)

type TieBreakerRule string

const (
	// TieBreakStandard is competition ranking: 1,2,2,4.
	TieBreakStandard TieBreakerRule = "standard"
	// TieBreakDense does not skip ranks after a tie: 1,2,2,3.
	TieBreakDense TieBreakerRule = "dense"
)

type TieBreakerPayout string

const (
	// PayoutFull pays every tied user the whole per-rank amount.
	PayoutFull TieBreakerPayout = "full"
	// PayoutSplit divides the per-rank amount evenly across the tie group.
	PayoutSplit TieBreakerPayout = "split"
)

type PayoutMethod string

const (
	PayoutAutomatic PayoutMethod = "automatic"
	PayoutManual    PayoutMethod = "manual"
)

func mustRecurrence(r Recurrence) {
	switch r {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceCustom:
	default:
		panic(fmt.Sprintf("rules: unknown recurrence %q", r))
	}
}

func mustQualifier(q QualifierType) {
	switch q {
	case QualifierTopN, QualifierThreshold, QualifierEveryone:
	default:
		panic(fmt.Sprintf("rules: unknown qualifier type %q", q))
	}
}

func mustTieBreakerRule(r TieBreakerRule) {
	switch r {
	case TieBreakStandard, TieBreakDense:
	default:
		panic(fmt.Sprintf("rules: unknown tie breaker rule %q", r))
	}
}

func mustTieBreakerPayout(p TieBreakerPayout) {
	switch p {
	case PayoutFull, PayoutSplit:
	default:
		panic(fmt.Sprintf("rules: unknown tie breaker payout %q", p))
	}
}
