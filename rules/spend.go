package rules

import "github.com/shopspring/decimal"

// PointsPerDollar is the platform-wide conversion rate: 25 points = $1.00.
// It is a system constant, not a per-campaign setting.
const PointsPerDollar = 25

// SpendEstimate is the projected cost of one campaign cycle given the
// current audience and reward configuration.
//
// The estimate does not model ties: a full tie-breaker payout can pay the
// same tier more than once, so callers must treat the top-N figure as a
// known possible under-estimate, not a bug.
type SpendEstimate struct {
	AudienceSize        int             `json:"audienceSize"`
	EstimatedWinners    int             `json:"estimatedWinners"`
	IsMaximumEstimate   bool            `json:"isMaximumEstimate"`
	TotalPoints         decimal.Decimal `json:"totalPoints"`
	TotalCashEquivalent decimal.Decimal `json:"totalCashEquivalent"`
}

// EstimateSpend projects the points and cash-equivalent cost of a cycle.
// For top-N the total is the sum of the tier amounts that will actually be
// paid (the audience may be smaller than N); for threshold and everyone it
// is winners times the single-tier reward amount.
func EstimateSpend(c CampaignConfig, audienceSize int) SpendEstimate {
	est := EstimateWinners(c.QualifierType, c.QualifierValue, audienceSize)

	var total decimal.Decimal
	if c.QualifierType == QualifierTopN {
		for i := 0; i < est.Count && i < len(c.TieredRewards); i++ {
			total = total.Add(c.TieredRewards[i])
		}
	} else {
		total = c.RewardAmount.Mul(decimal.NewFromInt(int64(est.Count)))
	}

	return SpendEstimate{
		AudienceSize:        audienceSize,
		EstimatedWinners:    est.Count,
		IsMaximumEstimate:   est.IsMaximum,
		TotalPoints:         total,
		TotalCashEquivalent: total.Div(decimal.NewFromInt(PointsPerDollar)),
	}
}
