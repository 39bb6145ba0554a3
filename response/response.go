package response

import (
	"time"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/shopspring/decimal"
)

// CampaignStats is the per-campaign payout rollup rendered on the rewards
// dashboard.
type CampaignStats struct {
	ID              uint                 `json:"id"`
	Project         string               `json:"project"`
	ReferenceID     string               `json:"referenceId"`
	Name            string               `json:"name"`
	Status          rules.CampaignStatus `json:"status"`
	CurrentCycle    int                  `json:"currentCycle"`
	RecipientCount  int64                `json:"recipientCount"`
	TotalPoints     decimal.Decimal      `json:"totalPoints"`
	TotalCash       decimal.Decimal      `json:"totalCash"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// CycleStats is one cycle's slice of a campaign's payout history.
type CycleStats struct {
	Cycle          int             `json:"cycle"`
	RecipientCount int64           `json:"recipientCount"`
	TotalPoints    decimal.Decimal `json:"totalPoints"`
	TotalCash      decimal.Decimal `json:"totalCash"`
}
