package rules

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CampaignConfig is the full set of user-editable campaign settings, as
// collected by the builder wizard. It is a plain value: operations on it
// return new values and never mutate in place, so concurrent readers of an
// existing campaign can never observe a half-applied edit.
type CampaignConfig struct {
	Name        string
	Description string
	Kind        CampaignKind

	StartDate            Date
	Recurrence           Recurrence
	Duration             int
	CustomRecurrenceDays int

	Participants []string
	BranchFilter string

	Metric         Metric
	QualifierType  QualifierType
	QualifierValue int

	RewardType     RewardType
	RewardAmount   decimal.Decimal
	TieredRewards  []decimal.Decimal
	TieBreakerRule TieBreakerRule
	TieBreakerPay  TieBreakerPayout

	PayoutMethod PayoutMethod
}

// EndDate derives the campaign's calendar end date from its schedule.
func (c CampaignConfig) EndDate() Date {
	return CampaignEndDate(c.StartDate, c.Duration, c.Recurrence, c.CustomRecurrenceDays)
}

// Campaign is a configured campaign together with its lifecycle state and
// the running totals accumulated by payout execution.
type Campaign struct {
	ID         string
	Status     CampaignStatus
	IsArchived bool

	// CurrentCycle counts completed recurrence periods, 0..Duration.
	CurrentCycle int

	TotalPayouts    decimal.Decimal
	TotalRecipients int64

	Config CampaignConfig
}

// IsActive reports whether the campaign is pending or running. Active
// campaigns lock most configuration fields against edits.
func (c Campaign) IsActive() bool {
	return c.Status == StatusPending || c.Status == StatusRunning
}

// lockedFields are read-only while a campaign is active. Duration stays
// editable (it may be extended) and participants may be added; everything
// that feeds qualification or payout math is frozen once the campaign can
// pay out.
var lockedFields = map[string]bool{
	"startDate":            true,
	"recurrence":           true,
	"customRecurrenceDays": true,
	"metric":               true,
	"qualifierType":        true,
	"qualifierValue":       true,
	"rewardType":           true,
	"rewardAmount":         true,
	"tieredRewards":        true,
	"tieBreakerRule":       true,
	"tieBreakerPayout":     true,
	"payoutMethod":         true,
}

// IsFieldLocked reports whether the named wizard field is read-only for the
// given campaign.
func IsFieldLocked(field string, c Campaign) bool {
	return c.IsActive() && lockedFields[field]
}

// TerminationAction is what the single terminate control does to a
// campaign in its current status.
type TerminationAction string

const (
	ActionCancel  TerminationAction = "cancel"
	ActionArchive TerminationAction = "archive"
)

// ClassifyTermination selects cancel for campaigns that could still pay out
// (pending or running) and archive for everything else. Cancellation and
// archival are mutually exclusive: the current status picks exactly one.
func ClassifyTermination(c Campaign) TerminationAction {
	if c.IsActive() {
		return ActionCancel
	}
	return ActionArchive
}

// Cancel returns a cancelled copy of the campaign. Only pending or running
// campaigns can be cancelled; the transition is irreversible and stops all
// further cycle progression.
func Cancel(c Campaign) (Campaign, error) {
	if !c.IsActive() {
		return c, errors.New("only pending or running campaigns can be cancelled")
	}
	c.Status = StatusCancelled
	return c, nil
}

// Archive returns an archived copy of the campaign, leaving its status
// untouched. Active campaigns must be cancelled first.
func Archive(c Campaign) (Campaign, error) {
	if c.IsActive() {
		return c, errors.New("active campaigns must be cancelled before archival")
	}
	c.IsArchived = true
	return c, nil
}
