package rules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WizardStep is one of the five ordered campaign-builder steps.
type WizardStep int

const (
	StepSchedule WizardStep = iota + 1
	StepParticipants
	StepEvaluation
	StepQualification
	StepPayout
)

func (s WizardStep) String() string {
	switch s {
	case StepSchedule:
		return "schedule"
	case StepParticipants:
		return "participants"
	case StepEvaluation:
		return "evaluation"
	case StepQualification:
		return "qualification"
	case StepPayout:
		return "payout"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// FieldErrors flags the form fields that block the current step. It is
// plain data, not an error: the caller decides how to render a violation,
// and no violation is fatal.
type FieldErrors map[string]bool

func (e FieldErrors) OK() bool {
	for _, bad := range e {
		if bad {
			return false
		}
	}
	return true
}

// ValidateStep runs the step-local required-field checks. Evaluation and
// qualification have no blocking checks and always pass. Negative numeric
// input is surfaced as a flag, never clamped.
//
// Individual tier amounts are deliberately not checked for positivity;
// only the single-tier reward amount is.
func ValidateStep(step WizardStep, form CampaignConfig) FieldErrors {
	errs := FieldErrors{}
	switch step {
	case StepSchedule:
		if strings.TrimSpace(form.Name) == "" {
			errs["name"] = true
		}
		if form.StartDate.IsZero() {
			errs["startDate"] = true
		}
		if form.Duration < 1 {
			errs["duration"] = true
		}
		if form.CustomRecurrenceDays < 0 {
			errs["customRecurrenceDays"] = true
		}
	case StepParticipants:
		if len(form.Participants) == 0 {
			errs["participants"] = true
		}
	case StepEvaluation, StepQualification:
		// pass-through
	case StepPayout:
		if form.QualifierType != QualifierTopN && !form.RewardAmount.IsPositive() {
			errs["rewardAmount"] = true
		}
	default:
		panic(fmt.Sprintf("rules: unknown wizard step %d", int(step)))
	}
	return errs
}

// ValidateAll runs every step's checks and merges the flags.
func ValidateAll(form CampaignConfig) FieldErrors {
	errs := FieldErrors{}
	for step := StepSchedule; step <= StepPayout; step++ {
		for field, bad := range ValidateStep(step, form) {
			if bad {
				errs[field] = true
			}
		}
	}
	return errs
}

// WizardState is the immutable state of one wizard session. Transitions
// return a new state.
type WizardState struct {
	Step   WizardStep
	Form   CampaignConfig
	Errors FieldErrors
}

func NewWizard(form CampaignConfig) WizardState {
	return WizardState{Step: StepSchedule, Form: form}
}

// Next advances to the following step, or stays put with the violating
// fields flagged when the current step's checks fail.
func (w WizardState) Next() WizardState {
	errs := ValidateStep(w.Step, w.Form)
	if !errs.OK() {
		w.Errors = errs
		return w
	}
	w.Errors = nil
	if w.Step < StepPayout {
		w.Step++
	}
	return w
}

// Back retreats one step. It is always allowed above step one and never
// validates.
func (w WizardState) Back() WizardState {
	w.Errors = nil
	if w.Step > StepSchedule {
		w.Step--
	}
	return w
}

// WithForm replaces the working form, keeping the current step.
func (w WizardState) WithForm(form CampaignConfig) WizardState {
	w.Form = form
	w.Errors = nil
	return w
}

// FormFromCampaign rebuilds the wizard form for an existing campaign.
// Re-opening a submitted campaign reproduces the submitted form field for
// field.
func FormFromCampaign(c Campaign) CampaignConfig {
	return cloneConfig(c.Config)
}

// FinalizeCampaign turns a fully validated form into a campaign record.
// Creating assigns the given identity and pending status. Editing merges
// the form into the existing campaign, preserving identity, status,
// accumulated totals and the cycle counter; while the campaign is active,
// locked fields keep their existing values, duration may only grow, and
// participants may be added but never removed.
func FinalizeCampaign(form CampaignConfig, existing *Campaign, newID string) Campaign {
	if existing == nil {
		return Campaign{
			ID:     newID,
			Status: StatusPending,
			Config: cloneConfig(form),
		}
	}

	c := *existing
	merged := cloneConfig(form)
	if c.IsActive() {
		prev := c.Config
		merged.StartDate = prev.StartDate
		merged.Recurrence = prev.Recurrence
		merged.CustomRecurrenceDays = prev.CustomRecurrenceDays
		merged.Metric = prev.Metric
		merged.QualifierType = prev.QualifierType
		merged.QualifierValue = prev.QualifierValue
		merged.RewardType = prev.RewardType
		merged.RewardAmount = prev.RewardAmount
		merged.TieredRewards = append([]decimal.Decimal(nil), prev.TieredRewards...)
		merged.TieBreakerRule = prev.TieBreakerRule
		merged.TieBreakerPay = prev.TieBreakerPay
		merged.PayoutMethod = prev.PayoutMethod
		if merged.Duration < prev.Duration {
			merged.Duration = prev.Duration
		}
		merged.Participants = mergeParticipants(prev.Participants, form.Participants)
	}
	c.Config = merged
	return c
}

// mergeParticipants keeps every existing participant and appends the new
// ones in form order.
func mergeParticipants(existing, submitted []string) []string {
	out := append([]string(nil), existing...)
	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[p] = struct{}{}
	}
	for _, p := range submitted {
		if _, ok := known[p]; !ok {
			out = append(out, p)
			known[p] = struct{}{}
		}
	}
	return out
}

func cloneConfig(c CampaignConfig) CampaignConfig {
	c.Participants = append([]string(nil), c.Participants...)
	c.TieredRewards = append([]decimal.Decimal(nil), c.TieredRewards...)
	return c
}
