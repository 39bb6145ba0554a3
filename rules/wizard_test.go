package rules_test

import (
	"testing"
	"time"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/stretchr/testify/assert"
)

func validForm() rules.CampaignConfig {
	return rules.CampaignConfig{
		Name:             "Spring Sprint",
		Kind:             rules.KindAutomated,
		StartDate:        rules.NewDate(2024, time.March, 1),
		Recurrence:       rules.RecurrenceMonthly,
		Duration:         3,
		Participants:     []string{"Technicians"},
		Metric:           rules.MetricProScore,
		QualifierType:    rules.QualifierEveryone,
		RewardType:       rules.RewardPoints,
		RewardAmount:     dec(50),
		TieBreakerRule:   rules.TieBreakStandard,
		TieBreakerPay:    rules.PayoutFull,
		PayoutMethod:     rules.PayoutAutomatic,
	}
}

func TestValidateStepSchedule(t *testing.T) {
	form := validForm()
	form.Name = "  "
	form.StartDate = rules.Date{}
	form.Duration = 0

	errs := rules.ValidateStep(rules.StepSchedule, form)
	assert.True(t, errs["name"])
	assert.True(t, errs["startDate"])
	assert.True(t, errs["duration"])
	assert.False(t, errs.OK())

	assert.True(t, rules.ValidateStep(rules.StepSchedule, validForm()).OK())
}

func TestValidateStepScheduleNegativeCustomDays(t *testing.T) {
	form := validForm()
	form.Recurrence = rules.RecurrenceCustom
	form.CustomRecurrenceDays = -5

	errs := rules.ValidateStep(rules.StepSchedule, form)
	assert.True(t, errs["customRecurrenceDays"])
}

func TestValidateStepParticipants(t *testing.T) {
	form := validForm()
	form.Participants = nil

	errs := rules.ValidateStep(rules.StepParticipants, form)
	assert.True(t, errs["participants"])
}

func TestValidateStepEvaluationAndQualificationPassThrough(t *testing.T) {
	var empty rules.CampaignConfig
	assert.True(t, rules.ValidateStep(rules.StepEvaluation, empty).OK())
	assert.True(t, rules.ValidateStep(rules.StepQualification, empty).OK())
}

func TestValidateStepPayout(t *testing.T) {
	form := validForm()
	form.RewardAmount = dec(0)
	assert.True(t, rules.ValidateStep(rules.StepPayout, form)["rewardAmount"])

	form.RewardAmount = dec(-10)
	assert.True(t, rules.ValidateStep(rules.StepPayout, form)["rewardAmount"])

	// tiered campaigns skip the single-tier amount check entirely; tier
	// amounts themselves are not validated for positivity
	form.QualifierType = rules.QualifierTopN
	form.TieredRewards = decs(0, -5)
	assert.True(t, rules.ValidateStep(rules.StepPayout, form).OK())
}

func TestWizardNextBlockedUntilStepValid(t *testing.T) {
	form := validForm()
	form.Name = ""
	w := rules.NewWizard(form)

	blocked := w.Next()
	assert.Equal(t, rules.StepSchedule, blocked.Step)
	assert.True(t, blocked.Errors["name"])

	fixed := blocked.WithForm(validForm()).Next()
	assert.Equal(t, rules.StepParticipants, fixed.Step)
	assert.True(t, fixed.Errors.OK())
}

func TestWizardBackAlwaysAllowed(t *testing.T) {
	w := rules.NewWizard(rules.CampaignConfig{}) // invalid everywhere
	w.Step = rules.StepPayout

	w = w.Back()
	assert.Equal(t, rules.StepQualification, w.Step)

	w.Step = rules.StepSchedule
	assert.Equal(t, rules.StepSchedule, w.Back().Step)
}

func TestWizardWalksAllStepsForValidForm(t *testing.T) {
	w := rules.NewWizard(validForm())
	for i := 0; i < 4; i++ {
		w = w.Next()
		assert.True(t, w.Errors.OK())
	}
	assert.Equal(t, rules.StepPayout, w.Step)
	// Next on the last step stays put
	assert.Equal(t, rules.StepPayout, w.Next().Step)
}

func TestFinalizeCampaignCreate(t *testing.T) {
	c := rules.FinalizeCampaign(validForm(), nil, "cmp-1")

	assert.Equal(t, "cmp-1", c.ID)
	assert.Equal(t, rules.StatusPending, c.Status)
	assert.Equal(t, 0, c.CurrentCycle)
	assert.True(t, c.TotalPayouts.IsZero())
	assert.False(t, c.IsArchived)
}

func TestFinalizeCampaignRoundTrip(t *testing.T) {
	form := validForm()
	c := rules.FinalizeCampaign(form, nil, "cmp-rt")

	reopened := rules.FormFromCampaign(c)
	assert.Equal(t, form, reopened)

	// a second submit of the untouched form changes nothing
	again := rules.FinalizeCampaign(reopened, &c, "")
	assert.Equal(t, c, again)
}

func TestFinalizeCampaignEditPreservesIdentity(t *testing.T) {
	base := rules.FinalizeCampaign(validForm(), nil, "cmp-2")
	base.Status = rules.StatusRunning
	base.CurrentCycle = 2
	base.TotalPayouts = dec(500)
	base.TotalRecipients = 10

	form := rules.FormFromCampaign(base)
	form.Name = "Renamed"
	merged := rules.FinalizeCampaign(form, &base, "ignored")

	assert.Equal(t, "cmp-2", merged.ID)
	assert.Equal(t, rules.StatusRunning, merged.Status)
	assert.Equal(t, 2, merged.CurrentCycle)
	assert.True(t, merged.TotalPayouts.Equal(dec(500)))
	assert.Equal(t, int64(10), merged.TotalRecipients)
	assert.Equal(t, "Renamed", merged.Config.Name)
}

func TestFinalizeCampaignActiveLocksConfig(t *testing.T) {
	base := rules.FinalizeCampaign(validForm(), nil, "cmp-3")
	base.Status = rules.StatusRunning

	form := rules.FormFromCampaign(base)
	form.StartDate = rules.NewDate(2025, time.January, 1)
	form.Recurrence = rules.RecurrenceWeekly
	form.Metric = rules.MetricRevenue
	form.RewardAmount = dec(999)
	form.Duration = 5                                          // extension allowed
	form.Participants = []string{"Sales"}                      // addition allowed
	merged := rules.FinalizeCampaign(form, &base, "")

	assert.Equal(t, base.Config.StartDate, merged.Config.StartDate)
	assert.Equal(t, base.Config.Recurrence, merged.Config.Recurrence)
	assert.Equal(t, base.Config.Metric, merged.Config.Metric)
	assert.True(t, merged.Config.RewardAmount.Equal(base.Config.RewardAmount))
	assert.Equal(t, 5, merged.Config.Duration)
	assert.Equal(t, []string{"Technicians", "Sales"}, merged.Config.Participants)
}

func TestFinalizeCampaignActiveNeverShrinks(t *testing.T) {
	base := rules.FinalizeCampaign(validForm(), nil, "cmp-4")
	base.Status = rules.StatusRunning

	form := rules.FormFromCampaign(base)
	form.Duration = 1               // attempt to shorten
	form.Participants = []string{}  // attempt to drop everyone
	merged := rules.FinalizeCampaign(form, &base, "")

	assert.Equal(t, base.Config.Duration, merged.Config.Duration)
	assert.Equal(t, base.Config.Participants, merged.Config.Participants)
}

func TestIsFieldLocked(t *testing.T) {
	c := rules.FinalizeCampaign(validForm(), nil, "cmp-5")

	locked := []string{
		"startDate", "recurrence", "customRecurrenceDays", "metric",
		"qualifierType", "qualifierValue", "rewardType", "rewardAmount",
		"tieredRewards", "tieBreakerRule", "tieBreakerPayout", "payoutMethod",
	}

	c.Status = rules.StatusRunning
	for _, field := range locked {
		assert.True(t, rules.IsFieldLocked(field, c), field)
	}
	assert.False(t, rules.IsFieldLocked("duration", c))
	assert.False(t, rules.IsFieldLocked("participants", c))
	assert.False(t, rules.IsFieldLocked("name", c))

	c.Status = rules.StatusCompleted
	for _, field := range locked {
		assert.False(t, rules.IsFieldLocked(field, c), field)
	}
}

func TestValidateStepUnknownStepPanics(t *testing.T) {
	assert.Panics(t, func() {
		rules.ValidateStep(rules.WizardStep(9), rules.CampaignConfig{})
	})
}
