package rules_test

import (
	"testing"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTermination(t *testing.T) {
	expected := map[rules.CampaignStatus]rules.TerminationAction{
		rules.StatusPending:   rules.ActionCancel,
		rules.StatusRunning:   rules.ActionCancel,
		rules.StatusCompleted: rules.ActionArchive,
		rules.StatusFailed:    rules.ActionArchive,
		rules.StatusCancelled: rules.ActionArchive,
	}

	for status, want := range expected {
		c := rules.Campaign{Status: status}
		assert.Equal(t, want, rules.ClassifyTermination(c), string(status))
	}
}

func TestCancel(t *testing.T) {
	c := rules.Campaign{ID: "cmp-1", Status: rules.StatusRunning}

	cancelled, err := rules.Cancel(c)
	assert.NoError(t, err)
	assert.Equal(t, rules.StatusCancelled, cancelled.Status)

	// the input value is untouched
	assert.Equal(t, rules.StatusRunning, c.Status)

	// cancellation is terminal
	_, err = rules.Cancel(cancelled)
	assert.Error(t, err)
}

func TestCancelInvalidFromTerminalStatuses(t *testing.T) {
	for _, status := range []rules.CampaignStatus{rules.StatusCompleted, rules.StatusFailed, rules.StatusCancelled} {
		_, err := rules.Cancel(rules.Campaign{Status: status})
		assert.Error(t, err, string(status))
	}
}

func TestArchive(t *testing.T) {
	c := rules.Campaign{ID: "cmp-2", Status: rules.StatusCompleted}

	archived, err := rules.Archive(c)
	assert.NoError(t, err)
	assert.True(t, archived.IsArchived)
	// archival leaves the status alone
	assert.Equal(t, rules.StatusCompleted, archived.Status)
	assert.False(t, c.IsArchived)
}

func TestArchiveInvalidWhileActive(t *testing.T) {
	for _, status := range []rules.CampaignStatus{rules.StatusPending, rules.StatusRunning} {
		_, err := rules.Archive(rules.Campaign{Status: status})
		assert.Error(t, err, string(status))
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, rules.Campaign{Status: rules.StatusPending}.IsActive())
	assert.True(t, rules.Campaign{Status: rules.StatusRunning}.IsActive())
	assert.False(t, rules.Campaign{Status: rules.StatusCompleted}.IsActive())
	assert.False(t, rules.Campaign{Status: rules.StatusFailed}.IsActive())
	assert.False(t, rules.Campaign{Status: rules.StatusCancelled}.IsActive())
}
