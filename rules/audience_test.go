package rules_test

import (
	"testing"

	"github.com/FieldPulse/go-incentives/rules"
	"github.com/stretchr/testify/assert"
)

var directory = rules.StaticDirectory{
	"Technicians": {"u1", "u2", "u3", "u4"},
	"Sales":       {"u4", "u5"},
}

func TestUniqueAudienceDeduplicates(t *testing.T) {
	// u4 is reachable through Technicians, Sales and a direct reference;
	// it must count once.
	audience := rules.UniqueAudience([]string{"Technicians", "Sales", "u4"}, directory)
	assert.Equal(t, []string{"u1", "u2", "u3", "u4", "u5"}, audience)
}

func TestUniqueAudienceDirectOnly(t *testing.T) {
	audience := rules.UniqueAudience([]string{"u9", "u7", "u9"}, directory)
	assert.Equal(t, []string{"u7", "u9"}, audience)
}

func TestUniqueAudienceEmpty(t *testing.T) {
	assert.Empty(t, rules.UniqueAudience(nil, directory))
}

func TestUniqueAudienceDeterministicOrder(t *testing.T) {
	first := rules.UniqueAudience([]string{"Sales", "Technicians"}, directory)
	second := rules.UniqueAudience([]string{"Technicians", "Sales"}, directory)
	assert.Equal(t, first, second)
}
