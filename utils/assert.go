package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertEqualNilable compares two nilable values: both nil passes, one nil
// fails, otherwise the pointed-to values must match.
func AssertEqualNilable[T any](t *testing.T, expected, actual *T, msgAndArgs ...interface{}) {
	t.Helper()
	if expected == nil || actual == nil {
		assert.Equal(t, expected == nil, actual == nil, msgAndArgs...)
		return
	}
	assert.Equal(t, *expected, *actual, msgAndArgs...)
}
