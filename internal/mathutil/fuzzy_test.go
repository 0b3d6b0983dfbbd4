package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyEqual(t *testing.T) {
	assert.True(t, FuzzyEqual(1, 1))
	assert.True(t, FuzzyEqual(1, 1+1e-13))
	assert.False(t, FuzzyEqual(1, 1+1e-9))

	// Tolerance scales with magnitude.
	assert.True(t, FuzzyEqual(1e6, 1e6+1e-7))
	assert.False(t, FuzzyEqual(1e-6, 2e-6))

	// Relative comparison against zero always fails; that's what
	// FuzzyIsNull is for.
	assert.False(t, FuzzyEqual(0, 1e-300))
}

func TestFuzzyIsNull(t *testing.T) {
	assert.True(t, FuzzyIsNull(0))
	assert.True(t, FuzzyIsNull(1e-13))
	assert.True(t, FuzzyIsNull(-1e-13))
	assert.False(t, FuzzyIsNull(1e-9))
}
