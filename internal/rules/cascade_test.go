package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascade_FirstMatchWins(t *testing.T) {
	c := NewCascade(
		Rule[int, string]{ID: "big", When: func(n int) bool { return n > 100 }, Effect: "big"},
		Rule[int, string]{ID: "positive", When: func(n int) bool { return n > 0 }, Effect: "positive"},
		Rule[int, string]{ID: "any", When: func(int) bool { return true }, Effect: "any"},
	)

	r, ok := c.Apply(500)
	require.True(t, ok)
	assert.Equal(t, "big", r.ID, "500 matches both big and positive, big is declared first")

	r, ok = c.Apply(5)
	require.True(t, ok)
	assert.Equal(t, "positive", r.ID)

	r, ok = c.Apply(-5)
	require.True(t, ok)
	assert.Equal(t, "any", r.ID)
}

func TestCascade_NoMatch(t *testing.T) {
	c := NewCascade(
		Rule[int, string]{ID: "never", When: func(int) bool { return false }, Effect: "x"},
	)

	r, ok := c.Apply(1)
	assert.False(t, ok)
	assert.Empty(t, r.ID)
	assert.Empty(t, r.Effect)
}

func TestCascade_Empty(t *testing.T) {
	c := NewCascade[int, string]()

	_, ok := c.Apply(1)
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCascade_LaterRulesNotEvaluatedAfterMatch(t *testing.T) {
	evaluated := false
	c := NewCascade(
		Rule[int, string]{ID: "first", When: func(int) bool { return true }, Effect: "f"},
		Rule[int, string]{ID: "second", When: func(int) bool { evaluated = true; return true }, Effect: "s"},
	)

	_, ok := c.Apply(1)
	require.True(t, ok)
	assert.False(t, evaluated, "evaluation stops at the first match")
}
