package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enter(m FormModel, value string) FormModel {
	m.input.SetValue(value)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(FormModel)
}

func TestFormModel_CollectsAnswersInOrder(t *testing.T) {
	m := NewFormModel()

	for _, v := range []string{
		"£8,000", "0.20", "£250", "£3,000", "£1,000",
		"0.05", "£12,000", "£4,000", "stagnation", "organic", "y",
	} {
		m = enter(m, v)
	}

	require.True(t, m.done)
	raw := m.Raw()
	assert.Equal(t, "£8,000", raw.Revenue)
	assert.Equal(t, "0.20", raw.Margin)
	assert.Equal(t, "stagnation", raw.Bottleneck)
	assert.Equal(t, "organic", raw.LeadSource)
	assert.True(t, raw.IntendsToExpand)
}

func TestFormModel_InvalidAnswerBlocksAdvance(t *testing.T) {
	m := NewFormModel()

	m = enter(m, "eight grand")

	assert.Zero(t, m.index, "invalid revenue keeps the form on question 1")
	assert.NotEmpty(t, m.errMsg)

	m = enter(m, "£8,000")
	assert.Equal(t, 1, m.index)
	assert.Empty(t, m.errMsg)
}

func TestFormModel_EscAborts(t *testing.T) {
	m := NewFormModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, next.(FormModel).aborted)
}

func TestFormModel_ExpandAnswerParsing(t *testing.T) {
	m := NewFormModel()
	m.values["intends_to_expand"] = "No"
	assert.False(t, m.Raw().IntendsToExpand)

	m.values["intends_to_expand"] = "YES"
	assert.True(t, m.Raw().IntendsToExpand)

	m.values["intends_to_expand"] = ""
	assert.False(t, m.Raw().IntendsToExpand)
}
