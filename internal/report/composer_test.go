package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoney/ledgerlens/internal/model"
)

func TestCompose_EmptyFindings(t *testing.T) {
	assert.Equal(t, NoIssuesMessage, Compose(nil))
	assert.Equal(t, NoIssuesMessage, Compose([]model.Finding{}))
}

func TestCompose_NumbersFindingsInInputOrder(t *testing.T) {
	findings := []model.Finding{
		{Severity: model.SeverityOpportunity, Title: "VAT Flat Rate Scheme", Reason: "Low expenses.", Action: "Check the scheme."},
		{Severity: model.SeverityCritical, Title: "VAT Threshold Breached", Reason: "Over the limit.", Action: "Register now."},
		{Severity: model.SeverityInfo, Title: "Capital Investment Noted", Reason: "New laptop.", Action: "Keep the receipt."},
	}

	out := Compose(findings)

	// Input order is preserved: the composer never re-sorts by severity.
	first := strings.Index(out, "1. 💡 VAT Flat Rate Scheme")
	second := strings.Index(out, "2. 🛑 VAT Threshold Breached")
	third := strings.Index(out, "3. ✅ Capital Investment Noted")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)

	assert.Contains(t, out, "**Why:** Over the limit.")
	assert.Contains(t, out, "**Action:** Register now.")
}

func TestCompose_DoesNotDeduplicate(t *testing.T) {
	f := model.Finding{Severity: model.SeverityWarning, Title: "Same", Reason: "r", Action: "a"}

	out := Compose([]model.Finding{f, f})

	assert.Contains(t, out, "1. ⚠️ Same")
	assert.Contains(t, out, "2. ⚠️ Same")
}

func TestSeverityIcon(t *testing.T) {
	assert.Equal(t, "🛑", SeverityIcon(model.SeverityCritical))
	assert.Equal(t, "⚠️", SeverityIcon(model.SeverityWarning))
	assert.Equal(t, "💡", SeverityIcon(model.SeverityOpportunity))
	assert.Equal(t, "✅", SeverityIcon(model.SeverityInfo))
}

func TestRenderResult_ContainsAllSections(t *testing.T) {
	card := model.NewScorecard()
	card.Set("Revenue", "£8,000")
	card.Set("CAC", "£250.00")

	out := RenderResult(model.DiagnosticResult{
		Scorecard:  card,
		Insights:   []string{"🛑 INSOLVENCY RISK: freeze spending."},
		ActionPlan: []string{"1. IMMEDIATE: Call your debtors."},
	})

	assert.Contains(t, out, "Investor Scorecard")
	assert.Contains(t, out, "Revenue")
	assert.Contains(t, out, "£8,000")
	assert.Contains(t, out, "INSOLVENCY RISK")
	assert.Contains(t, out, "90-Day Action Plan")
	assert.Contains(t, out, "Call your debtors")
}
