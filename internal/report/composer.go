// Package report renders findings and diagnosis results for the terminal.
// Composition is pure formatting: ordering and deduplication are the
// responsibility of upstream components.
package report

import (
	"fmt"
	"strings"

	"github.com/oakmoney/ledgerlens/internal/model"
)

// NoIssuesMessage is returned when there is nothing to report.
const NoIssuesMessage = "No critical issues found. Keep pushin'!"

const checklistHeader = "# 🌞 Monday Morning Checklist"

// SeverityIcon maps a severity to its checklist marker.
func SeverityIcon(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "🛑"
	case model.SeverityWarning:
		return "⚠️"
	case model.SeverityOpportunity:
		return "💡"
	default:
		return "✅"
	}
}

// Compose renders findings as a numbered checklist in input order.
func Compose(findings []model.Finding) string {
	if len(findings) == 0 {
		return NoIssuesMessage
	}

	parts := []string{checklistHeader + "\n"}
	for i, f := range findings {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, SeverityIcon(f.Severity), f.Title)
		fmt.Fprintf(&b, "   **Why:** %s\n", f.Reason)
		fmt.Fprintf(&b, "   **Action:** %s\n", f.Action)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n")
}
