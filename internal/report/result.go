package report

import (
	"fmt"
	"strings"

	"github.com/oakmoney/ledgerlens/internal/cli"
	"github.com/oakmoney/ledgerlens/internal/model"
)

// RenderResult renders a full diagnosis result: scorecard, insights and the
// 90-day action plan.
func RenderResult(result model.DiagnosticResult) string {
	var b strings.Builder

	b.WriteString(cli.RenderBox("📊 Investor Scorecard", renderScorecard(result.Scorecard)))
	b.WriteString("\n\n")

	if len(result.Insights) > 0 {
		b.WriteString(cli.FormatTitle("🔍 Strategic Insights"))
		b.WriteString("\n")
		for _, insight := range result.Insights {
			b.WriteString(styleInsight(insight))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(cli.FormatTitle("🚀 Your 90-Day Action Plan"))
	b.WriteString("\n")
	for _, step := range result.ActionPlan {
		b.WriteString(step)
		b.WriteString("\n")
	}

	return b.String()
}

func renderScorecard(card *model.Scorecard) string {
	if card == nil || card.Len() == 0 {
		return cli.SubtleStyle.Render("(no metrics)")
	}

	lines := make([]string, 0, card.Len())
	for _, name := range card.Names() {
		value, _ := card.Get(name)
		lines = append(lines, fmt.Sprintf("%s%s",
			cli.MetricNameStyle.Render(name+":"), cli.BoldStyle.Render(value)))
	}
	return strings.Join(lines, "\n")
}

// styleInsight colors an insight line by its leading marker. Cosmetic only:
// prioritization already decided which insights survive.
func styleInsight(insight string) string {
	switch {
	case strings.HasPrefix(insight, "🛑"):
		return cli.DangerStyle.Render(insight)
	case strings.HasPrefix(insight, "🦄"):
		return cli.SuccessStyle.Render(insight)
	default:
		return cli.WarningStyle.Render(insight)
	}
}
