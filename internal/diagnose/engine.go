package diagnose

import (
	"log/slog"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/metrics"
	"github.com/oakmoney/ledgerlens/internal/model"
)

// RunDiagnosis executes the full questionnaire flow: metrics, state
// detection, then prioritization. It is a pure function of its inputs plus
// fixed constants: deterministic, total, and safe to call concurrently.
func RunDiagnosis(a answers.Answers, profile answers.Profile) model.DiagnosticResult {
	card := metrics.Compute(a)

	d := detect(a)
	slog.Debug("problem states detected", "count", len(d.active))

	insights, actions := prioritize(d, a, profile)

	result := model.DiagnosticResult{
		Scorecard:  card,
		Insights:   make([]string, 0, len(insights)),
		ActionPlan: make([]string, 0, len(actions)),
	}
	for _, ins := range insights {
		result.Insights = append(result.Insights, ins.Text)
	}
	for _, act := range actions {
		result.ActionPlan = append(result.ActionPlan, act.Text)
	}
	return result
}
