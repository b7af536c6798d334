package diagnose

import (
	"fmt"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/model"
)

// prioritize applies the fixed precedence ladder to an accumulated
// detection. Exactly one rung executes, top to bottom, first match wins;
// action items from different rungs are never merged. Insights from
// suppressed states are dropped, not hidden.
func prioritize(d *detection, a answers.Answers, profile answers.Profile) ([]model.Insight, []model.ActionItem) {
	switch {
	case d.active[model.StateInsolvencyCrisis]:
		// Insolvency suppresses everything else, even if active.
		return d.insightsFor(model.StateInsolvencyCrisis),
			d.actionsFor(model.StateInsolvencyCrisis)

	case d.active[model.StateMisalignedOffer]:
		insights := d.insightsFor(model.StateMisalignedOffer)
		insights = appendGrowthBlocked(insights, d)
		return insights, d.actionsFor(model.StateMisalignedOffer)

	case d.active[model.StateTreadmillTrap] || d.active[model.StatePricingParalysis]:
		winner := model.StateTreadmillTrap
		if !d.active[model.StateTreadmillTrap] {
			winner = model.StatePricingParalysis
		}
		insights := d.insightsFor(model.StateTreadmillTrap, model.StatePricingParalysis)
		insights = appendGrowthBlocked(insights, d)
		return insights, d.actionsFor(winner)

	case d.active[model.StateUndermonetizedExcellence]:
		insights := d.insightsFor(model.StateUndermonetizedExcellence)
		if a.IntendsToExpand {
			insights = append(insights, model.Insight{
				State: model.StateUndermonetizedExcellence,
				Text:  waitToExpandInsight,
			})
			return insights, []model.ActionItem{{
				State: model.StateUndermonetizedExcellence,
				Text:  actionUpsellScript,
			}}
		}
		return insights, d.actionsFor(model.StateUndermonetizedExcellence)

	case d.active[model.StateUnderspendingParadox]:
		return d.insightsFor(model.StateUnderspendingParadox),
			d.actionsFor(model.StateUnderspendingParadox)

	default:
		return nil, fallbackPlan(profile)
	}
}

// appendGrowthBlocked adds the explicit blocked-growth insight when the
// underspending paradox is active alongside the winning trap. The paradox's
// own growth actions never accompany it.
func appendGrowthBlocked(insights []model.Insight, d *detection) []model.Insight {
	if d.active[model.StateUnderspendingParadox] {
		insights = append(insights, model.Insight{
			State: model.StateUnderspendingParadox,
			Text:  growthBlockedInsight,
		})
	}
	return insights
}

// fallbackPlan is the generic two-item plan when no state is active.
func fallbackPlan(profile answers.Profile) []model.ActionItem {
	name := profile.Name
	if name == "" {
		name = "there"
	}
	return []model.ActionItem{
		{Text: fmt.Sprintf(fallbackReviewPLFormat, name)},
		{Text: fallbackReactivate},
	}
}
