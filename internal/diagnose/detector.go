// Package diagnose is the heart of the questionnaire flow: phase 1 detects
// which named problem states apply to the business, phase 2 applies the
// priority ladder that picks exactly one winning action track.
package diagnose

import (
	"github.com/shopspring/decimal"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/metrics"
	"github.com/oakmoney/ledgerlens/internal/model"
)

// Detection thresholds. Fixed constants of the design, not tunable at call
// time.
const (
	ltvRatioFloor      = 3.0  // below this, paid acquisition is a treadmill
	ltvRatioCeiling    = 10.0 // above this, the business is underspending
	healthyMarginFloor = 0.15
	thinMarginCeiling  = 0.10
	lowUpsellFloor     = 0.10
)

var (
	cacAbsoluteCeiling = decimal.NewFromInt(500)
	highCACFloor       = decimal.NewFromInt(100)
	highOfferFloor     = decimal.NewFromInt(2000)
	two                = decimal.NewFromInt(2)
)

// detection accumulates activated states with their tagged insights and
// candidate actions, in predicate order.
type detection struct {
	active   map[model.ProblemState]bool
	insights []model.Insight
	actions  []model.ActionItem
}

func (d *detection) activate(state model.ProblemState, insight string, actionTexts ...string) {
	d.active[state] = true
	d.insights = append(d.insights, model.Insight{State: state, Text: insight})
	for _, text := range actionTexts {
		d.actions = append(d.actions, model.ActionItem{State: state, Text: text})
	}
}

// insightsFor returns accumulated insights belonging to the given states,
// preserving accumulation order.
func (d *detection) insightsFor(states ...model.ProblemState) []model.Insight {
	var out []model.Insight
	for _, ins := range d.insights {
		for _, s := range states {
			if ins.State == s {
				out = append(out, ins)
				break
			}
		}
	}
	return out
}

// actionsFor returns accumulated actions belonging to the given states,
// preserving accumulation order.
func (d *detection) actionsFor(states ...model.ProblemState) []model.ActionItem {
	var out []model.ActionItem
	for _, act := range d.actions {
		for _, s := range states {
			if act.State == s {
				out = append(out, act)
				break
			}
		}
	}
	return out
}

// detect evaluates the fixed ordered predicate list. Predicates are
// independent: several states may activate in one run, each at most once.
// Order here only decides accumulation order, never the final output.
func detect(a answers.Answers) *detection {
	d := &detection{active: make(map[model.ProblemState]bool)}

	ltvRatio, ltvRatioDefined := metrics.LTVRatio(a)

	// Negative margin or a survival-mode bottleneck means the business is
	// actively losing money.
	if a.Margin < 0 || a.Bottleneck == answers.BottleneckSurvival {
		d.activate(model.StateInsolvencyCrisis,
			insolvencyInsight,
			actionCollectDebtors, actionFreezeSpend)
	}

	// Acquisition eats more than half the offer, or a lead-flow bottleneck
	// with weak lifetime economics.
	if a.CAC.GreaterThan(a.OfferPrice.Div(two)) ||
		(a.Bottleneck == answers.BottleneckLeadFlow && ltvRatioDefined && ltvRatio < ltvRatioFloor) {
		d.activate(model.StateTreadmillTrap,
			treadmillInsight,
			actionPauseAds, actionRaisePrices)
	}

	// Cold traffic pushed straight at a high-ticket offer, or acquisition
	// cost past the absolute ceiling.
	if (a.LeadSource == answers.LeadSourceCold &&
		a.CAC.GreaterThanOrEqual(highCACFloor) &&
		a.OfferPrice.GreaterThanOrEqual(highOfferFloor)) ||
		a.CAC.GreaterThan(cacAbsoluteCeiling) {
		d.activate(model.StateMisalignedOffer,
			offerTrapInsight,
			actionSplitOffer, actionNurtureSequence)
	}

	// Healthy margins but existing customers are never asked to buy again.
	if a.Margin >= healthyMarginFloor && a.UpsellRate < lowUpsellFloor && !a.Bottleneck.GrowthRelated() {
		d.activate(model.StateUndermonetizedExcellence,
			undermonetizedInsight,
			actionUpsellScript, actionPremiumTier, actionRepeatOffer)
	}

	// Thin but positive margins with stagnating demand.
	if a.Margin > 0 && a.Margin <= thinMarginCeiling && a.Bottleneck == answers.BottleneckStagnation {
		d.activate(model.StatePricingParalysis,
			pricingParalysisInsight,
			actionRaiseCorePrice, actionQuoteNewPrice)
	}

	// Exceptional returns with stated growth intent: room to spend more.
	if ltvRatioDefined && ltvRatio > ltvRatioCeiling && a.Bottleneck == answers.BottleneckGrowth {
		d.activate(model.StateUnderspendingParadox,
			underspendingInsight,
			actionScaleBudget)
	}

	return d
}
