package diagnose

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/model"
)

func gbp(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRunDiagnosis_InsolvencySuppressesEverything(t *testing.T) {
	// Negative margin plus a survival bottleneck, with enough other
	// trouble that several states activate at once.
	a := answers.Answers{
		Margin:     -0.05,
		Bottleneck: answers.BottleneckSurvival,
		CAC:        gbp(600), // would trigger MisalignedOffer on its own
		OfferPrice: gbp(500), // and TreadmillTrap
	}

	result := RunDiagnosis(a, answers.Profile{})

	require.Equal(t, []string{actionCollectDebtors, actionFreezeSpend}, result.ActionPlan,
		"insolvency plan must contain only the freeze/collect actions")
	require.Equal(t, []string{insolvencyInsight}, result.Insights,
		"all other insights must be dropped, not merely hidden")
}

func TestRunDiagnosis_InsolvencyFromBottleneckAlone(t *testing.T) {
	a := answers.Answers{
		Margin:     0.25, // profitable, but the owner says survival
		Bottleneck: answers.BottleneckSurvival,
	}

	result := RunDiagnosis(a, answers.Profile{})

	assert.Equal(t, []string{actionCollectDebtors, actionFreezeSpend}, result.ActionPlan)
}

func TestRunDiagnosis_MisalignedOffer(t *testing.T) {
	tests := []struct {
		name string
		a    answers.Answers
	}{
		{
			name: "cold traffic into a high-ticket offer",
			a: answers.Answers{
				Margin:     0.30,
				UpsellRate: 0.50,
				LeadSource: answers.LeadSourceCold,
				CAC:        gbp(150),
				OfferPrice: gbp(3000),
				Bottleneck: answers.BottleneckLeadFlow,
				LTV:        gbp(600), // 4x, above the treadmill floor
			},
		},
		{
			name: "acquisition cost past the absolute ceiling",
			a: answers.Answers{
				Margin:     0.30,
				UpsellRate: 0.50,
				LeadSource: answers.LeadSourceOrganic,
				CAC:        gbp(600),
				OfferPrice: gbp(3000),
				LTV:        gbp(2400),
				Bottleneck: answers.BottleneckOperations,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RunDiagnosis(tt.a, answers.Profile{})
			assert.Equal(t, []string{actionSplitOffer, actionNurtureSequence}, result.ActionPlan)
			assert.Contains(t, result.Insights, offerTrapInsight)
		})
	}
}

func TestRunDiagnosis_MisalignedOfferBlocksGrowth(t *testing.T) {
	// MisalignedOffer and UnderspendingParadox both active: the offer rung
	// wins, the paradox surfaces only as the blocked insight.
	a := answers.Answers{
		Margin:     0.12,
		UpsellRate: 0.50,
		CAC:        gbp(600),
		OfferPrice: gbp(3000),
		LTV:        gbp(8000), // 13.3x
		Bottleneck: answers.BottleneckGrowth,
	}

	result := RunDiagnosis(a, answers.Profile{})

	assert.Equal(t, []string{actionSplitOffer, actionNurtureSequence}, result.ActionPlan,
		"no growth actions may leak into the offer rung")
	assert.Equal(t, []string{offerTrapInsight, growthBlockedInsight}, result.Insights)
}

func TestRunDiagnosis_TreadmillBlocksGrowth(t *testing.T) {
	a := answers.Answers{
		Margin:     0.12,
		UpsellRate: 0.50,
		CAC:        gbp(60),
		OfferPrice: gbp(100),  // CAC > half the offer
		LTV:        gbp(1000), // 16.7x with growth intent
		Bottleneck: answers.BottleneckGrowth,
	}

	result := RunDiagnosis(a, answers.Profile{})

	assert.Equal(t, []string{actionPauseAds, actionRaisePrices}, result.ActionPlan)
	assert.Equal(t, []string{treadmillInsight, growthBlockedInsight}, result.Insights)
}

func TestRunDiagnosis_TreadmillFromWeakLeadflowEconomics(t *testing.T) {
	a := answers.Answers{
		Margin:     0.12,
		UpsellRate: 0.50,
		CAC:        gbp(200),
		OfferPrice: gbp(1000), // CAC below half the offer
		LTV:        gbp(400),  // 2x, under the 3x floor
		Bottleneck: answers.BottleneckLeadFlow,
	}

	result := RunDiagnosis(a, answers.Profile{})

	assert.Equal(t, []string{actionPauseAds, actionRaisePrices}, result.ActionPlan)
}

func TestRunDiagnosis_PricingParalysis(t *testing.T) {
	a := answers.Answers{
		Margin:     0.08,
		UpsellRate: 0.50,
		CAC:        gbp(40),
		OfferPrice: gbp(500),
		LTV:        gbp(200),
		Bottleneck: answers.BottleneckStagnation,
	}

	result := RunDiagnosis(a, answers.Profile{})

	assert.Equal(t, []string{actionRaiseCorePrice, actionQuoteNewPrice}, result.ActionPlan)
	assert.Equal(t, []string{pricingParalysisInsight}, result.Insights)
}

func TestRunDiagnosis_UndermonetizedExcellence(t *testing.T) {
	// Healthy margin, almost no repeat purchases, stagnation bottleneck.
	a := answers.Answers{
		Margin:     0.20,
		UpsellRate: 0.05,
		CAC:        gbp(250),
		OfferPrice: gbp(3000),
		Bottleneck: answers.BottleneckStagnation,
	}

	t.Run("without expand intent the full upsell set is returned", func(t *testing.T) {
		result := RunDiagnosis(a, answers.Profile{})
		assert.Equal(t, []string{actionUpsellScript, actionPremiumTier, actionRepeatOffer}, result.ActionPlan)
		assert.Equal(t, []string{undermonetizedInsight}, result.Insights)
	})

	t.Run("with expand intent only the scripting action survives", func(t *testing.T) {
		withIntent := a
		withIntent.IntendsToExpand = true

		result := RunDiagnosis(withIntent, answers.Profile{})
		assert.Equal(t, []string{actionUpsellScript}, result.ActionPlan)
		assert.Equal(t, []string{undermonetizedInsight, waitToExpandInsight}, result.Insights)
	})
}

func TestRunDiagnosis_UnderspendingParadoxAlone(t *testing.T) {
	a := answers.Answers{
		Margin:     0.20,
		UpsellRate: 0.40,
		CAC:        gbp(50),
		OfferPrice: gbp(1000),
		LTV:        gbp(1000), // 20x
		Bottleneck: answers.BottleneckGrowth,
	}

	result := RunDiagnosis(a, answers.Profile{})

	assert.Equal(t, []string{actionScaleBudget}, result.ActionPlan)
	assert.Equal(t, []string{underspendingInsight}, result.Insights)
}

func TestRunDiagnosis_FallbackWhenNoStateActive(t *testing.T) {
	a := answers.Answers{
		Margin:     0.12,
		UpsellRate: 0.20,
		CAC:        gbp(50),
		OfferPrice: gbp(1000),
		LTV:        gbp(200), // 4x, between the floors
		Bottleneck: answers.BottleneckOperations,
	}

	result := RunDiagnosis(a, answers.Profile{Name: "Sarah"})

	require.Len(t, result.ActionPlan, 2, "fallback is always a two-item plan")
	assert.Contains(t, result.ActionPlan[0], "Sarah")
	assert.Equal(t, fallbackReactivate, result.ActionPlan[1])
	assert.Empty(t, result.Insights)
}

func TestRunDiagnosis_Idempotent(t *testing.T) {
	a := answers.Answers{
		Margin:     -0.05,
		Bottleneck: answers.BottleneckSurvival,
		CAC:        gbp(250),
		OfferPrice: gbp(2000),
		LTV:        gbp(4000),
	}

	first := RunDiagnosis(a, answers.Profile{Name: "Mike"})
	second := RunDiagnosis(a, answers.Profile{Name: "Mike"})

	assert.Equal(t, first.Insights, second.Insights)
	assert.Equal(t, first.ActionPlan, second.ActionPlan)
	assert.Equal(t, first.Scorecard.Names(), second.Scorecard.Names())
}

func TestDetect_StatesActivateIndependently(t *testing.T) {
	// A business in deep trouble: losing money, overpaying for customers,
	// pushing a high-ticket offer at cold traffic.
	a := answers.Answers{
		Margin:     -0.10,
		UpsellRate: 0.01,
		CAC:        gbp(700), // above both the offer/2 line and the absolute ceiling
		OfferPrice: gbp(1200),
		LTV:        gbp(900),
		LeadSource: answers.LeadSourceCold,
		Bottleneck: answers.BottleneckSurvival,
	}

	d := detect(a)

	assert.True(t, d.active[model.StateInsolvencyCrisis])
	assert.True(t, d.active[model.StateTreadmillTrap])
	assert.True(t, d.active[model.StateMisalignedOffer])
	assert.False(t, d.active[model.StatePricingParalysis])
	assert.False(t, d.active[model.StateUnderspendingParadox])
}

func TestDetect_ZeroCACNeverPanics(t *testing.T) {
	a := answers.Answers{
		Margin:     0.30,
		UpsellRate: 0.50,
		Bottleneck: answers.BottleneckLeadFlow,
		LTV:        gbp(5000),
	}

	assert.NotPanics(t, func() {
		result := RunDiagnosis(a, answers.Profile{})
		assert.NotEmpty(t, result.ActionPlan)
	})
}
