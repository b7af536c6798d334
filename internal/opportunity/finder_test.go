package opportunity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoney/ledgerlens/internal/model"
)

func classified(desc, amount string, tag model.Tag) model.ClassifiedTransaction {
	return model.ClassifiedTransaction{
		Transaction: model.Transaction{
			Description: desc,
			Amount:      decimal.RequireFromString(amount),
		},
		Tag: tag,
	}
}

func TestFind_ServiceFlatRateScheme(t *testing.T) {
	// Sarah the consultant: £6,800/month, trivial expenses.
	input := []model.ClassifiedTransaction{
		classified("Client Project Fee", "6800", model.TagRevenueRecur),
		classified("Starbucks", "-4.50", model.TagComplianceRisk),
		classified("Xero", "-30", model.TagAdminBloat),
	}

	findings := Find(input, model.ProfileService)

	require.Len(t, findings, 1)
	assert.Equal(t, model.SeverityOpportunity, findings[0].Severity)
	assert.Equal(t, "VAT Flat Rate Scheme", findings[0].Title)
	assert.Contains(t, findings[0].Reason, "0% of turnover", "expense ratio is embedded in the reason")
}

func TestFind_ServiceHighExpensesNoOpportunity(t *testing.T) {
	input := []model.ClassifiedTransaction{
		classified("Retainer", "5000", model.TagRevenueRecur),
		classified("Contractors", "-2000", model.TagAdminBloat),
	}

	assert.Empty(t, Find(input, model.ProfileService), "40% expense ratio is above the flat-rate band")
}

func TestFind_ServiceZeroRevenueGuard(t *testing.T) {
	input := []model.ClassifiedTransaction{
		classified("Xero", "-30", model.TagAdminBloat),
	}

	assert.NotPanics(t, func() {
		assert.Empty(t, Find(input, model.ProfileService))
	})
}

func TestFind_TradeCashAccounting(t *testing.T) {
	// Mike the plumber: £10,000/month annualizes to £120,000.
	input := []model.ClassifiedTransaction{
		classified("Big Job Payment", "10000", model.TagRevenueProject),
		classified("Screwfix Direct", "-450", model.TagCOGSEssential),
	}

	findings := Find(input, model.ProfileTrade)

	require.Len(t, findings, 1)
	assert.Equal(t, "VAT Cash Accounting Scheme", findings[0].Title)
	assert.Equal(t, model.SeverityOpportunity, findings[0].Severity)
}

func TestFind_TradeBelowThresholdNoOpportunity(t *testing.T) {
	input := []model.ClassifiedTransaction{
		classified("Small Job", "4000", model.TagRevenueProject),
	}

	assert.Empty(t, Find(input, model.ProfileTrade), "£48k annualized is under the registration threshold")
}

func TestFind_RulesAreProfileGated(t *testing.T) {
	// High revenue, low expenses: would trigger both rules if profile
	// gating were broken. Retail gets neither.
	input := []model.ClassifiedTransaction{
		classified("Daily Sales", "10000", model.TagRevenueProject),
		classified("Bags", "-100", model.TagAdminBloat),
	}

	assert.Empty(t, Find(input, model.ProfileRetail))

	trade := Find(input, model.ProfileTrade)
	require.Len(t, trade, 1)
	assert.Equal(t, "VAT Cash Accounting Scheme", trade[0].Title)

	service := Find(input, model.ProfileService)
	require.Len(t, service, 1)
	assert.Equal(t, "VAT Flat Rate Scheme", service[0].Title)
}
