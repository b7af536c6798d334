package rules

import "github.com/shopspring/decimal"

// UK scheme thresholds. These are fixed constants of the design, not
// tunable at call time. The VAT registration threshold is the current
// £90,000 figure; the warning band starts at £80,000.
var (
	// VATRegistrationThreshold is the annualized turnover at which VAT
	// registration becomes mandatory.
	VATRegistrationThreshold = decimal.NewFromInt(90000)

	// VATWarningFloor is the annualized turnover at which a business is
	// considered to be approaching the registration threshold.
	VATWarningFloor = decimal.NewFromInt(80000)

	// FlatRateExpenseRatio is the expense-to-revenue ratio below which the
	// VAT Flat Rate Scheme is typically worth checking.
	FlatRateExpenseRatio = decimal.NewFromFloat(0.20)
)

// MonthsPerYear projects one month of transactions to an annual figure.
var MonthsPerYear = decimal.NewFromInt(12)

// Annualize projects a monthly money figure to a yearly one.
func Annualize(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(MonthsPerYear)
}
