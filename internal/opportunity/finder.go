// Package opportunity derives UK-scheme savings opportunities from a
// classified transaction set. Rules are profile-gated and computed over
// aggregates, never per transaction.
package opportunity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/oakmoney/ledgerlens/internal/model"
	"github.com/oakmoney/ledgerlens/internal/rules"
)

// Find returns scheme opportunities for the classified set. Severity is
// always Opportunity.
func Find(classified []model.ClassifiedTransaction, profile model.BusinessProfile) []model.Finding {
	var findings []model.Finding

	revenue := sumRevenue(classified)

	if profile == model.ProfileTrade {
		if rules.Annualize(revenue).GreaterThan(rules.VATRegistrationThreshold) {
			findings = append(findings, model.Finding{
				Severity: model.SeverityOpportunity,
				Title:    "VAT Cash Accounting Scheme",
				Reason:   "Trade businesses often wait for payment. Don't pay HMRC until you get paid.",
				Action:   "Switch to Cash Accounting to boost cash flow.",
			})
		}
	}

	if profile == model.ProfileService {
		// Guard: no ratio when there is no revenue.
		if revenue.IsPositive() {
			expenses := sumOutflows(classified)
			ratio := expenses.Div(revenue)
			if ratio.LessThan(rules.FlatRateExpenseRatio) {
				pct := ratio.Mul(decimal.NewFromInt(100)).IntPart()
				findings = append(findings, model.Finding{
					Severity: model.SeverityOpportunity,
					Title:    "VAT Flat Rate Scheme",
					Reason:   fmt.Sprintf("Your expenses are low (%d%% of turnover).", pct),
					Action:   "Check if Flat Rate saves you money (keep ~14% of VAT).",
				})
			}
		}
	}

	return findings
}

func sumRevenue(classified []model.ClassifiedTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range classified {
		if txn.Tag.IsRevenue() {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

func sumOutflows(classified []model.ClassifiedTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range classified {
		if txn.Amount.IsNegative() && !txn.Tag.IsRevenue() {
			total = total.Add(txn.Amount.Abs())
		}
	}
	return total
}
