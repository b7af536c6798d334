// Package risk derives compliance and threshold findings from a classified
// transaction set. Rules are evaluated independently and are not mutually
// exclusive, except the VAT threshold pair where at most one side fires.
package risk

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/oakmoney/ledgerlens/internal/metrics"
	"github.com/oakmoney/ledgerlens/internal/model"
	"github.com/oakmoney/ledgerlens/internal/rules"
)

// Diagnose returns Critical/Warning/Info findings for the classified set.
func Diagnose(classified []model.ClassifiedTransaction) []model.Finding {
	var findings []model.Finding

	if f, ok := complianceFinding(classified); ok {
		findings = append(findings, f)
	}
	if f, ok := vatThresholdFinding(classified); ok {
		findings = append(findings, f)
	}
	findings = append(findings, capitalFindings(classified)...)

	return findings
}

// complianceFinding aggregates all personal-spend transactions into a
// single warning.
func complianceFinding(classified []model.ClassifiedTransaction) (model.Finding, bool) {
	var offending []string
	for _, txn := range classified {
		if txn.Tag.IsComplianceRisk() {
			offending = append(offending, txn.Description)
		}
	}
	if len(offending) == 0 {
		return model.Finding{}, false
	}
	return model.Finding{
		Severity: model.SeverityWarning,
		Title:    "Personal Spend Detected",
		Reason:   fmt.Sprintf("Found personal items in business account: %s", strings.Join(offending, ", ")),
		Action:   "Stop using business card for coffee/meals.",
	}, true
}

// vatThresholdFinding compares annualized revenue against the registration
// threshold. Exactly one of {Critical, Warning, none} fires per run.
func vatThresholdFinding(classified []model.ClassifiedTransaction) (model.Finding, bool) {
	revenue := monthlyRevenue(classified)
	projected := rules.Annualize(revenue)

	switch {
	case projected.GreaterThanOrEqual(rules.VATRegistrationThreshold):
		return model.Finding{
			Severity: model.SeverityCritical,
			Title:    "VAT Threshold Breached",
			Reason: fmt.Sprintf("Projected revenue %s exceeds the %s registration limit.",
				metrics.FormatGBP0(projected), metrics.FormatGBP0(rules.VATRegistrationThreshold)),
			Action: "URGENT: Register for VAT immediately. You may be fined.",
		}, true
	case projected.GreaterThanOrEqual(rules.VATWarningFloor):
		return model.Finding{
			Severity: model.SeverityWarning,
			Title:    "VAT Cliff Edge Approaching",
			Reason: fmt.Sprintf("Projected revenue %s is close to the %s registration limit.",
				metrics.FormatGBP0(projected), metrics.FormatGBP0(rules.VATRegistrationThreshold)),
			Action: "Plan VAT strategy now (Voluntary vs Flat Rate).",
		}, true
	}
	return model.Finding{}, false
}

// capitalFindings emits one Info per growth-tagged purchase, one-to-one.
func capitalFindings(classified []model.ClassifiedTransaction) []model.Finding {
	var findings []model.Finding
	for _, txn := range classified {
		if !txn.Tag.IsGrowthInvest() {
			continue
		}
		findings = append(findings, model.Finding{
			Severity: model.SeverityInfo,
			Title:    "Capital Investment Noted",
			Reason:   fmt.Sprintf("Purchase of %s (%s).", txn.Description, metrics.FormatGBP2(txn.Amount.Abs())),
			Action:   "Ensure you keep the receipt for Capital Allowances.",
		})
	}
	return findings
}

func monthlyRevenue(classified []model.ClassifiedTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range classified {
		if txn.Tag.IsRevenue() {
			total = total.Add(txn.Amount)
		}
	}
	return total
}
