package answers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/oakmoney/ledgerlens/internal/common"
)

// Raw is the unvalidated questionnaire input as collected by a front end.
// Numeric fields are free text and may carry currency symbols, thousands
// separators and stray whitespace.
type Raw struct {
	Revenue     string `yaml:"revenue"`
	Margin      string `yaml:"margin"`
	CAC         string `yaml:"cac"`
	LTV         string `yaml:"ltv"`
	OfferPrice  string `yaml:"offer_price"`
	UpsellRate  string `yaml:"upsell_rate"`
	CashBalance string `yaml:"cash_balance"`
	MonthlyBurn string `yaml:"monthly_burn"`

	Bottleneck      string `yaml:"bottleneck"`
	LeadSource      string `yaml:"lead_source"`
	IntendsToExpand bool   `yaml:"intends_to_expand"`
}

// LoadFile reads a Raw answer set from a YAML file.
func LoadFile(path string) (Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Raw{}, fmt.Errorf("failed to read answers file: %w", err)
	}
	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Raw{}, fmt.Errorf("failed to parse answers file: %w", err)
	}
	return raw, nil
}

// Parse validates a Raw answer set. Every numeric field must parse as a
// non-negative number after stripping currency noise; margin alone may be
// negative. The first invalid field aborts with an error naming it.
func Parse(raw Raw) (Answers, error) {
	var (
		a   Answers
		err error
	)

	if a.Revenue, err = ParseMoney(raw.Revenue, "revenue"); err != nil {
		return Answers{}, err
	}
	if a.CAC, err = ParseMoney(raw.CAC, "cac"); err != nil {
		return Answers{}, err
	}
	if a.LTV, err = ParseMoney(raw.LTV, "ltv"); err != nil {
		return Answers{}, err
	}
	if a.OfferPrice, err = ParseMoney(raw.OfferPrice, "offer_price"); err != nil {
		return Answers{}, err
	}
	if a.CashBalance, err = ParseMoney(raw.CashBalance, "cash_balance"); err != nil {
		return Answers{}, err
	}
	if a.MonthlyBurn, err = ParseMoney(raw.MonthlyBurn, "monthly_burn"); err != nil {
		return Answers{}, err
	}

	if a.Margin, err = parseFraction(raw.Margin, "margin", true); err != nil {
		return Answers{}, err
	}
	if a.UpsellRate, err = parseFraction(raw.UpsellRate, "upsell_rate", false); err != nil {
		return Answers{}, err
	}

	if a.Bottleneck, err = ParseBottleneck(raw.Bottleneck); err != nil {
		return Answers{}, err
	}
	switch LeadSource(strings.ToLower(strings.TrimSpace(raw.LeadSource))) {
	case LeadSourceCold:
		a.LeadSource = LeadSourceCold
	case LeadSourceOrganic:
		a.LeadSource = LeadSourceOrganic
	case LeadSourceUnknown:
		a.LeadSource = LeadSourceUnknown
	default:
		return Answers{}, fmt.Errorf("%w: invalid value for lead_source: %q (want cold or organic)", common.ErrInvalidAnswer, raw.LeadSource)
	}

	a.IntendsToExpand = raw.IntendsToExpand
	return a, nil
}

// ParseMoney strips a leading currency symbol, thousands separators and
// whitespace, then parses a non-negative decimal. Empty input is zero.
func ParseMoney(value, field string) (decimal.Decimal, error) {
	cleaned := stripCurrency(value)
	if cleaned == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid number for %s: %q", common.ErrInvalidAnswer, field, value)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value for %s: %q", common.ErrInvalidAnswer, field, value)
	}
	return d, nil
}

// ParseBottleneck converts free text into a Bottleneck selection.
func ParseBottleneck(s string) (Bottleneck, error) {
	switch Bottleneck(strings.ToLower(strings.TrimSpace(s))) {
	case BottleneckSurvival:
		return BottleneckSurvival, nil
	case BottleneckStagnation:
		return BottleneckStagnation, nil
	case BottleneckLeadFlow:
		return BottleneckLeadFlow, nil
	case BottleneckGrowth:
		return BottleneckGrowth, nil
	case BottleneckOperations, "":
		return BottleneckOperations, nil
	default:
		return "", fmt.Errorf("%w: invalid value for bottleneck: %q", common.ErrInvalidAnswer, s)
	}
}

func parseFraction(value, field string, allowNegative bool) (float64, error) {
	cleaned := strings.TrimSuffix(stripCurrency(value), "%")
	if cleaned == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number for %s: %q", common.ErrInvalidAnswer, field, value)
	}
	if f < 0 && !allowNegative {
		return 0, fmt.Errorf("%w: negative value for %s: %q", common.ErrInvalidAnswer, field, value)
	}
	return f, nil
}

func stripCurrency(value string) string {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, "£", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return cleaned
}
