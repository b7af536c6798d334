// Package metrics derives the scorecard figures (margin, CAC, LTV:CAC,
// runway) from validated answers, and owns currency display formatting.
package metrics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InfinitySentinel is the display value for ratios whose divisor is zero.
const InfinitySentinel = "∞"

// FormatGBP0 renders a money value with a pound sign and thousands
// separators, rounded to whole pounds.
func FormatGBP0(d decimal.Decimal) string {
	return signedGBP(d.Round(0).StringFixed(0))
}

// FormatGBP2 renders a money value with a pound sign, thousands separators
// and two decimal places.
func FormatGBP2(d decimal.Decimal) string {
	return signedGBP(d.Round(2).StringFixed(2))
}

func signedGBP(fixed string) string {
	if strings.HasPrefix(fixed, "-") {
		return "-£" + groupThousands(fixed[1:])
	}
	return "£" + groupThousands(fixed)
}

// groupThousands inserts commas into the integer part of a plain decimal
// string, e.g. "120000.00" -> "120,000.00".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
