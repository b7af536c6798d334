package metrics

import (
	"fmt"

	"github.com/oakmoney/ledgerlens/internal/answers"
	"github.com/oakmoney/ledgerlens/internal/model"
)

// Scorecard metric names, in display order.
const (
	MetricRevenue    = "Revenue"
	MetricMargin     = "Net Margin"
	MetricCAC        = "CAC"
	MetricLTVRatio   = "LTV:CAC"
	MetricOfferPrice = "Offer Price"
	MetricRunway     = "Runway"
)

// Compute derives the display scorecard from validated answers. Pure
// function: degenerate arithmetic resolves to sentinels, never errors.
func Compute(a answers.Answers) *model.Scorecard {
	card := model.NewScorecard()
	card.Set(MetricRevenue, FormatGBP0(a.Revenue))
	card.Set(MetricMargin, fmt.Sprintf("%.0f%%", a.Margin*100))
	card.Set(MetricCAC, FormatGBP2(a.CAC))
	card.Set(MetricLTVRatio, LTVRatioDisplay(a))
	card.Set(MetricOfferPrice, FormatGBP0(a.OfferPrice))
	card.Set(MetricRunway, RunwayDisplay(a))
	return card
}

// LTVRatio returns LTV divided by CAC and whether the ratio is defined.
// CAC of zero means acquisition is free; the ratio is undefined (infinite).
func LTVRatio(a answers.Answers) (float64, bool) {
	if a.CAC.IsZero() {
		return 0, false
	}
	ratio, _ := a.LTV.Div(a.CAC).Float64()
	return ratio, true
}

// LTVRatioDisplay formats the LTV:CAC ratio, falling back to the infinity
// sentinel when CAC is zero.
func LTVRatioDisplay(a answers.Answers) string {
	ratio, ok := LTVRatio(a)
	if !ok {
		return InfinitySentinel
	}
	return fmt.Sprintf("%.1fx", ratio)
}

// RunwayMonths returns cash divided by monthly burn and whether the figure
// is defined. Zero burn means the runway is effectively infinite.
func RunwayMonths(a answers.Answers) (float64, bool) {
	if a.MonthlyBurn.IsZero() {
		return 0, false
	}
	months, _ := a.CashBalance.Div(a.MonthlyBurn).Float64()
	return months, true
}

// RunwayDisplay formats the runway in months with the infinity sentinel for
// zero burn.
func RunwayDisplay(a answers.Answers) string {
	months, ok := RunwayMonths(a)
	if !ok {
		return InfinitySentinel
	}
	return fmt.Sprintf("%.1f Months", months)
}
