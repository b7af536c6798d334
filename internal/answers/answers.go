// Package answers validates raw questionnaire input at the boundary and
// converts it into the typed form the diagnosis core consumes. The core
// assumes pre-validated values and never re-parses; anything that fails to
// parse here is rejected with an error, never silently coerced to zero.
package answers

import "github.com/shopspring/decimal"

// Bottleneck is the respondent's stated biggest constraint.
type Bottleneck string

// Bottleneck selections.
const (
	BottleneckSurvival   Bottleneck = "survival"   // running out of money
	BottleneckStagnation Bottleneck = "stagnation" // flat revenue, no momentum
	BottleneckLeadFlow   Bottleneck = "leadflow"   // not enough new customers
	BottleneckGrowth     Bottleneck = "growth"     // ready to scale, unsure how
	BottleneckOperations Bottleneck = "operations" // chaos and burnout
)

// GrowthRelated reports whether the bottleneck signals appetite for more
// customers rather than a money or process problem.
func (b Bottleneck) GrowthRelated() bool {
	return b == BottleneckLeadFlow || b == BottleneckGrowth
}

// LeadSource describes where new customers mostly come from.
type LeadSource string

// Lead sources.
const (
	LeadSourceCold    LeadSource = "cold"    // paid/cold traffic
	LeadSourceOrganic LeadSource = "organic" // word of mouth, referrals
	LeadSourceUnknown LeadSource = ""
)

// Answers is the validated questionnaire input for one diagnosis run.
type Answers struct {
	Revenue     decimal.Decimal // monthly revenue
	CAC         decimal.Decimal // cost to acquire one customer
	LTV         decimal.Decimal // customer lifetime value
	OfferPrice  decimal.Decimal // price of the core offer
	CashBalance decimal.Decimal // cash across business accounts
	MonthlyBurn decimal.Decimal // total monthly costs

	Margin     float64 // net margin fraction; the only field allowed negative
	UpsellRate float64 // fraction of customers buying again

	Bottleneck      Bottleneck
	LeadSource      LeadSource
	IntendsToExpand bool
}

// Profile is optional business context threaded alongside the answers.
type Profile struct {
	BusinessModel string // e.g. "B2B", "B2C"
	Name          string // display name for friendly output
}
