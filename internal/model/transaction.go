// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction represents a single financial transaction supplied by the caller.
// Amounts are signed: positive values are inflows, negative values outflows.
type Transaction struct {
	Date        string // ISO date string, e.g. "2025-03-01"
	Description string
	Type        string // raw bank type (Income, Expense, Transfer)
	Category    string // raw bank category, if any
	Amount      decimal.Decimal
}

// IsInflow reports whether the transaction brought money in.
func (t Transaction) IsInflow() bool {
	return t.Amount.IsPositive()
}

// Tag is the action-oriented label a classification rule assigns.
type Tag string

// Classification tags.
const (
	TagComplianceRisk Tag = "Compliance_Risk:High"
	TagCOGSEssential  Tag = "COGS:Essential"
	TagAdminBloat     Tag = "Admin_Bloat:Review"
	TagGrowthInvest   Tag = "Growth_Invest:Accelerate"
	TagRevenueRecur   Tag = "Revenue:Recurring"
	TagRevenueProject Tag = "Revenue:Project"
)

// IsRevenue reports whether the tag marks revenue of any kind.
func (tg Tag) IsRevenue() bool {
	return strings.HasPrefix(string(tg), "Revenue:")
}

// IsComplianceRisk reports whether the tag marks likely personal spend.
func (tg Tag) IsComplianceRisk() bool {
	return strings.HasPrefix(string(tg), "Compliance_Risk:")
}

// IsGrowthInvest reports whether the tag marks a capital/growth purchase.
func (tg Tag) IsGrowthInvest() bool {
	return strings.HasPrefix(string(tg), "Growth_Invest:")
}

// ClassifiedTransaction is a Transaction after the rule cascade has run.
// It is created once per input transaction and never mutated.
type ClassifiedTransaction struct {
	Transaction
	Tag         Tag
	RuleApplied string
	Confidence  float64
}
