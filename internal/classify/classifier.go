// Package classify tags raw transactions with action-oriented labels using
// an ordered keyword rule cascade: a global safety tier, a profile-specific
// tier, and a fallback tier. First match wins within each tier.
package classify

import (
	"fmt"
	"strings"

	"github.com/oakmoney/ledgerlens/internal/model"
	"github.com/oakmoney/ledgerlens/internal/rules"
)

// FallbackRuleID identifies the tier-3 catch-all.
const FallbackRuleID = "Fallback"

// fallbackConfidence applies to transactions no keyword rule matched.
const fallbackConfidence = 0.5

type tagEffect struct {
	Tag        model.Tag
	Confidence float64
}

// Classifier applies the three-tier rule cascade. It holds only fixed rule
// tables, so a single instance is safe for concurrent use.
type Classifier struct {
	global   *rules.Cascade[string, tagEffect]
	profiles map[model.BusinessProfile]*rules.Cascade[string, tagEffect]
}

// New returns a classifier using the built-in rule tables.
func New() *Classifier {
	return newFromTable(builtinTable())
}

// NewFromTable returns a classifier using a caller-supplied rule table,
// typically loaded from a YAML rules file. Profiles absent from the table
// classify with the fallback tier only.
func NewFromTable(table RuleTable) (*Classifier, error) {
	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	return newFromTable(table), nil
}

func newFromTable(table RuleTable) *Classifier {
	c := &Classifier{
		global:   buildCascade(table.Global),
		profiles: make(map[model.BusinessProfile]*rules.Cascade[string, tagEffect], len(table.Profiles)),
	}
	for profile, rows := range table.Profiles {
		c.profiles[profile] = buildCascade(rows)
	}
	return c
}

func buildCascade(rows []KeywordRule) *rules.Cascade[string, tagEffect] {
	cascadeRules := make([]rules.Rule[string, tagEffect], 0, len(rows))
	for _, row := range rows {
		keywords := row.Keywords
		cascadeRules = append(cascadeRules, rules.Rule[string, tagEffect]{
			ID:     row.Rule,
			Effect: tagEffect{Tag: row.Tag, Confidence: row.Confidence},
			When: func(desc string) bool {
				for _, kw := range keywords {
					if strings.Contains(desc, kw) {
						return true
					}
				}
				return false
			},
		})
	}
	return rules.NewCascade(cascadeRules...)
}

// Classify tags each transaction in order, one output per input. It is a
// total function over valid profiles: unmatched transactions fall through
// to the fallback tier. An unknown profile is a caller error.
func (c *Classifier) Classify(txns []model.Transaction, profile model.BusinessProfile) ([]model.ClassifiedTransaction, error) {
	if !profile.Valid() {
		return nil, fmt.Errorf("classify: unknown business profile %q", profile)
	}

	out := make([]model.ClassifiedTransaction, 0, len(txns))
	for _, txn := range txns {
		out = append(out, c.classifyOne(txn, profile))
	}
	return out, nil
}

func (c *Classifier) classifyOne(txn model.Transaction, profile model.BusinessProfile) model.ClassifiedTransaction {
	desc := strings.ToLower(txn.Description)

	// Tier 1: global safety rules override everything, regardless of profile.
	if rule, ok := c.global.Apply(desc); ok {
		return classified(txn, rule.Effect, rule.ID)
	}

	// Tier 2: profile-specific rules in declared order.
	if cascade, ok := c.profiles[profile]; ok {
		if rule, matched := cascade.Apply(desc); matched {
			return classified(txn, rule.Effect, rule.ID)
		}
	}

	// Tier 3: fallback on amount sign.
	effect := tagEffect{Tag: model.TagAdminBloat, Confidence: fallbackConfidence}
	if txn.IsInflow() {
		effect.Tag = model.TagRevenueProject
	}
	return classified(txn, effect, FallbackRuleID)
}

func classified(txn model.Transaction, effect tagEffect, ruleID string) model.ClassifiedTransaction {
	return model.ClassifiedTransaction{
		Transaction: txn,
		Tag:         effect.Tag,
		Confidence:  effect.Confidence,
		RuleApplied: ruleID,
	}
}
