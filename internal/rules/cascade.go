// Package rules provides the ordered first-match-wins rule cascade that
// backs transaction classification, plus the fixed UK threshold constants
// shared by the risk and opportunity rule sets.
package rules

// Rule pairs a predicate with the effect to apply when it fires. Rules are
// evaluated in declared order; there is no scoring or weighting across
// multiple matches.
type Rule[S, E any] struct {
	When   func(S) bool
	ID     string
	Effect E
}

// Cascade evaluates an ordered rule list, first match wins.
type Cascade[S, E any] struct {
	rules []Rule[S, E]
}

// NewCascade builds a cascade from rules in evaluation order.
func NewCascade[S, E any](rules ...Rule[S, E]) *Cascade[S, E] {
	return &Cascade[S, E]{rules: rules}
}

// Apply returns the first rule whose predicate holds for the subject.
// The boolean is false when no rule matched.
func (c *Cascade[S, E]) Apply(subject S) (Rule[S, E], bool) {
	for _, r := range c.rules {
		if r.When(subject) {
			return r, true
		}
	}
	var zero Rule[S, E]
	return zero, false
}

// Len returns the number of rules in the cascade.
func (c *Cascade[S, E]) Len() int {
	return len(c.rules)
}
