package model

// ProblemState is one named business condition the detector can activate.
// A diagnosis run activates a subset of these, each at most once.
type ProblemState string

// The fixed catalogue of problem states.
const (
	StateInsolvencyCrisis         ProblemState = "InsolvencyCrisis"
	StateTreadmillTrap            ProblemState = "TreadmillTrap"
	StateMisalignedOffer          ProblemState = "MisalignedOffer"
	StateUndermonetizedExcellence ProblemState = "UndermonetizedExcellence"
	StatePricingParalysis         ProblemState = "PricingParalysis"
	StateUnderspendingParadox     ProblemState = "UnderspendingParadox"
)

// Insight is one strategic observation, tagged with the state that produced
// it so the prioritizer can filter on identity instead of display text.
type Insight struct {
	State ProblemState
	Text  string
}

// ActionItem is one candidate action, tagged like an Insight.
type ActionItem struct {
	State ProblemState
	Text  string
}

// Scorecard is an insertion-ordered mapping from metric name to formatted
// display value. Display order is insertion order.
type Scorecard struct {
	names  []string
	values map[string]string
}

// NewScorecard returns an empty scorecard.
func NewScorecard() *Scorecard {
	return &Scorecard{values: make(map[string]string)}
}

// Set records a metric, preserving first-insertion order.
func (s *Scorecard) Set(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get returns the display value for a metric name.
func (s *Scorecard) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names returns metric names in display order.
func (s *Scorecard) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of recorded metrics.
func (s *Scorecard) Len() int {
	return len(s.names)
}

// DiagnosticResult is the sole output contract of a diagnosis run.
// It is constructed fresh on every invocation and never persisted here.
type DiagnosticResult struct {
	Scorecard  *Scorecard
	Insights   []string
	ActionPlan []string
}
