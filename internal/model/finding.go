package model

// Severity ranks how urgently a finding needs attention.
type Severity string

// Finding severities.
const (
	SeverityCritical    Severity = "Critical"
	SeverityWarning     Severity = "Warning"
	SeverityInfo        Severity = "Info"
	SeverityOpportunity Severity = "Opportunity"
)

// Finding is one diagnosed risk or opportunity. Findings are immutable;
// ordering is decided by whoever assembles the list, never by the composer.
type Finding struct {
	Severity Severity
	Title    string
	Reason   string
	Action   string
}
