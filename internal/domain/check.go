package domain

// IssueKind identifies which compatibility dimension an issue belongs to.
type IssueKind string

// Issue kinds, one per rule plus a synthetic kind for failed evaluations.
const (
	IssueKindVoltage  IssueKind = "voltage"
	IssueKindCurrent  IssueKind = "current"
	IssueKindProtocol IssueKind = "protocol"
	IssueKindPins     IssueKind = "pins"
	IssueKindLibrary  IssueKind = "library"
	IssueKindPhysical IssueKind = "physical"

	// IssueKindError marks the synthetic issue attached to a check that
	// could not be evaluated at all (e.g. an unresolved reference during
	// bulk evaluation).
	IssueKindError IssueKind = "error"
)

// Severity grades how serious a compatibility issue is.
type Severity string

// Issue severities in decreasing order of seriousness.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rank returns the sort rank of the severity: error < warning < info.
// Unknown severities rank after info so malformed data sinks to the end.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// CompatibilityIssue is a single finding produced by a rule evaluator.
type CompatibilityIssue struct {
	// Kind names the dimension the issue was found in.
	Kind IssueKind `json:"kind"`

	// Severity grades the finding. Only error-severity issues make a
	// pairing incompatible.
	Severity Severity `json:"severity"`

	// Message describes the finding, including the concrete values that
	// triggered it.
	Message string `json:"message"`

	// Solution, when present, tells the user how to work around the
	// issue.
	Solution string `json:"solution,omitempty"`
}

// RuleOutcome is the raw result of one rule evaluation before
// aggregation. A zero RuleOutcome means the rule found nothing.
type RuleOutcome struct {
	// Issues are the findings, in the order the rule emitted them.
	Issues []CompatibilityIssue `json:"issues,omitempty"`

	// Suggestions are free-form recommendations. Duplicates across rules
	// are removed during aggregation.
	Suggestions []string `json:"suggestions,omitempty"`

	// Penalty is the total score deduction the rule assessed.
	Penalty int `json:"penalty"`
}

// CompatibilityCheck is the engine's verdict for one (board, component)
// pairing.
//
// Every produced check satisfies the engine invariants: Score is in
// [0, 100]; Compatible is true exactly when no issue has error severity;
// Issues are sorted by severity rank with the fixed rule order breaking
// ties; Suggestions contain no duplicates.
type CompatibilityCheck struct {
	// Compatible reports whether the component can be safely driven by
	// the board.
	Compatible bool `json:"compatible"`

	// Issues lists every finding, sorted error before warning before
	// info.
	Issues []CompatibilityIssue `json:"issues"`

	// Suggestions are deduplicated recommendations in first-seen order.
	Suggestions []string `json:"suggestions"`

	// Score is the bounded compatibility score, 100 meaning no findings.
	Score int `json:"score"`
}

// ErrorCount returns the number of error-severity issues in the check.
func (c CompatibilityCheck) ErrorCount() int {
	n := 0
	for _, issue := range c.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// FailedCheck returns the synthetic check used when an evaluation could
// not run at all: incompatible, zero score, a single error issue. Bulk
// evaluation substitutes it for items whose reference does not resolve or
// whose evaluation fails, so one bad item never aborts a batch.
func FailedCheck() CompatibilityCheck {
	return CompatibilityCheck{
		Compatible: false,
		Issues: []CompatibilityIssue{{
			Kind:     IssueKindError,
			Severity: SeverityError,
			Message:  "compatibility check failed",
		}},
		Suggestions: []string{},
		Score:       0,
	}
}
