// Package application wires the compatibility engine together: it
// aggregates rule outcomes into checks, orchestrates catalog resolution
// and caching, and loads catalog files. It depends on the domain model
// and the ports interfaces, never on concrete infrastructure.
package application

import (
	"sort"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

// Aggregate merges rule outcomes into a single CompatibilityCheck.
// Outcomes must be passed in the engine's canonical rule order (voltage,
// current, protocol, pins, library, physical): issues are concatenated in
// that order and then stable-sorted by severity, so the rule order is the
// deterministic tiebreak within each severity. Suggestions are
// deduplicated preserving first-seen order. The score is 100 minus the
// summed penalties, clamped to [0, 100], and the pairing is compatible
// exactly when no issue has error severity.
//
// Aggregation is commutative over evaluation order: because the caller
// re-assembles outcomes into canonical order before aggregating, rules
// may be evaluated in any order (or in parallel) with identical results.
func Aggregate(outcomes []domain.RuleOutcome) domain.CompatibilityCheck {
	issues := make([]domain.CompatibilityIssue, 0, len(outcomes))
	suggestions := make([]string, 0, len(outcomes))
	seen := make(map[string]struct{})
	totalPenalty := 0

	for _, outcome := range outcomes {
		issues = append(issues, outcome.Issues...)
		totalPenalty += outcome.Penalty

		for _, s := range outcome.Suggestions {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			suggestions = append(suggestions, s)
		}
	}

	// Stable sort keeps the rule-declaration order within a severity.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() < issues[j].Severity.Rank()
	})

	score := 100 - totalPenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	errorCount := 0
	for _, issue := range issues {
		if issue.Severity == domain.SeverityError {
			errorCount++
		}
	}

	return domain.CompatibilityCheck{
		Compatible:  errorCount == 0,
		Issues:      issues,
		Suggestions: suggestions,
		Score:       score,
	}
}
