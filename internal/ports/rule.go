// Package ports defines the interfaces that form the contract between the
// domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the engine
// testable with in-memory fakes.
package ports

import (
	"context"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

// Rule is a single compatibility dimension evaluator. Each Rule inspects
// one aspect of a (board, component) pairing, such as voltage, current,
// protocol support, pin budget, library availability, or physical fit,
// and reports its findings as a RuleOutcome.
//
// Rules must be pure functions of their inputs: stateless, side-effect
// free, and safe for concurrent execution. A missing optional field on
// the component (no protocols, no dimensions) is trivially compatible for
// that dimension and yields a zero outcome, never an error or panic.
// Because rules are pure, the engine may evaluate them sequentially or in
// parallel with identical results.
type Rule interface {
	// Name returns the unique identifier for this rule.
	// The name is used for logging, tracing, and metrics labels.
	Name() string

	// Kind returns the issue kind this rule reports under.
	Kind() domain.IssueKind

	// Evaluate inspects the pairing and returns the rule's findings.
	// The context carries tracing metadata only; rules never block on it.
	Evaluate(ctx context.Context, board domain.Board, component domain.Component) domain.RuleOutcome

	// Validate checks that the rule is properly configured and ready for
	// evaluation. It is typically called once at engine construction.
	Validate() error
}
