package rules

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

var _ ports.Rule = (*CurrentRule)(nil)

// CurrentRule checks the component's worst-case current draw against the
// board's per-pin limit and total current budget. Exceeding the per-pin
// limit is an error; approaching it is a warning. Independently, a
// component that eats more than half of the board's total budget gets an
// additional warning. Both penalties accumulate: a part that trips the
// per-pin error and the budget warning is penalized for both.
//
// Concurrency: CurrentRule is stateless and safe for concurrent
// evaluation without synchronization.
type CurrentRule struct {
	// name is the unique identifier for this rule instance.
	name string
	// config contains the validated threshold and penalty parameters.
	config CurrentRuleConfig
	// tracer is the OpenTelemetry tracer for observability.
	tracer trace.Tracer
}

// CurrentRuleConfig controls the headroom thresholds and penalties
// applied by the CurrentRule. Configuration is immutable after rule
// creation.
type CurrentRuleConfig struct {
	// PinWarnFraction is the fraction of the per-pin limit above which a
	// draw is flagged as a warning (0 < fraction < 1).
	PinWarnFraction float64 `yaml:"pin_warn_fraction" json:"pin_warn_fraction" validate:"gt=0,lt=1"`

	// TotalWarnFraction is the fraction of the board's total budget above
	// which a draw earns the budget warning (0 < fraction < 1).
	TotalWarnFraction float64 `yaml:"total_warn_fraction" json:"total_warn_fraction" validate:"gt=0,lt=1"`

	// OverPinPenalty is the score deduction for exceeding the per-pin
	// limit.
	OverPinPenalty int `yaml:"over_pin_penalty" json:"over_pin_penalty" validate:"min=0,max=100"`

	// NearPinPenalty is the score deduction for approaching the per-pin
	// limit.
	NearPinPenalty int `yaml:"near_pin_penalty" json:"near_pin_penalty" validate:"min=0,max=100"`

	// BudgetPenalty is the score deduction for consuming a large share of
	// the total budget.
	BudgetPenalty int `yaml:"budget_penalty" json:"budget_penalty" validate:"min=0,max=100"`
}

// DefaultCurrentRuleConfig returns the production thresholds: error at
// the per-pin limit (penalty 40), warning above 80% of it (penalty 10),
// and a budget warning above 50% of the board total (penalty 5).
func DefaultCurrentRuleConfig() CurrentRuleConfig {
	return CurrentRuleConfig{
		PinWarnFraction:   0.8,
		TotalWarnFraction: 0.5,
		OverPinPenalty:    40,
		NearPinPenalty:    10,
		BudgetPenalty:     5,
	}
}

// NewCurrentRule creates a CurrentRule with validated configuration.
// Returns ErrEmptyRuleName if name is empty, or a validation error if the
// config violates its constraints.
func NewCurrentRule(name string, config CurrentRuleConfig) (*CurrentRule, error) {
	if name == "" {
		return nil, ErrEmptyRuleName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &CurrentRule{
		name:   name,
		config: config,
		tracer: otel.Tracer("current-rule"),
	}, nil
}

// Name returns the unique identifier for this rule instance.
func (cr *CurrentRule) Name() string { return cr.name }

// Kind returns the issue kind this rule reports under.
func (cr *CurrentRule) Kind() domain.IssueKind { return domain.IssueKindCurrent }

// Evaluate budgets the component's maximum current draw against the
// board's per-pin and total limits. The two checks are independent and
// their penalties accumulate.
func (cr *CurrentRule) Evaluate(ctx context.Context, board domain.Board, component domain.Component) domain.RuleOutcome {
	_, span := cr.tracer.Start(ctx, "CurrentRule.Evaluate",
		trace.WithAttributes(
			attribute.String("rule.name", cr.name),
			attribute.Float64("board.max_current_per_pin", board.MaxCurrentPerPin),
			attribute.Float64("board.max_current_total", board.MaxCurrentTotal),
			attribute.Float64("component.max_current", component.MaxCurrent),
		),
	)
	defer span.End()

	draw := component.MaxCurrent
	var outcome domain.RuleOutcome

	switch {
	case board.MaxCurrentPerPin > 0 && draw > board.MaxCurrentPerPin:
		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindCurrent,
			Severity: domain.SeverityError,
			Message: fmt.Sprintf("component draws up to %.1fmA but the board's pins are limited to %.1fmA",
				draw, board.MaxCurrentPerPin),
			Solution: "Use an external driver or power supply",
		})
		outcome.Suggestions = append(outcome.Suggestions,
			"Drive the component through a MOSFET or relay driver instead of a bare pin")
		outcome.Penalty += cr.config.OverPinPenalty

	case board.MaxCurrentPerPin > 0 && draw > cr.config.PinWarnFraction*board.MaxCurrentPerPin:
		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindCurrent,
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("component draws %.1fmA, close to the board's %.1fmA per-pin limit",
				draw, board.MaxCurrentPerPin),
			Solution: "Monitor temperature and consider an external power source",
		})
		outcome.Penalty += cr.config.NearPinPenalty
	}

	// The total-budget check runs regardless of the per-pin result.
	if board.MaxCurrentTotal > 0 && draw > cr.config.TotalWarnFraction*board.MaxCurrentTotal {
		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindCurrent,
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("component alone consumes over %.0f%% of the board's %.1fmA total current budget",
				cr.config.TotalWarnFraction*100, board.MaxCurrentTotal),
			Solution: "Budget remaining current carefully or power the component externally",
		})
		outcome.Penalty += cr.config.BudgetPenalty
	}

	span.SetAttributes(
		attribute.Int("rule.issues", len(outcome.Issues)),
		attribute.Int("rule.penalty", outcome.Penalty),
	)

	return outcome
}

// Validate verifies the rule is properly configured and ready for
// evaluation. Safe for concurrent use.
func (cr *CurrentRule) Validate() error {
	if err := validate.Struct(cr.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
