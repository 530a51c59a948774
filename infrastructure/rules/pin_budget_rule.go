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

var _ ports.Rule = (*PinBudgetRule)(nil)

// PinBudgetRule checks that the board has enough I/O pins for the
// component. The digital budget compares the component's signal pins
// (everything except power and ground) against the board's digital pins;
// running out is an error, using more than the configured fraction is a
// warning. Separately, the component's analog pins are budgeted against
// the board's analog-capable pins, and a shortfall there is an error
// suggesting an external ADC.
//
// Concurrency: PinBudgetRule is stateless and safe for concurrent
// evaluation without synchronization.
type PinBudgetRule struct {
	// name is the unique identifier for this rule instance.
	name string
	// config contains the validated threshold and penalty parameters.
	config PinBudgetRuleConfig
	// tracer is the OpenTelemetry tracer for observability.
	tracer trace.Tracer
}

// PinBudgetRuleConfig controls the thresholds and penalties applied by
// the PinBudgetRule. Configuration is immutable after rule creation.
type PinBudgetRuleConfig struct {
	// WarnFraction is the fraction of the board's digital pins above
	// which usage is flagged as a warning (0 < fraction < 1).
	WarnFraction float64 `yaml:"warn_fraction" json:"warn_fraction" validate:"gt=0,lt=1"`

	// OverBudgetPenalty is the score deduction when the component needs
	// more digital pins than the board has.
	OverBudgetPenalty int `yaml:"over_budget_penalty" json:"over_budget_penalty" validate:"min=0,max=100"`

	// NearBudgetPenalty is the score deduction when the component uses
	// most of the board's digital pins.
	NearBudgetPenalty int `yaml:"near_budget_penalty" json:"near_budget_penalty" validate:"min=0,max=100"`

	// AnalogShortfallPenalty is the score deduction when the component
	// needs more analog inputs than the board exposes.
	AnalogShortfallPenalty int `yaml:"analog_shortfall_penalty" json:"analog_shortfall_penalty" validate:"min=0,max=100"`
}

// DefaultPinBudgetRuleConfig returns the production thresholds: error at
// the pin count (penalty 30), warning above 80% usage (penalty 5), and an
// analog shortfall error at 25.
func DefaultPinBudgetRuleConfig() PinBudgetRuleConfig {
	return PinBudgetRuleConfig{
		WarnFraction:           0.8,
		OverBudgetPenalty:      30,
		NearBudgetPenalty:      5,
		AnalogShortfallPenalty: 25,
	}
}

// NewPinBudgetRule creates a PinBudgetRule with validated configuration.
// Returns ErrEmptyRuleName if name is empty, or a validation error if the
// config violates its constraints.
func NewPinBudgetRule(name string, config PinBudgetRuleConfig) (*PinBudgetRule, error) {
	if name == "" {
		return nil, ErrEmptyRuleName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &PinBudgetRule{
		name:   name,
		config: config,
		tracer: otel.Tracer("pin-budget-rule"),
	}, nil
}

// Name returns the unique identifier for this rule instance.
func (pbr *PinBudgetRule) Name() string { return pbr.name }

// Kind returns the issue kind this rule reports under.
func (pbr *PinBudgetRule) Kind() domain.IssueKind { return domain.IssueKindPins }

// Evaluate budgets the component's pin needs against the board's supply.
// The digital and analog budgets are independent; their penalties
// accumulate.
func (pbr *PinBudgetRule) Evaluate(ctx context.Context, board domain.Board, component domain.Component) domain.RuleOutcome {
	required := component.SignalPinCount()
	available := board.DigitalPinCount()
	analogRequired := component.AnalogPinCount()
	analogAvailable := board.AnalogPinCount()

	_, span := pbr.tracer.Start(ctx, "PinBudgetRule.Evaluate",
		trace.WithAttributes(
			attribute.String("rule.name", pbr.name),
			attribute.Int("component.signal_pins", required),
			attribute.Int("board.digital_pins", available),
			attribute.Int("component.analog_pins", analogRequired),
			attribute.Int("board.analog_pins", analogAvailable),
		),
	)
	defer span.End()

	var outcome domain.RuleOutcome

	switch {
	case required > available:
		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindPins,
			Severity: domain.SeverityError,
			Message: fmt.Sprintf("component needs %d I/O pins but the board has only %d digital pins",
				required, available),
			Solution: "Use an I/O expander such as the MCP23017, or a board with more I/O",
		})
		outcome.Suggestions = append(outcome.Suggestions,
			"Add a pin expander, or pick a board with more digital pins")
		outcome.Penalty += pbr.config.OverBudgetPenalty

	case required > 0 && float64(required) > pbr.config.WarnFraction*float64(available):
		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindPins,
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("component uses %d of the board's %d digital pins, leaving little headroom",
				required, available),
		})
		outcome.Penalty += pbr.config.NearBudgetPenalty
	}

	if analogRequired > analogAvailable {
		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindPins,
			Severity: domain.SeverityError,
			Message: fmt.Sprintf("component needs %d analog inputs but the board exposes %d",
				analogRequired, analogAvailable),
			Solution: "Add an external ADC such as the ADS1115",
		})
		outcome.Suggestions = append(outcome.Suggestions,
			"Use an external ADC for the extra analog channels")
		outcome.Penalty += pbr.config.AnalogShortfallPenalty
	}

	span.SetAttributes(
		attribute.Int("rule.issues", len(outcome.Issues)),
		attribute.Int("rule.penalty", outcome.Penalty),
	)

	return outcome
}

// Validate verifies the rule is properly configured and ready for
// evaluation. Safe for concurrent use.
func (pbr *PinBudgetRule) Validate() error {
	if err := validate.Struct(pbr.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
