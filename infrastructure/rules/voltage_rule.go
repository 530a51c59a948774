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

var _ ports.Rule = (*VoltageRule)(nil)

// VoltageRule checks that the board's I/O voltage falls inside the
// component's operating voltage window. A mismatch larger than the
// configured delta is an error; a smaller one is a warning, since many
// parts tolerate slight over- or under-driving.
//
// The rule also emits targeted suggestions for the two most common maker
// mismatches: a 5V board driving a 3.3V-only part, and a 3.3V board
// driving a 5V-only part.
//
// Concurrency: VoltageRule is stateless and safe for concurrent
// evaluation without synchronization.
type VoltageRule struct {
	// name is the unique identifier for this rule instance.
	name string
	// config contains the validated threshold and penalty parameters.
	config VoltageRuleConfig
	// tracer is the OpenTelemetry tracer for observability.
	tracer trace.Tracer
}

// VoltageRuleConfig controls the mismatch threshold and penalties applied
// by the VoltageRule. Configuration is immutable after rule creation.
type VoltageRuleConfig struct {
	// ErrorDeltaVolts is the gap between the board I/O voltage and the
	// component's minimum voltage beyond which a mismatch becomes an
	// error rather than a warning.
	ErrorDeltaVolts float64 `yaml:"error_delta_volts" json:"error_delta_volts" validate:"gt=0"`

	// ErrorPenalty is the score deduction for an error-grade mismatch.
	ErrorPenalty int `yaml:"error_penalty" json:"error_penalty" validate:"min=0,max=100"`

	// WarningPenalty is the score deduction for a warning-grade mismatch.
	WarningPenalty int `yaml:"warning_penalty" json:"warning_penalty" validate:"min=0,max=100"`
}

// DefaultVoltageRuleConfig returns the production thresholds: a 1.5V gap
// escalates to an error, penalized 50; narrower mismatches warn at 20.
func DefaultVoltageRuleConfig() VoltageRuleConfig {
	return VoltageRuleConfig{
		ErrorDeltaVolts: 1.5,
		ErrorPenalty:    50,
		WarningPenalty:  20,
	}
}

// NewVoltageRule creates a VoltageRule with validated configuration.
// Returns ErrEmptyRuleName if name is empty, or a validation error if the
// config violates its constraints.
func NewVoltageRule(name string, config VoltageRuleConfig) (*VoltageRule, error) {
	if name == "" {
		return nil, ErrEmptyRuleName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &VoltageRule{
		name:   name,
		config: config,
		tracer: otel.Tracer("voltage-rule"),
	}, nil
}

// Name returns the unique identifier for this rule instance.
func (vr *VoltageRule) Name() string { return vr.name }

// Kind returns the issue kind this rule reports under.
func (vr *VoltageRule) Kind() domain.IssueKind { return domain.IssueKindVoltage }

// Evaluate compares the board I/O voltage against the component's
// operating window. A board voltage inside the window produces a zero
// outcome. Outside the window, the severity depends on how far the board
// voltage sits from the component's minimum: beyond ErrorDeltaVolts it is
// an error, otherwise a warning.
func (vr *VoltageRule) Evaluate(ctx context.Context, board domain.Board, component domain.Component) domain.RuleOutcome {
	_, span := vr.tracer.Start(ctx, "VoltageRule.Evaluate",
		trace.WithAttributes(
			attribute.String("rule.name", vr.name),
			attribute.Float64("board.io_voltage", board.IOVoltage),
			attribute.Float64("component.voltage_min", component.Voltage.Min),
			attribute.Float64("component.voltage_max", component.Voltage.Max),
		),
	)
	defer span.End()

	vb := board.IOVoltage
	var outcome domain.RuleOutcome

	if component.Voltage.Contains(vb) {
		span.SetAttributes(attribute.Bool("rule.matched", false))
		return outcome
	}

	severity := domain.SeverityWarning
	penalty := vr.config.WarningPenalty
	if delta := vb - component.Voltage.Min; delta > vr.config.ErrorDeltaVolts || delta < -vr.config.ErrorDeltaVolts {
		severity = domain.SeverityError
		penalty = vr.config.ErrorPenalty
	}

	solution := fmt.Sprintf("Check the component datasheet; some parts tolerate %.1fV outside the rated range", vb)
	if vb > component.Voltage.Max {
		solution = fmt.Sprintf("Use a level shifter or voltage divider to step the board's %.1fV output down to %.1fV", vb, component.Voltage.Max)
	}

	outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
		Kind:     domain.IssueKindVoltage,
		Severity: severity,
		Message: fmt.Sprintf("component operates at %.1fV-%.1fV but the board's I/O voltage is %.1fV",
			component.Voltage.Min, component.Voltage.Max, vb),
		Solution: solution,
	})
	outcome.Penalty = penalty

	// The two classic maker mismatches get explicit suggestions.
	if vb == 5.0 && component.Voltage.Max <= 3.6 {
		outcome.Suggestions = append(outcome.Suggestions,
			"Use a 3.3V level shifter between the board and the component")
	}
	if vb == 3.3 && component.Voltage.Min >= 4.5 {
		outcome.Suggestions = append(outcome.Suggestions,
			"Component needs 5V; driving it from a 3.3V board may be unreliable")
	}

	span.SetAttributes(
		attribute.Bool("rule.matched", true),
		attribute.String("rule.severity", string(severity)),
		attribute.Int("rule.penalty", outcome.Penalty),
	)

	return outcome
}

// Validate verifies the rule is properly configured and ready for
// evaluation. Safe for concurrent use.
func (vr *VoltageRule) Validate() error {
	if err := validate.Struct(vr.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
