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

var _ ports.Rule = (*PhysicalRule)(nil)

// PhysicalRule flags components with a large footprint. Components
// without declared dimensions are trivially compatible. The rule only
// ever emits info-severity issues, so it never blocks compatibility.
//
// Concurrency: PhysicalRule is stateless and safe for concurrent
// evaluation without synchronization.
type PhysicalRule struct {
	// name is the unique identifier for this rule instance.
	name string
	// config contains the validated threshold parameters.
	config PhysicalRuleConfig
	// tracer is the OpenTelemetry tracer for observability.
	tracer trace.Tracer
}

// PhysicalRuleConfig controls the footprint threshold and penalty applied
// by the PhysicalRule. Configuration is immutable after rule creation.
type PhysicalRuleConfig struct {
	// LargeSizeMM is the length or width in millimeters beyond which a
	// component counts as large.
	LargeSizeMM float64 `yaml:"large_size_mm" json:"large_size_mm" validate:"gt=0"`

	// LargePenalty is the score deduction for a large footprint.
	LargePenalty int `yaml:"large_penalty" json:"large_penalty" validate:"min=0,max=100"`
}

// DefaultPhysicalRuleConfig returns the production threshold: anything
// over 50mm in length or width is flagged, penalized 2.
func DefaultPhysicalRuleConfig() PhysicalRuleConfig {
	return PhysicalRuleConfig{
		LargeSizeMM:  50,
		LargePenalty: 2,
	}
}

// NewPhysicalRule creates a PhysicalRule with validated configuration.
// Returns ErrEmptyRuleName if name is empty, or a validation error if the
// config violates its constraints.
func NewPhysicalRule(name string, config PhysicalRuleConfig) (*PhysicalRule, error) {
	if name == "" {
		return nil, ErrEmptyRuleName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &PhysicalRule{
		name:   name,
		config: config,
		tracer: otel.Tracer("physical-rule"),
	}, nil
}

// Name returns the unique identifier for this rule instance.
func (phr *PhysicalRule) Name() string { return phr.name }

// Kind returns the issue kind this rule reports under.
func (phr *PhysicalRule) Kind() domain.IssueKind { return domain.IssueKindPhysical }

// Evaluate flags the component when its declared length or width exceeds
// the configured threshold.
func (phr *PhysicalRule) Evaluate(ctx context.Context, board domain.Board, component domain.Component) domain.RuleOutcome {
	_, span := phr.tracer.Start(ctx, "PhysicalRule.Evaluate",
		trace.WithAttributes(
			attribute.String("rule.name", phr.name),
			attribute.Bool("component.has_dimensions", component.Dimensions != nil),
		),
	)
	defer span.End()

	var outcome domain.RuleOutcome

	dims := component.Dimensions
	if dims == nil {
		return outcome
	}

	if dims.Length > phr.config.LargeSizeMM || dims.Width > phr.config.LargeSizeMM {
		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindPhysical,
			Severity: domain.SeverityInfo,
			Message: fmt.Sprintf("component footprint is %.0fx%.0fmm; plan mounting space beyond a single breadboard",
				dims.Length, dims.Width),
		})
		outcome.Penalty += phr.config.LargePenalty
	}

	span.SetAttributes(
		attribute.Int("rule.issues", len(outcome.Issues)),
		attribute.Int("rule.penalty", outcome.Penalty),
	)

	return outcome
}

// Validate verifies the rule is properly configured and ready for
// evaluation. Safe for concurrent use.
func (phr *PhysicalRule) Validate() error {
	if err := validate.Struct(phr.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
