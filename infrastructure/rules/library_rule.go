package rules

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

var _ ports.Rule = (*LibraryRule)(nil)

// defaultKnownLibraries is the index of widely-available driver libraries
// preinstalled or one click away in common board package managers.
// Matching is a case-insensitive substring check, so "Adafruit_BME280"
// matches the "adafruit" entry.
var defaultKnownLibraries = []string{
	"wire",
	"spi",
	"eeprom",
	"servo",
	"stepper",
	"softwareserial",
	"liquidcrystal",
	"onewire",
	"dallastemperature",
	"dht",
	"adafruit",
	"fastled",
	"pubsubclient",
	"arduinojson",
}

// LibraryRule checks the component's required software libraries against
// an index of widely-available libraries. Libraries outside the index get
// a warning each, with a manual-install suggestion. The rule is advisory:
// it never emits an error-severity issue, so it can never make a pairing
// incompatible on its own.
//
// Concurrency: LibraryRule is stateless and safe for concurrent
// evaluation without synchronization.
type LibraryRule struct {
	// name is the unique identifier for this rule instance.
	name string
	// config contains the validated parameters.
	config LibraryRuleConfig
	// known holds the case-folded library index for matching.
	known []string
	// tracer is the OpenTelemetry tracer for observability.
	tracer trace.Tracer
}

// LibraryRuleConfig controls the library index and penalty applied by the
// LibraryRule. Configuration is immutable after rule creation.
type LibraryRuleConfig struct {
	// KnownLibraries is the index of widely-available libraries. Entries
	// are matched case-insensitively as substrings of required library
	// names. Empty entries are rejected.
	KnownLibraries []string `yaml:"known_libraries" json:"known_libraries" validate:"required,min=1,dive,min=1"`

	// UnknownPenalty is the score deduction per library outside the
	// index.
	UnknownPenalty int `yaml:"unknown_penalty" json:"unknown_penalty" validate:"min=0,max=100"`
}

// DefaultLibraryRuleConfig returns the production index and a penalty of
// 5 per unknown library.
func DefaultLibraryRuleConfig() LibraryRuleConfig {
	known := make([]string, len(defaultKnownLibraries))
	copy(known, defaultKnownLibraries)
	return LibraryRuleConfig{
		KnownLibraries: known,
		UnknownPenalty: 5,
	}
}

// NewLibraryRule creates a LibraryRule with validated configuration.
// The library index is case-folded once at construction. Returns
// ErrEmptyRuleName if name is empty, or a validation error if the config
// violates its constraints.
func NewLibraryRule(name string, config LibraryRuleConfig) (*LibraryRule, error) {
	if name == "" {
		return nil, ErrEmptyRuleName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	known := make([]string, len(config.KnownLibraries))
	for i, lib := range config.KnownLibraries {
		known[i] = foldCaser.String(lib)
	}

	return &LibraryRule{
		name:   name,
		config: config,
		known:  known,
		tracer: otel.Tracer("library-rule"),
	}, nil
}

// Name returns the unique identifier for this rule instance.
func (lr *LibraryRule) Name() string { return lr.name }

// Kind returns the issue kind this rule reports under.
func (lr *LibraryRule) Kind() domain.IssueKind { return domain.IssueKindLibrary }

// Evaluate checks every required library against the known index. A
// component with no required libraries is trivially compatible.
func (lr *LibraryRule) Evaluate(ctx context.Context, board domain.Board, component domain.Component) domain.RuleOutcome {
	_, span := lr.tracer.Start(ctx, "LibraryRule.Evaluate",
		trace.WithAttributes(
			attribute.String("rule.name", lr.name),
			attribute.Int("component.required_libraries", len(component.RequiredLibraries)),
		),
	)
	defer span.End()

	var outcome domain.RuleOutcome

	for _, lib := range component.RequiredLibraries {
		if lr.isKnown(lib) {
			continue
		}

		outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
			Kind:     domain.IssueKindLibrary,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("library %q is not in the known library index", lib),
			Solution: "Install the library manually through the board's library manager",
		})
		outcome.Suggestions = append(outcome.Suggestions,
			fmt.Sprintf("Install %s manually before flashing", lib))
		outcome.Penalty += lr.config.UnknownPenalty
	}

	span.SetAttributes(
		attribute.Int("rule.issues", len(outcome.Issues)),
		attribute.Int("rule.penalty", outcome.Penalty),
	)

	return outcome
}

// isKnown reports whether any index entry appears, case-insensitively,
// inside the library name, so "Adafruit_BME280" matches the "adafruit"
// entry and "DHT22" matches "dht".
func (lr *LibraryRule) isKnown(lib string) bool {
	folded := foldCaser.String(lib)
	for _, known := range lr.known {
		if strings.Contains(folded, known) {
			return true
		}
	}
	return false
}

// Validate verifies the rule is properly configured and ready for
// evaluation. Safe for concurrent use.
func (lr *LibraryRule) Validate() error {
	if err := validate.Struct(lr.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
