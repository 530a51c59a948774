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

var _ ports.Rule = (*ProtocolRule)(nil)

// protocolSolutions maps each protocol to the remediation offered when a
// board does not support it. Protocols outside this map fall back to a
// generic adapter suggestion.
var protocolSolutions = map[domain.Protocol]string{
	domain.ProtocolI2C:     "Choose a board with hardware I2C, or use a software I2C library on two digital pins",
	domain.ProtocolSPI:     "Choose a board with hardware SPI, or bit-bang SPI with a software library",
	domain.ProtocolUART:    "Use a software serial library on two digital pins",
	domain.ProtocolOneWire: "Use the OneWire library; the protocol can be bit-banged on any digital pin",
	domain.ProtocolCAN:     "Add an external CAN controller such as the MCP2515 over SPI",
}

// ProtocolRule checks every communication protocol the component requires
// against the board's supported set. A component with no protocol
// requirements is trivially compatible. GPIO is treated as ubiquitous and
// never flagged.
//
// For protocols the board does support, the rule runs protocol-specific
// secondary checks: I2C devices with a declared address get an address
// conflict reminder, SPI devices a chip-select reminder, and UART devices
// a warning when the board exposes no UART-capable pin.
//
// Concurrency: ProtocolRule is stateless and safe for concurrent
// evaluation without synchronization.
type ProtocolRule struct {
	// name is the unique identifier for this rule instance.
	name string
	// config contains the validated penalty parameters.
	config ProtocolRuleConfig
	// tracer is the OpenTelemetry tracer for observability.
	tracer trace.Tracer
}

// ProtocolRuleConfig controls the penalties applied by the ProtocolRule.
// Configuration is immutable after rule creation.
type ProtocolRuleConfig struct {
	// UnsupportedPenalty is the score deduction per required protocol the
	// board does not support.
	UnsupportedPenalty int `yaml:"unsupported_penalty" json:"unsupported_penalty" validate:"min=0,max=100"`

	// NoUARTPinPenalty is the score deduction when UART is nominally
	// supported but no board pin declares a UART function.
	NoUARTPinPenalty int `yaml:"no_uart_pin_penalty" json:"no_uart_pin_penalty" validate:"min=0,max=100"`
}

// DefaultProtocolRuleConfig returns the production penalties: 30 per
// unsupported protocol and 10 for a UART requirement without a UART pin.
func DefaultProtocolRuleConfig() ProtocolRuleConfig {
	return ProtocolRuleConfig{
		UnsupportedPenalty: 30,
		NoUARTPinPenalty:   10,
	}
}

// NewProtocolRule creates a ProtocolRule with validated configuration.
// Returns ErrEmptyRuleName if name is empty, or a validation error if the
// config violates its constraints.
func NewProtocolRule(name string, config ProtocolRuleConfig) (*ProtocolRule, error) {
	if name == "" {
		return nil, ErrEmptyRuleName
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &ProtocolRule{
		name:   name,
		config: config,
		tracer: otel.Tracer("protocol-rule"),
	}, nil
}

// Name returns the unique identifier for this rule instance.
func (pr *ProtocolRule) Name() string { return pr.name }

// Kind returns the issue kind this rule reports under.
func (pr *ProtocolRule) Kind() domain.IssueKind { return domain.IssueKindProtocol }

// Evaluate walks the component's required protocols in declaration order,
// accumulating issues and suggestions from every requirement.
func (pr *ProtocolRule) Evaluate(ctx context.Context, board domain.Board, component domain.Component) domain.RuleOutcome {
	_, span := pr.tracer.Start(ctx, "ProtocolRule.Evaluate",
		trace.WithAttributes(
			attribute.String("rule.name", pr.name),
			attribute.Int("component.protocols", len(component.Protocols)),
		),
	)
	defer span.End()

	var outcome domain.RuleOutcome

	for _, req := range component.Protocols {
		if req.Type == domain.ProtocolGPIO {
			// Plain digital I/O is assumed ubiquitous.
			continue
		}

		if !board.SupportsProtocol(req.Type) {
			solution, ok := protocolSolutions[req.Type]
			if !ok {
				solution = fmt.Sprintf("Check for an adapter or a software implementation of %s", req.Type)
			}

			outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
				Kind:     domain.IssueKindProtocol,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("component requires %s but the board does not support it", req.Type),
				Solution: solution,
			})
			outcome.Penalty += pr.config.UnsupportedPenalty
			continue
		}

		// Secondary checks for protocols the board does support.
		switch req.Type {
		case domain.ProtocolI2C:
			if req.Address != "" {
				outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
					Kind:     domain.IssueKindProtocol,
					Severity: domain.SeverityInfo,
					Message:  fmt.Sprintf("I2C device uses address %s", req.Address),
				})
				outcome.Suggestions = append(outcome.Suggestions,
					fmt.Sprintf("Check that no other component on the I2C bus uses address %s", req.Address))
			}

		case domain.ProtocolSPI:
			outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
				Kind:     domain.IssueKindProtocol,
				Severity: domain.SeverityInfo,
				Message:  "SPI devices need a dedicated chip-select pin",
			})
			outcome.Suggestions = append(outcome.Suggestions,
				"Reserve a dedicated chip-select pin for this component")

		case domain.ProtocolUART:
			if board.PinsWithFunction(domain.PinFunctionUART) == 0 {
				outcome.Issues = append(outcome.Issues, domain.CompatibilityIssue{
					Kind:     domain.IssueKindProtocol,
					Severity: domain.SeverityWarning,
					Message:  "board supports UART but exposes no UART-capable pin",
					Solution: "Use a software serial library on two digital pins",
				})
				outcome.Suggestions = append(outcome.Suggestions,
					"Fall back to software serial on two digital pins")
				outcome.Penalty += pr.config.NoUARTPinPenalty
			}
		}
	}

	span.SetAttributes(
		attribute.Int("rule.issues", len(outcome.Issues)),
		attribute.Int("rule.penalty", outcome.Penalty),
	)

	return outcome
}

// Validate verifies the rule is properly configured and ready for
// evaluation. Safe for concurrent use.
func (pr *ProtocolRule) Validate() error {
	if err := validate.Struct(pr.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
