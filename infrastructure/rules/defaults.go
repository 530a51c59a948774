package rules

import (
	"fmt"

	"github.com/SaiAkhilM/protobuddy/internal/ports"
)

// DefaultRules returns the six production rules with their default
// configurations, in the engine's canonical evaluation order: voltage,
// current, protocol, pins, library, physical. The aggregator uses this
// order to break severity ties, so callers wiring a checker by hand
// should preserve it.
func DefaultRules() ([]ports.Rule, error) {
	voltage, err := NewVoltageRule("voltage", DefaultVoltageRuleConfig())
	if err != nil {
		return nil, fmt.Errorf("voltage rule: %w", err)
	}
	current, err := NewCurrentRule("current", DefaultCurrentRuleConfig())
	if err != nil {
		return nil, fmt.Errorf("current rule: %w", err)
	}
	protocol, err := NewProtocolRule("protocol", DefaultProtocolRuleConfig())
	if err != nil {
		return nil, fmt.Errorf("protocol rule: %w", err)
	}
	pins, err := NewPinBudgetRule("pins", DefaultPinBudgetRuleConfig())
	if err != nil {
		return nil, fmt.Errorf("pin budget rule: %w", err)
	}
	library, err := NewLibraryRule("library", DefaultLibraryRuleConfig())
	if err != nil {
		return nil, fmt.Errorf("library rule: %w", err)
	}
	physical, err := NewPhysicalRule("physical", DefaultPhysicalRuleConfig())
	if err != nil {
		return nil, fmt.Errorf("physical rule: %w", err)
	}

	return []ports.Rule{voltage, current, protocol, pins, library, physical}, nil
}
