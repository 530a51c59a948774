package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

func pinnedComponent(pins ...domain.ComponentPin) domain.Component {
	c := rangedComponent(3.3, 6.0, 2.5)
	c.Pins = pins
	return c
}

func digitalPins(n int) []domain.ComponentPin {
	pins := make([]domain.ComponentPin, n)
	for i := range pins {
		pins[i] = domain.ComponentPin{Name: "D", Type: domain.PinTypeDigital}
	}
	return pins
}

func TestPinBudgetRule_Evaluate(t *testing.T) {
	rule, err := NewPinBudgetRule("pins", DefaultPinBudgetRuleConfig())
	require.NoError(t, err)

	tests := []struct {
		name        string
		component   domain.Component
		wantPenalty int
		wantIssues  int
		wantErrors  int
	}{
		{
			name:      "no pins declared is trivially compatible",
			component: pinnedComponent(),
		},
		{
			name:      "two pins on a fourteen pin board pass",
			component: pinnedComponent(digitalPins(2)...),
		},
		{
			name:        "more pins than the board has is an error",
			component:   pinnedComponent(digitalPins(15)...),
			wantPenalty: 30,
			wantIssues:  1,
			wantErrors:  1,
		},
		{
			name:        "using most of the pins is a warning",
			component:   pinnedComponent(digitalPins(12)...),
			wantPenalty: 5,
			wantIssues:  1,
		},
		{
			name: "power and ground pins do not consume the budget",
			component: pinnedComponent(
				domain.ComponentPin{Name: "VCC", Type: domain.PinTypePower},
				domain.ComponentPin{Name: "GND", Type: domain.PinTypeGround},
				domain.ComponentPin{Name: "OUT", Type: domain.PinTypeDigital},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := rule.Evaluate(context.Background(), unoStyleBoard(), tt.component)

			assert.Equal(t, tt.wantPenalty, outcome.Penalty)
			assert.Len(t, outcome.Issues, tt.wantIssues)

			errs := 0
			for _, issue := range outcome.Issues {
				assert.Equal(t, domain.IssueKindPins, issue.Kind)
				if issue.Severity == domain.SeverityError {
					errs++
				}
			}
			assert.Equal(t, tt.wantErrors, errs)
		})
	}
}

func TestPinBudgetRule_AnalogShortfall(t *testing.T) {
	rule, err := NewPinBudgetRule("pins", DefaultPinBudgetRuleConfig())
	require.NoError(t, err)

	analog := make([]domain.ComponentPin, 8)
	for i := range analog {
		analog[i] = domain.ComponentPin{Name: "A", Type: domain.PinTypeAnalog}
	}

	// 8 analog channels against the board's 6; the digital budget
	// (8 signal pins of 14) stays fine, so only the analog error fires.
	outcome := rule.Evaluate(context.Background(), unoStyleBoard(), pinnedComponent(analog...))

	require.Len(t, outcome.Issues, 1)
	assert.Equal(t, domain.SeverityError, outcome.Issues[0].Severity)
	assert.Equal(t, 25, outcome.Penalty)
	assert.Contains(t, outcome.Issues[0].Solution, "ADC")
}

func TestPinBudgetRule_BothBudgetsAccumulate(t *testing.T) {
	rule, err := NewPinBudgetRule("pins", DefaultPinBudgetRuleConfig())
	require.NoError(t, err)

	pins := digitalPins(10)
	for i := 0; i < 8; i++ {
		pins = append(pins, domain.ComponentPin{Name: "A", Type: domain.PinTypeAnalog})
	}

	// 18 signal pins over a 14 pin budget plus an analog shortfall.
	outcome := rule.Evaluate(context.Background(), unoStyleBoard(), pinnedComponent(pins...))

	assert.Equal(t, 55, outcome.Penalty)
	assert.Len(t, outcome.Issues, 2)
}
