package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

func TestNewLibraryRule(t *testing.T) {
	_, err := NewLibraryRule("", DefaultLibraryRuleConfig())
	assert.ErrorIs(t, err, ErrEmptyRuleName)

	_, err = NewLibraryRule("library", LibraryRuleConfig{UnknownPenalty: 5})
	assert.Error(t, err, "empty library index should be rejected")

	rule, err := NewLibraryRule("library", DefaultLibraryRuleConfig())
	require.NoError(t, err)
	assert.Equal(t, domain.IssueKindLibrary, rule.Kind())
}

func TestLibraryRule_Evaluate(t *testing.T) {
	rule, err := NewLibraryRule("library", DefaultLibraryRuleConfig())
	require.NoError(t, err)

	tests := []struct {
		name        string
		libraries   []string
		wantIssues  int
		wantPenalty int
	}{
		{
			name: "no required libraries is trivially compatible",
		},
		{
			name:      "core libraries are known regardless of case",
			libraries: []string{"Wire", "SPI", "OneWire"},
		},
		{
			name:      "vendor-prefixed library matches by substring",
			libraries: []string{"Adafruit_BME280"},
		},
		{
			name:        "unknown library warns",
			libraries:   []string{"ObscureSensorLib"},
			wantIssues:  1,
			wantPenalty: 5,
		},
		{
			name:        "each unknown library warns separately",
			libraries:   []string{"ObscureSensorLib", "AnotherOddDriver"},
			wantIssues:  2,
			wantPenalty: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			component := rangedComponent(3.3, 6.0, 2.5)
			component.RequiredLibraries = tt.libraries

			outcome := rule.Evaluate(context.Background(), unoStyleBoard(), component)

			assert.Equal(t, tt.wantPenalty, outcome.Penalty)
			require.Len(t, outcome.Issues, tt.wantIssues)
			for _, issue := range outcome.Issues {
				assert.Equal(t, domain.IssueKindLibrary, issue.Kind)
				// The library rule is advisory and never blocks.
				assert.NotEqual(t, domain.SeverityError, issue.Severity)
			}
		})
	}
}

func TestLibraryRule_NeverBlocksCompatibility(t *testing.T) {
	rule, err := NewLibraryRule("library", DefaultLibraryRuleConfig())
	require.NoError(t, err)

	component := rangedComponent(3.3, 6.0, 2.5)
	component.RequiredLibraries = []string{
		"CustomDriverOne", "CustomDriverTwo", "CustomDriverThree",
		"CustomDriverFour", "CustomDriverFive", "CustomDriverSix",
	}

	outcome := rule.Evaluate(context.Background(), unoStyleBoard(), component)
	for _, issue := range outcome.Issues {
		assert.Equal(t, domain.SeverityWarning, issue.Severity)
	}
}
