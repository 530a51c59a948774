package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiAkhilM/protobuddy/internal/domain"
)

func TestNewCurrentRule(t *testing.T) {
	_, err := NewCurrentRule("", DefaultCurrentRuleConfig())
	assert.ErrorIs(t, err, ErrEmptyRuleName)

	bad := DefaultCurrentRuleConfig()
	bad.PinWarnFraction = 1.2
	_, err = NewCurrentRule("current", bad)
	assert.Error(t, err)

	rule, err := NewCurrentRule("current", DefaultCurrentRuleConfig())
	require.NoError(t, err)
	assert.Equal(t, domain.IssueKindCurrent, rule.Kind())
}

func TestCurrentRule_Evaluate(t *testing.T) {
	rule, err := NewCurrentRule("current", DefaultCurrentRuleConfig())
	require.NoError(t, err)

	tests := []struct {
		name           string
		maxCurrent     float64
		wantPenalty    int
		wantSeverities []domain.Severity
	}{
		{
			name:       "tiny draw passes",
			maxCurrent: 2.5,
		},
		{
			name:           "draw above per-pin limit is an error",
			maxCurrent:     25,
			wantPenalty:    40,
			wantSeverities: []domain.Severity{domain.SeverityError},
		},
		{
			name:           "draw near per-pin limit is a warning",
			maxCurrent:     17,
			wantPenalty:    10,
			wantSeverities: []domain.Severity{domain.SeverityWarning},
		},
		{
			name:       "heavy draw trips both per-pin error and budget warning",
			maxCurrent: 120,
			// 40 for exceeding the 20mA pin limit, 5 for eating more
			// than half of the 200mA budget. Both accumulate.
			wantPenalty: 45,
			wantSeverities: []domain.Severity{
				domain.SeverityError,
				domain.SeverityWarning,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := rule.Evaluate(context.Background(), unoStyleBoard(), rangedComponent(3.3, 6.0, tt.maxCurrent))

			assert.Equal(t, tt.wantPenalty, outcome.Penalty)
			require.Len(t, outcome.Issues, len(tt.wantSeverities))
			for i, severity := range tt.wantSeverities {
				assert.Equal(t, severity, outcome.Issues[i].Severity)
				assert.Equal(t, domain.IssueKindCurrent, outcome.Issues[i].Kind)
			}
		})
	}
}

func TestCurrentRule_OverLimitSolutionAndSuggestion(t *testing.T) {
	rule, err := NewCurrentRule("current", DefaultCurrentRuleConfig())
	require.NoError(t, err)

	outcome := rule.Evaluate(context.Background(), unoStyleBoard(), rangedComponent(3.3, 6.0, 25))

	require.Len(t, outcome.Issues, 1)
	assert.Equal(t, "Use an external driver or power supply", outcome.Issues[0].Solution)
	require.Len(t, outcome.Suggestions, 1)
	assert.Contains(t, outcome.Suggestions[0], "MOSFET")
}

func TestCurrentRule_NoLimitsDeclared(t *testing.T) {
	rule, err := NewCurrentRule("current", DefaultCurrentRuleConfig())
	require.NoError(t, err)

	board := unoStyleBoard()
	board.MaxCurrentPerPin = 0
	board.MaxCurrentTotal = 0

	outcome := rule.Evaluate(context.Background(), board, rangedComponent(3.3, 6.0, 500))
	assert.Empty(t, outcome.Issues)
	assert.Zero(t, outcome.Penalty)
}
