package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Rank(t *testing.T) {
	assert.Less(t, SeverityError.Rank(), SeverityWarning.Rank())
	assert.Less(t, SeverityWarning.Rank(), SeverityInfo.Rank())

	// Unknown severities sort after every known one.
	assert.Greater(t, Severity("bogus").Rank(), SeverityInfo.Rank())
}

func TestCompatibilityCheck_ErrorCount(t *testing.T) {
	check := CompatibilityCheck{
		Issues: []CompatibilityIssue{
			{Kind: IssueKindVoltage, Severity: SeverityError},
			{Kind: IssueKindLibrary, Severity: SeverityWarning},
			{Kind: IssueKindCurrent, Severity: SeverityError},
			{Kind: IssueKindPhysical, Severity: SeverityInfo},
		},
	}

	assert.Equal(t, 2, check.ErrorCount())
	assert.Equal(t, 0, CompatibilityCheck{}.ErrorCount())
}

func TestFailedCheck(t *testing.T) {
	check := FailedCheck()

	assert.False(t, check.Compatible)
	assert.Equal(t, 0, check.Score)
	assert.NotNil(t, check.Suggestions)
	assert.Empty(t, check.Suggestions)

	require.Len(t, check.Issues, 1)
	issue := check.Issues[0]
	assert.Equal(t, IssueKindError, issue.Kind)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, "compatibility check failed", issue.Message)
}
