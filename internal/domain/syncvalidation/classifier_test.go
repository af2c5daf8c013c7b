package syncvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFindings_DedupesByCodeFieldValue(t *testing.T) {
	findings := []Finding{
		{Code: CodeValidationSystemError, Severity: SeverityCritical, Field: "", Value: ""},
		{Code: CodeValidationSystemError, Severity: SeverityCritical, Field: "", Value: ""},
		{Code: CodeOrdersNotFound, Severity: SeverityHigh, Field: "orderIds", Value: "a"},
		{Code: CodeOrdersNotFound, Severity: SeverityHigh, Field: "orderIds", Value: "b"},
	}

	classified := ClassifyFindings(findings)

	// identical system errors collapse; distinct values survive
	assert.Len(t, classified, 3)
	assert.Equal(t, CodeValidationSystemError, classified[0].Code)
}

func TestClassifyFindings_OrdersBySeverity(t *testing.T) {
	findings := []Finding{
		{Code: "LOW", Severity: SeverityLow},
		{Code: "MEDIUM", Severity: SeverityMedium},
		{Code: "CRITICAL", Severity: SeverityCritical},
		{Code: "HIGH", Severity: SeverityHigh},
	}

	classified := ClassifyFindings(findings)

	codes := make([]string, len(classified))
	for i, f := range classified {
		codes[i] = f.Code
	}
	assert.Equal(t, []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}, codes)
}

func TestClassifyFindings_StableWithinSeverity(t *testing.T) {
	findings := []Finding{
		{Code: "FIRST", Severity: SeverityMedium},
		{Code: "SECOND", Severity: SeverityMedium},
		{Code: "THIRD", Severity: SeverityMedium},
	}

	classified := ClassifyFindings(findings)

	assert.Equal(t, "FIRST", classified[0].Code)
	assert.Equal(t, "SECOND", classified[1].Code)
	assert.Equal(t, "THIRD", classified[2].Code)
}

func TestClassifyFindings_Empty(t *testing.T) {
	assert.Empty(t, ClassifyFindings(nil))
}

func TestBuildRecommendations_CriticalAdvisoryFirst(t *testing.T) {
	errors := []Finding{
		{Code: CodeChannelNotFound, Severity: SeverityCritical, Recommendation: "Verify the channel is connected"},
		{Code: CodeOrdersNotFound, Severity: SeverityHigh, Recommendation: "Remove unknown order IDs"},
	}
	warnings := []Finding{
		{Code: CodeBatchSizeExceeded, Severity: SeverityMedium, Recommendation: "Split the sync into smaller batches"},
	}

	recommendations := BuildRecommendations(errors, warnings)

	assert.Equal(t, []string{
		RecommendationCriticalErrors,
		"Verify the channel is connected",
		"Remove unknown order IDs",
		"Split the sync into smaller batches",
	}, recommendations)
}

func TestBuildRecommendations_NoCriticalAdvisoryWithoutCritical(t *testing.T) {
	errors := []Finding{
		{Code: CodeOrdersNotFound, Severity: SeverityHigh, Recommendation: "Remove unknown order IDs"},
	}

	recommendations := BuildRecommendations(errors, nil)

	assert.Equal(t, []string{"Remove unknown order IDs"}, recommendations)
}

func TestBuildRecommendations_DedupesAndSkipsEmpty(t *testing.T) {
	warnings := []Finding{
		{Code: "A", Severity: SeverityMedium, Recommendation: "Split the sync into smaller batches"},
		{Code: "B", Severity: SeverityMedium, Recommendation: "Split the sync into smaller batches"},
		{Code: "C", Severity: SeverityMedium, Recommendation: ""},
	}

	recommendations := BuildRecommendations(nil, warnings)

	assert.Equal(t, []string{"Split the sync into smaller batches"}, recommendations)
}

func TestBuildRecommendations_Empty(t *testing.T) {
	assert.Empty(t, BuildRecommendations(nil, nil))
}
