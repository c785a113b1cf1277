package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPayload = `{
  "analysis": {
    "overall": "Strong session.",
    "pace": "Steady 6:00/km.",
    "heartRate": "Mostly zone 3.",
    "caloriesBurned": "Good burn for the duration."
  },
  "improvements": [
    {"area": "Cadence", "recommendation": "Aim for 175 spm."},
    {"area": "Breathing", "recommendation": "Try rhythmic breathing."}
  ],
  "suggestions": [
    {"workout": "Interval run", "description": "6x400m at 5k pace."}
  ],
  "safety": ["Warm up first.", "Cool down after."]
}`

func TestParseAnalysisFullPayload(t *testing.T) {
	parsed, err := ParseAnalysis(fullPayload)
	require.NoError(t, err)

	assert.Equal(t,
		"Overall: Strong session.\n\n"+
			"Pace: Steady 6:00/km.\n\n"+
			"Heart Rate: Mostly zone 3.\n\n"+
			"Calories Burned: Good burn for the duration.",
		parsed.Narrative)

	assert.Equal(t, []string{
		"Cadence: Aim for 175 spm.",
		"Breathing: Try rhythmic breathing.",
	}, parsed.Improvements)
	assert.Equal(t, []string{"Interval run: 6x400m at 5k pace."}, parsed.Suggestions)
	assert.Equal(t, []string{"Warm up first.", "Cool down after."}, parsed.Safety)
}

func TestParseAnalysisMalformedJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"truncated", `{"analysis": {"overall": "cut off`},
		{"array root", `[1,2,3]`},
		{"plain text", `Sorry, I cannot help with that.`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAnalysis(tc.payload)
			require.ErrorIs(t, err, ErrUnparsablePayload)
		})
	}
}

func TestParseAnalysisAbsentSectionsAreSkipped(t *testing.T) {
	parsed, err := ParseAnalysis(`{"analysis":{"pace":"Even splits."}}`)
	require.NoError(t, err)

	// No placeholder text for absent keys, no trailing separator.
	assert.Equal(t, "Pace: Even splits.", parsed.Narrative)
}

func TestParseAnalysisSectionOrderIsFixed(t *testing.T) {
	// Key order in the document does not matter.
	parsed, err := ParseAnalysis(`{"analysis":{"caloriesBurned":"High.","overall":"Good."}}`)
	require.NoError(t, err)

	assert.Equal(t, "Overall: Good.\n\nCalories Burned: High.", parsed.Narrative)
}

func TestParseAnalysisListFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"all sections absent", `{}`},
		{"empty arrays", `{"improvements":[],"suggestions":[],"safety":[]}`},
		{"wrong types", `{"improvements":"none","suggestions":42,"safety":{}}`},
		{"null sections", `{"improvements":null,"suggestions":null,"safety":null}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseAnalysis(tc.payload)
			require.NoError(t, err)

			assert.Equal(t, []string{NoImprovements}, parsed.Improvements)
			assert.Equal(t, []string{NoSuggestions}, parsed.Suggestions)
			assert.Equal(t, []string{NoSafety}, parsed.Safety)
		})
	}
}

func TestParseAnalysisImprovementFieldDefaults(t *testing.T) {
	parsed, err := ParseAnalysis(`{"improvements":[{"area":"Pacing"},{"recommendation":"Slow down early."}]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Pacing: ",
		": Slow down early.",
	}, parsed.Improvements)
}

func TestParseAnalysisImprovementReadsRecommendationKey(t *testing.T) {
	// Improvements use "recommendation", not "description"; the analogous
	// suggestion key must not leak into this shape.
	parsed, err := ParseAnalysis(`{"improvements":[{"area":"Form","description":"ignored"}]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Form: "}, parsed.Improvements)
}

func TestParseAnalysisSuggestionFieldDefaults(t *testing.T) {
	parsed, err := ParseAnalysis(`{"suggestions":[{"workout":"Tempo run"}]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tempo run: "}, parsed.Suggestions)
}

func TestParseAnalysisSafetyOnly(t *testing.T) {
	parsed, err := ParseAnalysis(`{"safety":["Stretch after running"]}`)
	require.NoError(t, err)

	assert.Empty(t, parsed.Narrative)
	assert.Equal(t, []string{NoImprovements}, parsed.Improvements)
	assert.Equal(t, []string{NoSuggestions}, parsed.Suggestions)
	assert.Equal(t, []string{"Stretch after running"}, parsed.Safety)
}

func TestParseAnalysisEmptySectionValueIsStillPresent(t *testing.T) {
	parsed, err := ParseAnalysis(`{"analysis":{"overall":""}}`)
	require.NoError(t, err)

	// Present key with empty text keeps its label.
	assert.Equal(t, "Overall:", parsed.Narrative)
}
