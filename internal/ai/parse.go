package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnparsablePayload marks a candidate payload that is not valid JSON at the
// top level. Like ErrInvalidEnvelope it routes to the default recommendation.
var ErrUnparsablePayload = errors.New("unparsable ai analysis payload")

// Fallback sentences used when a list section is absent, malformed or empty.
const (
	NoImprovements = "No improvements provided."
	NoSuggestions  = "No workout suggestions provided."
	NoSafety       = "No safety guidelines provided."
)

// ParsedAnalysis is the structured result of one parse pass. Narrative may be
// empty (no analysis sections present); the three lists are never empty.
type ParsedAnalysis struct {
	Narrative    string
	Improvements []string
	Suggestions  []string
	Safety       []string
}

// analysisPayload defers every section to a raw message so that one malformed
// section degrades to its fallback instead of failing the whole document.
type analysisPayload struct {
	Analysis     json.RawMessage `json:"analysis"`
	Improvements json.RawMessage `json:"improvements"`
	Suggestions  json.RawMessage `json:"suggestions"`
	Safety       json.RawMessage `json:"safety"`
}

type analysisSections struct {
	Overall        *string `json:"overall"`
	Pace           *string `json:"pace"`
	HeartRate      *string `json:"heartRate"`
	CaloriesBurned *string `json:"caloriesBurned"`
}

type improvementEntry struct {
	Area           string `json:"area"`
	Recommendation string `json:"recommendation"`
}

type suggestionEntry struct {
	Workout     string `json:"workout"`
	Description string `json:"description"`
}

// ParseAnalysis parses a normalized candidate payload into the four structured
// field groups. Only a top-level JSON failure is an error; every field-level
// absence degrades to the documented defaults.
func ParseAnalysis(cleaned string) (*ParsedAnalysis, error) {
	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsablePayload, err)
	}

	return &ParsedAnalysis{
		Narrative: buildNarrative(payload.Analysis),
		Improvements: extractList(payload.Improvements, NoImprovements,
			func(e improvementEntry) string {
				return fmt.Sprintf("%s: %s", e.Area, e.Recommendation)
			}),
		Suggestions: extractList(payload.Suggestions, NoSuggestions,
			func(e suggestionEntry) string {
				return fmt.Sprintf("%s: %s", e.Workout, e.Description)
			}),
		Safety: extractList(payload.Safety, NoSafety,
			func(s string) string { return s }),
	}, nil
}

// buildNarrative concatenates the present analysis sections in fixed order,
// each prefixed with its label and followed by a blank line. Absent sections
// are skipped, not replaced by placeholder text.
func buildNarrative(raw json.RawMessage) string {
	var sections analysisSections
	if len(raw) > 0 {
		// A malformed analysis object degrades to whatever fields decoded.
		_ = json.Unmarshal(raw, &sections)
	}

	var b strings.Builder
	appendSection(&b, "Overall: ", sections.Overall)
	appendSection(&b, "Pace: ", sections.Pace)
	appendSection(&b, "Heart Rate: ", sections.HeartRate)
	appendSection(&b, "Calories Burned: ", sections.CaloriesBurned)
	return strings.TrimSpace(b.String())
}

func appendSection(b *strings.Builder, label string, text *string) {
	if text == nil {
		return
	}
	b.WriteString(label)
	b.WriteString(*text)
	b.WriteString("\n\n")
}

// extractList decodes a raw list section and formats each element. If the
// section is absent, not an array, or yields zero elements, the single-element
// fallback list is returned instead — result lists are never empty.
func extractList[T any](raw json.RawMessage, fallback string, format func(T) string) []string {
	var items []T
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, format(item))
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}
