package ai

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidEnvelope marks a provider response whose outer structure cannot be
// navigated. It routes the pipeline to the default recommendation; it is never
// surfaced to API callers.
var ErrInvalidEnvelope = errors.New("invalid ai response envelope")

// envelope mirrors the generateContent response shape down to the candidate
// text. Candidates are pointers so a null first element is detectable.
type envelope struct {
	Candidates []*envelopeCandidate `json:"candidates"`
}

type envelopeCandidate struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
}

// ExtractCandidateText recovers candidates[0].content.parts[0].text from the
// raw provider response. A missing, empty or non-array candidates list is an
// error; a missing content/parts path is not — it yields an empty string, and
// the caller decides whether emptiness is fatal.
func ExtractCandidateText(raw string) (string, error) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if len(env.Candidates) == 0 {
		return "", fmt.Errorf("%w: missing candidates array", ErrInvalidEnvelope)
	}
	first := env.Candidates[0]
	if first == nil {
		return "", fmt.Errorf("%w: first candidate is null", ErrInvalidEnvelope)
	}
	if len(first.Content.Parts) == 0 {
		return "", nil
	}
	return first.Content.Parts[0].Text, nil
}
