package ai

import (
	"time"

	"alcyxob/fitness-ai/internal/domain"
)

const defaultNarrative = "No analysis available due to AI response failure."

// Synthesize assembles a Recommendation from parsed analysis fields. CreatedAt
// is stamped at synthesis time, not provider time.
func Synthesize(activity domain.Activity, parsed *ParsedAnalysis) *domain.Recommendation {
	return &domain.Recommendation{
		ActivityID:     activity.ID,
		UserID:         activity.UserID,
		ActivityType:   activity.Type,
		Recommendation: parsed.Narrative,
		Improvements:   parsed.Improvements,
		Suggestions:    parsed.Suggestions,
		Safety:         parsed.Safety,
		CreatedAt:      time.Now().UTC(),
	}
}

// DefaultRecommendation manufactures the safe recommendation used whenever any
// upstream stage fails. It never itself fails; every pipeline failure collapses
// to this one terminal value.
func DefaultRecommendation(activity domain.Activity) *domain.Recommendation {
	return &domain.Recommendation{
		ActivityID:     activity.ID,
		UserID:         activity.UserID,
		ActivityType:   activity.Type,
		Recommendation: defaultNarrative,
		Improvements:   []string{NoImprovements},
		Suggestions:    []string{NoSuggestions},
		Safety: []string{
			"Always warm up before exercise.",
			"Stay hydrated.",
			"Listen to your body.",
		},
		CreatedAt: time.Now().UTC(),
	}
}
