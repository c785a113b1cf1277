package service

import (
	"context"

	"alcyxob/fitness-ai/internal/ai"
	"alcyxob/fitness-ai/internal/domain"

	"github.com/rs/zerolog/log"
)

// ActivityAIService turns a recorded activity into a structured recommendation
// by prompting the AI backend and normalizing whatever comes back.
type ActivityAIService interface {
	GenerateRecommendation(ctx context.Context, activity domain.Activity) (*domain.Recommendation, error)
}

// activityAIService implements ActivityAIService. It is stateless apart from
// the injected provider, so concurrent calls for different activities are
// independent.
type activityAIService struct {
	provider ai.AnswerProvider
}

// NewActivityAIService creates a new instance of activityAIService.
func NewActivityAIService(provider ai.AnswerProvider) ActivityAIService {
	return &activityAIService{provider: provider}
}

// GenerateRecommendation runs the full pipeline: prompt, AI call, envelope
// extraction, payload normalization, parsing, synthesis. Every failure past
// the AI call degrades to the default recommendation instead of erroring; only
// a provider transport failure propagates, since without a response there is
// nothing to analyze.
func (s *activityAIService) GenerateRecommendation(ctx context.Context, activity domain.Activity) (*domain.Recommendation, error) {
	prompt := ai.BuildActivityPrompt(activity)

	raw, err := s.provider.Answer(ctx, prompt)
	if err != nil {
		return nil, err
	}

	text, err := ai.ExtractCandidateText(raw)
	if err != nil {
		log.Error().Err(err).Str("activityId", activity.ID).Msg("invalid AI response envelope")
		return ai.DefaultRecommendation(activity), nil
	}
	if text == "" {
		log.Error().Str("activityId", activity.ID).Msg("AI response candidate text is empty")
		return ai.DefaultRecommendation(activity), nil
	}

	cleaned := ai.NormalizePayload(text)

	parsed, err := ai.ParseAnalysis(cleaned)
	if err != nil {
		log.Error().Err(err).Str("activityId", activity.ID).Msg("failed to parse AI analysis payload")
		return ai.DefaultRecommendation(activity), nil
	}

	return ai.Synthesize(activity, parsed), nil
}
