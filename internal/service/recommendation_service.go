package service

import (
	"context"
	"errors"

	"alcyxob/fitness-ai/internal/domain"
	"alcyxob/fitness-ai/internal/repository"

	"github.com/rs/zerolog/log"
)

// --- Error Definitions ---
var (
	ErrRecommendationNotFound   = errors.New("recommendation not found")
	ErrRecommendationExists     = errors.New("recommendation already exists for this activity")
	ErrActivityValidationFailed = errors.New("activity requires id, userId, and type")
)

// RecommendationService owns the lifecycle of recommendations: generating one
// for an incoming activity and serving the stored results.
type RecommendationService interface {
	GenerateForActivity(ctx context.Context, activity domain.Activity) (*domain.Recommendation, error)
	GetUserRecommendations(ctx context.Context, userID string) ([]domain.Recommendation, error)
	GetActivityRecommendation(ctx context.Context, activityID string) (*domain.Recommendation, error)
}

// recommendationService implements the RecommendationService interface.
type recommendationService struct {
	aiService          ActivityAIService
	recommendationRepo repository.RecommendationRepository
}

// NewRecommendationService creates a new instance of recommendationService.
func NewRecommendationService(aiService ActivityAIService, recommendationRepo repository.RecommendationRepository) RecommendationService {
	return &recommendationService{
		aiService:          aiService,
		recommendationRepo: recommendationRepo,
	}
}

// GenerateForActivity runs the AI pipeline for an activity and persists the
// resulting recommendation.
func (s *recommendationService) GenerateForActivity(ctx context.Context, activity domain.Activity) (*domain.Recommendation, error) {
	if activity.ID == "" || activity.UserID == "" || activity.Type == "" {
		return nil, ErrActivityValidationFailed
	}

	rec, err := s.aiService.GenerateRecommendation(ctx, activity)
	if err != nil {
		return nil, err
	}

	recID, err := s.recommendationRepo.Create(ctx, rec)
	if err != nil {
		// The unique activityId index rejects a repeat generation.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrRecommendationExists
		}
		return nil, err
	}
	rec.ID = recID

	log.Info().
		Str("activityId", activity.ID).
		Str("userId", activity.UserID).
		Str("recommendationId", recID.Hex()).
		Msg("recommendation generated")

	return rec, nil
}

// GetUserRecommendations retrieves all recommendations for a user.
func (s *recommendationService) GetUserRecommendations(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}
	return s.recommendationRepo.GetByUserID(ctx, userID)
}

// GetActivityRecommendation retrieves the recommendation for one activity.
func (s *recommendationService) GetActivityRecommendation(ctx context.Context, activityID string) (*domain.Recommendation, error) {
	if activityID == "" {
		return nil, errors.New("activity ID cannot be empty")
	}
	rec, err := s.recommendationRepo.GetByActivityID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}
	return rec, nil
}
