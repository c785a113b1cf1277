package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/fitness-ai/internal/domain"
	"alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler holds the recommendation service dependency.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// --- DTOs for API (Data Transfer Objects) ---

// GenerateRecommendationRequest is the activity payload submitted for analysis.
type GenerateRecommendationRequest struct {
	ActivityID        string                 `json:"activityId" binding:"required"`
	UserID            string                 `json:"userId" binding:"required"`
	Type              domain.ActivityType    `json:"type" binding:"required"`
	Duration          int                    `json:"duration" binding:"gte=0"`
	CaloriesBurned    int                    `json:"caloriesBurned" binding:"gte=0"`
	AdditionalMetrics map[string]interface{} `json:"additionalMetrics"`
}

// RecommendationResponse is the DTO for returning recommendation details.
type RecommendationResponse struct {
	ID             string              `json:"id"`
	ActivityID     string              `json:"activityId"`
	UserID         string              `json:"userId"`
	ActivityType   domain.ActivityType `json:"activityType"`
	Recommendation string              `json:"recommendation"`
	Improvements   []string            `json:"improvements"`
	Suggestions    []string            `json:"suggestions"`
	Safety         []string            `json:"safety"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// MapRecommendationToResponse converts a domain.Recommendation to its DTO.
func MapRecommendationToResponse(rec *domain.Recommendation) RecommendationResponse {
	if rec == nil {
		return RecommendationResponse{}
	}
	return RecommendationResponse{
		ID:             rec.ID.Hex(),
		ActivityID:     rec.ActivityID,
		UserID:         rec.UserID,
		ActivityType:   rec.ActivityType,
		Recommendation: rec.Recommendation,
		Improvements:   rec.Improvements,
		Suggestions:    rec.Suggestions,
		Safety:         rec.Safety,
		CreatedAt:      rec.CreatedAt,
	}
}

// MapRecommendationsToResponse converts a slice of recommendations to DTOs.
func MapRecommendationsToResponse(recs []domain.Recommendation) []RecommendationResponse {
	responses := make([]RecommendationResponse, len(recs))
	for i, rec := range recs {
		responses[i] = MapRecommendationToResponse(&rec)
	}
	return responses
}

// --- Handler Methods ---

// GenerateRecommendation runs the AI pipeline for a submitted activity and
// persists the result.
// POST /api/v1/recommendations/generate
func (h *RecommendationHandler) GenerateRecommendation(c *gin.Context) {
	var req GenerateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	activity := domain.Activity{
		ID:                req.ActivityID,
		UserID:            req.UserID,
		Type:              req.Type,
		Duration:          req.Duration,
		CaloriesBurned:    req.CaloriesBurned,
		AdditionalMetrics: req.AdditionalMetrics,
	}

	rec, err := h.recommendationService.GenerateForActivity(c.Request.Context(), activity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRecommendationExists):
			abortWithError(c, http.StatusConflict, "A recommendation already exists for this activity.")
		default:
			abortWithError(c, http.StatusBadGateway, "Failed to generate recommendation.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapRecommendationToResponse(rec))
}

// GetUserRecommendations returns all recommendations for a user.
// GET /api/v1/recommendations/user/:userId
func (h *RecommendationHandler) GetUserRecommendations(c *gin.Context) {
	userID := c.Param("userId")

	recs, err := h.recommendationService.GetUserRecommendations(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve recommendations.")
		return
	}

	c.JSON(http.StatusOK, MapRecommendationsToResponse(recs))
}

// GetActivityRecommendation returns the recommendation for one activity.
// GET /api/v1/recommendations/activity/:activityId
func (h *RecommendationHandler) GetActivityRecommendation(c *gin.Context) {
	activityID := c.Param("activityId")

	rec, err := h.recommendationService.GetActivityRecommendation(c.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			abortWithError(c, http.StatusNotFound, "No recommendation found for this activity.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve recommendation.")
		}
		return
	}

	c.JSON(http.StatusOK, MapRecommendationToResponse(rec))
}
