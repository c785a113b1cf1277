package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alcyxob/fitness-ai/internal/domain"
	"alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubRecommendationService implements service.RecommendationService.
type stubRecommendationService struct {
	rec    *domain.Recommendation
	byUser []domain.Recommendation
	err    error
}

func (s *stubRecommendationService) GenerateForActivity(_ context.Context, _ domain.Activity) (*domain.Recommendation, error) {
	return s.rec, s.err
}

func (s *stubRecommendationService) GetUserRecommendations(_ context.Context, _ string) ([]domain.Recommendation, error) {
	return s.byUser, s.err
}

func (s *stubRecommendationService) GetActivityRecommendation(_ context.Context, _ string) (*domain.Recommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rec, nil
}

func newTestRouter(svc service.RecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewRecommendationHandler(svc)
	router.POST("/api/v1/recommendations/generate", handler.GenerateRecommendation)
	router.GET("/api/v1/recommendations/user/:userId", handler.GetUserRecommendations)
	router.GET("/api/v1/recommendations/activity/:activityId", handler.GetActivityRecommendation)
	return router
}

func TestGenerateRecommendationEndpoint(t *testing.T) {
	rec := &domain.Recommendation{
		ID:             primitive.NewObjectID(),
		ActivityID:     "act-1",
		UserID:         "user-1",
		ActivityType:   domain.ActivityRunning,
		Recommendation: "Overall: Good.",
		Improvements:   []string{"Pacing: Even out."},
		Suggestions:    []string{"Recovery run: Easy pace."},
		Safety:         []string{"Hydrate."},
	}
	router := newTestRouter(&stubRecommendationService{rec: rec})

	body := `{"activityId":"act-1","userId":"user-1","type":"RUNNING","duration":30,"caloriesBurned":300}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "act-1", resp.ActivityID)
	assert.Equal(t, []string{"Pacing: Even out."}, resp.Improvements)
}

func TestGenerateRecommendationEndpointValidation(t *testing.T) {
	router := newTestRouter(&stubRecommendationService{})

	// userId missing
	body := `{"activityId":"act-1","type":"RUNNING"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRecommendationEndpointRepeatActivityConflicts(t *testing.T) {
	router := newTestRouter(&stubRecommendationService{err: service.ErrRecommendationExists})

	body := `{"activityId":"act-1","userId":"user-1","type":"RUNNING","duration":30,"caloriesBurned":300}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUserRecommendationsEndpoint(t *testing.T) {
	router := newTestRouter(&stubRecommendationService{byUser: []domain.Recommendation{
		{ActivityID: "act-1", UserID: "user-1"},
		{ActivityID: "act-2", UserID: "user-1"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/user/user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetActivityRecommendationNotFound(t *testing.T) {
	router := newTestRouter(&stubRecommendationService{err: service.ErrRecommendationNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/activity/act-404", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
