package api

import (
	"net/http"

	"alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	recommendationService service.RecommendationService,
	userService service.UserService,
) {
	recommendationHandler := NewRecommendationHandler(recommendationService)
	userHandler := NewUserHandler(userService)

	router.Use(RequestIDMiddleware(), RequestLogMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		userGroup := apiV1.Group("/users")
		{
			userGroup.POST("/register", userHandler.Register)
			userGroup.GET("/:userId", userHandler.GetUserProfile)
			userGroup.GET("/:userId/validate", userHandler.ValidateUser)
		}

		recommendationGroup := apiV1.Group("/recommendations")
		{
			// Generation is triggered by the activity service once an
			// activity is recorded.
			recommendationGroup.POST("/generate", recommendationHandler.GenerateRecommendation)
			recommendationGroup.GET("/user/:userId", recommendationHandler.GetUserRecommendations)
			recommendationGroup.GET("/activity/:activityId", recommendationHandler.GetActivityRecommendation)
		}
	}
}
