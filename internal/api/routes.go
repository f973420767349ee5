package api

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services are what the HTTP layer calls into.
type Services struct {
	Auth    service.AuthService
	Catalog service.CatalogService
	Roster  service.RosterService
	Builder service.BuilderService
	Review  service.ReviewService
	Plans   service.PlanService
	Message service.MessageService
}

func SetupRoutes(router *gin.Engine, services Services, logger *zap.Logger) {
	authHandler := NewAuthHandler(services.Auth, logger)
	exerciseHandler := NewExerciseHandler(services.Catalog, logger)
	coachHandler := NewCoachHandler(services.Roster, logger)
	builderHandler := NewBuilderHandler(services.Builder, logger)
	reviewHandler := NewReviewHandler(services.Review, logger)
	planHandler := NewPlanHandler(services.Plans, logger)
	messageHandler := NewMessageHandler(services.Message, logger)

	authMiddleware := AuthMiddleware(services.Auth)
	coachOnly := RoleMiddleware(domain.RoleCoach)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/signin", authHandler.SignIn)
			authGroup.POST("/signout", authMiddleware, authHandler.SignOut)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.PATCH("/me", authHandler.UpdateMe)

		// --- Exercise library ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/muscle-groups", exerciseHandler.GetMuscleGroups)
			exerciseGroup.GET("/types", exerciseHandler.GetTypes)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			// Only coaches grow the library
			exerciseGroup.POST("", coachOnly, exerciseHandler.CreateExercise)
		}
		protected.GET("/templates", exerciseHandler.ListTemplates)

		// Both sides of a review can comment on it.
		protected.POST("/workouts/:workoutId/comments", reviewHandler.AddComment)

		// --- Coach Specific Routes ---
		coachGroup := protected.Group("/coach")
		coachGroup.Use(coachOnly)
		{
			coachGroup.GET("/athletes", coachHandler.ListAthletes)
			coachGroup.GET("/athletes/:athleteId", coachHandler.GetAthlete)
			coachGroup.GET("/athletes/:athleteId/workouts", reviewHandler.ListAthleteWorkouts)
			coachGroup.GET("/workouts", planHandler.ListWorkouts)
			coachGroup.GET("/workouts/:workoutId/review", reviewHandler.GetWorkoutReview)

			coachGroup.GET("/messages", messageHandler.ListConversations)
			coachGroup.GET("/messages/:conversationId", messageHandler.GetConversation)
			coachGroup.POST("/messages/:conversationId", messageHandler.SendMessage)

			// --- Workout builder, one draft per session ---
			builderGroup := coachGroup.Group("/builder")
			{
				builderGroup.POST("", builderHandler.StartDraft)
				builderGroup.GET("", builderHandler.GetDraft)
				builderGroup.PATCH("", builderHandler.UpdateDraft)
				builderGroup.DELETE("", builderHandler.DiscardDraft)

				builderGroup.POST("/exercises", builderHandler.AddExercise)
				builderGroup.POST("/exercises/:exerciseId/sets", builderHandler.AddSet)
				builderGroup.POST("/templates/:templateId", builderHandler.ApplyTemplate)
				builderGroup.POST("/segments", builderHandler.AddSegment)
				builderGroup.POST("/segments/:segmentId/intervals", builderHandler.AddInterval)
				builderGroup.PATCH("/nodes/:nodeId", builderHandler.UpdateNode)
				builderGroup.DELETE("/nodes/:nodeId", builderHandler.RemoveNode)
				builderGroup.POST("/athletes/:athleteId/toggle", builderHandler.ToggleAthlete)
			}
		}
	}
}
