package api

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves completed workouts and their comment threads.
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *zap.Logger
}

func NewReviewHandler(reviewService service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, logger: logger}
}

// AddCommentRequest leaves SetID empty to comment on the workout as a whole.
type AddCommentRequest struct {
	SetID   string `json:"setId"`
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=general form question encouragement performance"`
}

// GetWorkoutReview godoc
// @Summary Review a completed workout
// @Description Returns the workout with set stats and temporary links to form videos.
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Completed workout ID"
// @Success 200 {object} service.WorkoutReview
// @Failure 404 {object} gin.H "Workout not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /coach/workouts/{workoutId}/review [get]
func (h *ReviewHandler) GetWorkoutReview(c *gin.Context) {
	workoutID := c.Param("workoutId")
	review, err := h.reviewService.GetReview(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			h.logger.Error("Loading review failed", zap.String("workoutId", workoutID), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout review.")
		}
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListAthleteWorkouts godoc
// @Summary Completed workouts of one athlete, newest first
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param athleteId path string true "Athlete ID"
// @Success 200 {array} domain.CompletedWorkout
// @Router /coach/athletes/{athleteId}/workouts [get]
func (h *ReviewHandler) ListAthleteWorkouts(c *gin.Context) {
	athleteID := c.Param("athleteId")
	workouts, err := h.reviewService.ListAthleteWorkouts(c.Request.Context(), athleteID)
	if err != nil {
		h.logger.Error("Listing workouts failed", zap.String("athleteId", athleteID), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	if workouts == nil {
		workouts = []domain.CompletedWorkout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// AddComment godoc
// @Summary Comment on a completed workout or one of its sets
// @Description Coaches and athletes can both comment; the author is taken from the session.
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Completed workout ID"
// @Param comment body AddCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Workout or set not found"
// @Router /workouts/{workoutId}/comments [post]
func (h *ReviewHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	author, err := getUserFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	workoutID := c.Param("workoutId")
	comment, err := h.reviewService.AddComment(c.Request.Context(), author, workoutID, req.SetID, req.Content, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWorkoutNotFound), errors.Is(err, service.ErrSetNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("Adding comment failed", zap.String("workoutId", workoutID), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to add comment.")
		}
		return
	}
	c.JSON(http.StatusCreated, comment)
}
