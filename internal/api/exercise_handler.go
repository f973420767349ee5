package api

import (
	"alcyxob/coach-studio/internal/catalog"
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExerciseHandler serves the exercise library and workout templates.
type ExerciseHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(catalogService service.CatalogService, logger *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{catalogService: catalogService, logger: logger}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for adding a custom exercise.
type CreateExerciseRequest struct {
	Name         string              `json:"name" binding:"required"`
	Type         domain.ExerciseType `json:"type" binding:"required,oneof=strength cardio flexibility other"`
	MuscleGroups []string            `json:"muscleGroups"` // e.g. ["chest", "triceps"]
	Instructions string              `json:"instructions"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Type         domain.ExerciseType `json:"type"`
	MuscleGroups []string            `json:"muscleGroups"`
	Instructions string              `json:"instructions,omitempty"`
	Description  string              `json:"description,omitempty"`
}

type TemplateExerciseResponse struct {
	ExerciseID string `json:"exerciseId"`
	Sets       int    `json:"sets"`
	Reps       *int   `json:"reps,omitempty"`
	Duration   *int   `json:"duration,omitempty"` // Seconds
	Rest       int    `json:"rest"`               // Seconds
}

type TemplateResponse struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Category    domain.ExerciseType        `json:"category"`
	Exercises   []TemplateExerciseResponse `json:"exercises"`
}

// ListExercises godoc
// @Summary Browse the exercise library
// @Description All filters are optional and combine with AND. Search matches the name or any muscle group.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param search query string false "Text to look for"
// @Param type query string false "Exercise type" Enums(strength, cardio, flexibility, other)
// @Param muscleGroup query string false "Exact muscle group"
// @Success 200 {array} ExerciseResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	filter := catalog.Filter{
		Type:        domain.ExerciseType(c.Query("type")),
		MuscleGroup: c.Query("muscleGroup"),
		Search:      c.Query("search"),
	}
	exercises, err := h.catalogService.ListExercises(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Listing exercises failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise godoc
// @Summary Get one library exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.catalogService.GetExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCatalogExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			h.logger.Error("Loading exercise failed", zap.String("exerciseId", c.Param("id")), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise")
		}
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// CreateExercise godoc
// @Summary Add a custom exercise to the library
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Forbidden (not a coach)"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.CreateCustomExercise(c.Request.Context(), service.CustomExerciseInput{
		Name:         req.Name,
		Type:         req.Type,
		MuscleGroups: req.MuscleGroups,
		Instructions: req.Instructions,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			h.logger.Error("Creating exercise failed", zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		}
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// GetMuscleGroups godoc
// @Summary Muscle groups present in the library, sorted
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /exercises/muscle-groups [get]
func (h *ExerciseHandler) GetMuscleGroups(c *gin.Context) {
	groups, err := h.catalogService.MuscleGroups(c.Request.Context())
	if err != nil {
		h.logger.Error("Listing muscle groups failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve muscle groups")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetTypes godoc
// @Summary Exercise types present in the library, sorted
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /exercises/types [get]
func (h *ExerciseHandler) GetTypes(c *gin.Context) {
	types, err := h.catalogService.Types(c.Request.Context())
	if err != nil {
		h.logger.Error("Listing exercise types failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// ListTemplates godoc
// @Summary Ready-made workout templates
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TemplateResponse
// @Router /templates [get]
func (h *ExerciseHandler) ListTemplates(c *gin.Context) {
	templates, err := h.catalogService.ListTemplates(c.Request.Context())
	if err != nil {
		h.logger.Error("Listing templates failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve templates")
		return
	}
	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = MapTemplateToResponse(&templates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// MapExerciseToResponse converts a domain.CatalogExercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.CatalogExercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	groups := ex.MuscleGroups
	if groups == nil {
		groups = []string{}
	}
	return ExerciseResponse{
		ID:           ex.ID,
		Name:         ex.Name,
		Type:         ex.Type,
		MuscleGroups: groups,
		Instructions: ex.Instructions,
		Description:  ex.Description,
	}
}

// MapExercisesToResponse converts a slice of domain.CatalogExercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.CatalogExercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

func MapTemplateToResponse(t *domain.WorkoutTemplate) TemplateResponse {
	lines := make([]TemplateExerciseResponse, len(t.Exercises))
	for i, line := range t.Exercises {
		lines[i] = TemplateExerciseResponse{
			ExerciseID: line.ExerciseID,
			Sets:       line.Sets,
			Reps:       line.Reps,
			Duration:   line.Duration,
			Rest:       line.Rest,
		}
	}
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Exercises:   lines,
	}
}
