package api

import (
	"alcyxob/coach-studio/internal/plans"
	"alcyxob/coach-studio/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanHandler serves the coach's workout list.
type PlanHandler struct {
	planService service.PlanService
	logger      *zap.Logger
}

func NewPlanHandler(planService service.PlanService, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{planService: planService, logger: logger}
}

// ListWorkouts godoc
// @Summary List the coach's workouts
// @Description Filters by name/description search, status and type. Counts cover every workout.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive text in name or description"
// @Param status query string false "Workout status" Enums(all, draft, assigned, completed)
// @Param type query string false "Workout type, e.g. strength"
// @Success 200 {object} service.WorkoutList
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /coach/workouts [get]
func (h *PlanHandler) ListWorkouts(c *gin.Context) {
	q := plans.Query{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", plans.All),
		Type:   c.DefaultQuery("type", plans.All),
	}
	list, err := h.planService.ListWorkouts(c.Request.Context(), q)
	if err != nil {
		h.logger.Error("Listing workouts failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	// Drafts have nobody assigned yet; send [] rather than null
	for i := range list.Workouts {
		if list.Workouts[i].AssignedAthletes == nil {
			list.Workouts[i].AssignedAthletes = []string{}
		}
	}
	c.JSON(http.StatusOK, list)
}
