package api

import (
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/roster"
	"alcyxob/coach-studio/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CoachHandler serves the coach's athlete roster.
type CoachHandler struct {
	rosterService service.RosterService
	logger        *zap.Logger
}

func NewCoachHandler(rosterService service.RosterService, logger *zap.Logger) *CoachHandler {
	return &CoachHandler{rosterService: rosterService, logger: logger}
}

// RosterResponse is the athletes page: the matching athletes plus counts over everyone.
type RosterResponse struct {
	Athletes []domain.AthleteRosterEntry `json:"athletes"`
	Summary  roster.Overview             `json:"summary"`
}

// ListAthletes godoc
// @Summary List the coach's athletes
// @Description Filters by name/email search and status, then sorts. Without a sort key the roster order is kept.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive text in name or email"
// @Param status query string false "Athlete status" Enums(all, active, trial, inactive)
// @Param sort query string false "Sort key" Enums(name, joinedDate, completionRate, lastActivity)
// @Success 200 {object} RosterResponse
// @Failure 400 {object} gin.H "Unknown sort key"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (not a coach)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /coach/athletes [get]
func (h *CoachHandler) ListAthletes(c *gin.Context) {
	sortBy := roster.SortKey(c.Query("sort"))
	if sortBy != "" && !sortBy.Valid() {
		abortWithError(c, http.StatusBadRequest, "sort must be one of name, joinedDate, completionRate, lastActivity")
		return
	}
	q := roster.Query{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", roster.StatusAll),
	}
	page, err := h.rosterService.ListAthletes(c.Request.Context(), q, sortBy)
	if err != nil {
		h.logger.Error("Listing athletes failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve athletes.")
		return
	}

	athletes := page.Athletes
	if athletes == nil {
		athletes = []domain.AthleteRosterEntry{} // Return empty JSON array, not null
	}
	c.JSON(http.StatusOK, RosterResponse{Athletes: athletes, Summary: page.Summary})
}

// GetAthlete godoc
// @Summary Get one athlete from the roster
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param athleteId path string true "Athlete ID"
// @Success 200 {object} domain.AthleteRosterEntry
// @Failure 404 {object} gin.H "Athlete not found"
// @Router /coach/athletes/{athleteId} [get]
func (h *CoachHandler) GetAthlete(c *gin.Context) {
	athleteID := c.Param("athleteId")
	athlete, err := h.rosterService.GetAthlete(c.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			h.logger.Error("Loading athlete failed", zap.String("athleteId", athleteID), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve athlete.")
		}
		return
	}
	c.JSON(http.StatusOK, athlete)
}
