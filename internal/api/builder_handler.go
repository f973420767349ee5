package api

import (
	"alcyxob/coach-studio/internal/builder"
	"alcyxob/coach-studio/internal/domain"
	"alcyxob/coach-studio/internal/projection"
	"alcyxob/coach-studio/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuilderHandler exposes the session's workout draft.
type BuilderHandler struct {
	builderService service.BuilderService
	logger         *zap.Logger
}

func NewBuilderHandler(builderService service.BuilderService, logger *zap.Logger) *BuilderHandler {
	return &BuilderHandler{builderService: builderService, logger: logger}
}

// --- DTOs ---

type StartDraftRequest struct {
	Type domain.WorkoutType `json:"type" binding:"required,oneof=strength running"`
}

// UpdateDraftRequest changes the header fields that are sent. A scheduledDate that
// does not parse clears the date.
type UpdateDraftRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Notes         *string `json:"notes"`
	ScheduledDate *string `json:"scheduledDate"` // RFC 3339, "2006-01-02T15:04" or "2006-01-02"
}

type AddExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Warmup     bool   `json:"warmup"`
}

type AddSegmentRequest struct {
	Type domain.SegmentVariant `json:"type" binding:"required,oneof=warmup main interval recovery cooldown interval_group"`
}

type SetResponse struct {
	ID         string   `json:"id"`
	Reps       *int     `json:"reps,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	RestPeriod *float64 `json:"restPeriod,omitempty"` // Minutes
	Completed  *bool    `json:"completed,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

type StrengthExerciseResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	MuscleGroup string        `json:"muscleGroup"`
	Description string        `json:"description"`
	Sets        []SetResponse `json:"sets"`
}

type HeartRateResponse struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Zone string `json:"zone,omitempty"`
}

type IntervalResponse struct {
	ID        string                 `json:"id"`
	Type      domain.IntervalVariant `json:"type"`
	Name      string                 `json:"name"`
	Duration  *float64               `json:"duration,omitempty"`
	Distance  *float64               `json:"distance,omitempty"`
	Pace      *string                `json:"pace,omitempty"`
	Intensity *domain.Intensity      `json:"intensity,omitempty"`
}

// SegmentResponse is tagged by Type; Repetitions and Intervals only appear on interval groups.
type SegmentResponse struct {
	ID              string                `json:"id"`
	Type            domain.SegmentVariant `json:"type"`
	Name            string                `json:"name"`
	Duration        *float64              `json:"duration,omitempty"` // Minutes
	Distance        *float64              `json:"distance,omitempty"`
	Pace            *string               `json:"pace,omitempty"`
	TargetHeartRate *HeartRateResponse    `json:"targetHeartRate,omitempty"`
	Intensity       *domain.Intensity     `json:"intensity,omitempty"`
	Notes           *string               `json:"notes,omitempty"`
	Repetitions     *int                  `json:"repetitions,omitempty"`
	Intervals       []IntervalResponse    `json:"intervals,omitempty"`
}

// WorkoutResponse is tagged by Type. Strength workouts carry exercises, running workouts segments.
type WorkoutResponse struct {
	ID               string             `json:"id"`
	Type             domain.WorkoutType `json:"type"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	Notes            string             `json:"notes"`
	AssignedAthletes []string           `json:"assignedAthletes"`
	ScheduledDate    *time.Time         `json:"scheduledDate,omitempty"`

	Exercises       []StrengthExerciseResponse `json:"exercises,omitempty"`
	WarmupExercises []StrengthExerciseResponse `json:"warmupExercises,omitempty"`
	Segments        []SegmentResponse          `json:"segments,omitempty"`
}

// DraftResponse is what every builder call answers with.
type DraftResponse struct {
	Workout WorkoutResponse      `json:"workout"`
	View    projection.DraftView `json:"view"`
	NodeID  string               `json:"nodeId,omitempty"` // Id of the node the call created, if any
}

// --- Handler Methods ---

// StartDraft godoc
// @Summary Start a new workout draft
// @Description Replaces any draft the session already has.
// @Tags Builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body StartDraftRequest true "Workout type"
// @Success 201 {object} DraftResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /coach/builder [post]
func (h *BuilderHandler) StartDraft(c *gin.Context) {
	var req StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.builderService.Start(c.Request.Context(), sessionID, c.GetTime(ContextSessionExpiresKey), req.Type)
	h.respond(c, http.StatusCreated, d, "", err)
}

// GetDraft godoc
// @Summary Current workout draft
// @Tags Builder
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DraftResponse
// @Failure 404 {object} gin.H "No draft"
// @Router /coach/builder [get]
func (h *BuilderHandler) GetDraft(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.builderService.Current(c.Request.Context(), sessionID)
	h.respond(c, http.StatusOK, d, "", err)
}

// DiscardDraft godoc
// @Summary Throw the draft away
// @Tags Builder
// @Security BearerAuth
// @Success 204 "Discarded"
// @Router /coach/builder [delete]
func (h *BuilderHandler) DiscardDraft(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	h.builderService.Discard(c.Request.Context(), sessionID)
	c.Status(http.StatusNoContent)
}

// UpdateDraft godoc
// @Summary Edit the draft's name, description, notes or scheduled date
// @Tags Builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param fields body UpdateDraftRequest true "Fields to change"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} gin.H "No draft"
// @Router /coach/builder [patch]
func (h *BuilderHandler) UpdateDraft(c *gin.Context) {
	var req UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	sessionID, ok := h.session(c)
	if !ok {
		return
	}

	fields := make(map[builder.HeaderField]string)
	for f, v := range map[builder.HeaderField]*string{
		builder.FieldName:          req.Name,
		builder.FieldDescription:   req.Description,
		builder.FieldNotes:         req.Notes,
		builder.FieldScheduledDate: req.ScheduledDate,
	} {
		if v != nil {
			fields[f] = *v
		}
	}
	d, err := h.builderService.SetFields(c.Request.Context(), sessionID, fields)
	h.respond(c, http.StatusOK, d, "", err)
}

// AddExercise godoc
// @Summary Add a library exercise to a strength draft
// @Description The exercise starts with one default set.
// @Tags Builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body AddExerciseRequest true "Library exercise"
// @Success 201 {object} DraftResponse
// @Failure 404 {object} gin.H "No draft, or exercise not in library"
// @Failure 409 {object} gin.H "Draft is not a strength workout"
// @Router /coach/builder/exercises [post]
func (h *BuilderHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, id, err := h.builderService.AddExercise(c.Request.Context(), sessionID, req.ExerciseID, req.Warmup)
	h.respond(c, http.StatusCreated, d, id, err)
}

// ApplyTemplate godoc
// @Summary Append a template's exercises to a strength draft
// @Tags Builder
// @Produce json
// @Security BearerAuth
// @Param templateId path string true "Template ID"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} gin.H "No draft, or template not found"
// @Router /coach/builder/templates/{templateId} [post]
func (h *BuilderHandler) ApplyTemplate(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.builderService.ApplyTemplate(c.Request.Context(), sessionID, c.Param("templateId"))
	h.respond(c, http.StatusOK, d, "", err)
}

// AddSet godoc
// @Summary Add a default set to an exercise
// @Description An unknown exercise id leaves the draft unchanged.
// @Tags Builder
// @Produce json
// @Security BearerAuth
// @Param exerciseId path string true "Exercise node ID"
// @Success 201 {object} DraftResponse
// @Router /coach/builder/exercises/{exerciseId}/sets [post]
func (h *BuilderHandler) AddSet(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, id, err := h.builderService.AddSet(c.Request.Context(), sessionID, c.Param("exerciseId"))
	h.respond(c, http.StatusCreated, d, id, err)
}

// AddSegment godoc
// @Summary Add a segment to a running draft
// @Tags Builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param segment body AddSegmentRequest true "Segment type"
// @Success 201 {object} DraftResponse
// @Failure 409 {object} gin.H "Draft is not a running workout"
// @Router /coach/builder/segments [post]
func (h *BuilderHandler) AddSegment(c *gin.Context) {
	var req AddSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, id, err := h.builderService.AddSegment(c.Request.Context(), sessionID, req.Type)
	h.respond(c, http.StatusCreated, d, id, err)
}

// AddInterval godoc
// @Summary Add a work interval to an interval group
// @Description Any other segment id leaves the draft unchanged.
// @Tags Builder
// @Produce json
// @Security BearerAuth
// @Param segmentId path string true "Interval group ID"
// @Success 201 {object} DraftResponse
// @Router /coach/builder/segments/{segmentId}/intervals [post]
func (h *BuilderHandler) AddInterval(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, id, err := h.builderService.AddInterval(c.Request.Context(), sessionID, c.Param("segmentId"))
	h.respond(c, http.StatusCreated, d, id, err)
}

// UpdateNode godoc
// @Summary Edit an exercise, set, segment or interval
// @Description Only the sent fields change. null clears a field, as does numeric text that does not parse.
// @Tags Builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param nodeId path string true "Node ID"
// @Param patch body NodePatchRequest true "Kind and fields"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} gin.H "Unknown field or kind"
// @Router /coach/builder/nodes/{nodeId} [patch]
func (h *BuilderHandler) UpdateNode(c *gin.Context) {
	var req NodePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	patch, err := parseNodePatch(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.builderService.UpdateNode(c.Request.Context(), sessionID, c.Param("nodeId"), patch)
	h.respond(c, http.StatusOK, d, "", err)
}

// RemoveNode godoc
// @Summary Remove a node and everything under it
// @Tags Builder
// @Produce json
// @Security BearerAuth
// @Param nodeId path string true "Node ID"
// @Success 200 {object} DraftResponse
// @Router /coach/builder/nodes/{nodeId} [delete]
func (h *BuilderHandler) RemoveNode(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.builderService.RemoveNode(c.Request.Context(), sessionID, c.Param("nodeId"))
	h.respond(c, http.StatusOK, d, "", err)
}

// ToggleAthlete godoc
// @Summary Assign the draft to an athlete, or unassign it
// @Tags Builder
// @Produce json
// @Security BearerAuth
// @Param athleteId path string true "Athlete ID"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} gin.H "No draft, or athlete not on roster"
// @Router /coach/builder/athletes/{athleteId}/toggle [post]
func (h *BuilderHandler) ToggleAthlete(c *gin.Context) {
	sessionID, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.builderService.ToggleAthlete(c.Request.Context(), sessionID, c.Param("athleteId"))
	h.respond(c, http.StatusOK, d, "", err)
}

func (h *BuilderHandler) session(c *gin.Context) (string, bool) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return "", false
	}
	return sessionID, true
}

func (h *BuilderHandler) respond(c *gin.Context, code int, d *service.Draft, nodeID string, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoDraft),
			errors.Is(err, service.ErrCatalogExerciseNotFound),
			errors.Is(err, service.ErrTemplateNotFound),
			errors.Is(err, service.ErrAthleteNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidWorkoutType), errors.Is(err, service.ErrInvalidSegmentType):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrWrongWorkoutType):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			h.logger.Error("Builder operation failed", zap.String("path", c.FullPath()), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Builder operation failed")
		}
		return
	}
	c.JSON(code, DraftResponse{
		Workout: MapWorkoutToResponse(d.Workout),
		View:    d.View,
		NodeID:  nodeID,
	})
}

// MapWorkoutToResponse flattens a workout aggregate into its tagged JSON form.
func MapWorkoutToResponse(w domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	head := w.Head()
	resp := WorkoutResponse{
		ID:               head.ID,
		Type:             w.Type(),
		Name:             head.Name,
		Description:      head.Description,
		Notes:            head.Notes,
		AssignedAthletes: append([]string{}, head.AssignedAthletes...),
		ScheduledDate:    head.ScheduledDate,
	}
	switch t := w.(type) {
	case domain.StrengthWorkout:
		resp.Exercises = mapStrengthExercises(t.Exercises)
		resp.WarmupExercises = mapStrengthExercises(t.WarmupExercises)
	case domain.RunningWorkout:
		resp.Segments = make([]SegmentResponse, len(t.Segments))
		for i, s := range t.Segments {
			resp.Segments[i] = MapSegmentToResponse(s)
		}
	}
	return resp
}

func mapStrengthExercises(exercises []domain.StrengthExercise) []StrengthExerciseResponse {
	out := make([]StrengthExerciseResponse, len(exercises))
	for i, ex := range exercises {
		sets := make([]SetResponse, len(ex.Sets))
		for k, s := range ex.Sets {
			sets[k] = SetResponse{
				ID:         s.ID,
				Reps:       s.Reps,
				Weight:     s.Weight,
				RestPeriod: s.RestPeriod,
				Completed:  s.Completed,
				Notes:      s.Notes,
			}
		}
		out[i] = StrengthExerciseResponse{
			ID:          ex.ID,
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Description: ex.Description,
			Sets:        sets,
		}
	}
	return out
}

func MapSegmentToResponse(s domain.Segment) SegmentResponse {
	b := s.Base()
	resp := SegmentResponse{
		ID:        b.ID,
		Type:      s.Variant(),
		Name:      b.Name,
		Duration:  b.Duration,
		Distance:  b.Distance,
		Pace:      b.Pace,
		Intensity: b.Intensity,
		Notes:     b.Notes,
	}
	if hr := b.TargetHeartRate; hr != nil {
		resp.TargetHeartRate = &HeartRateResponse{Min: hr.Min, Max: hr.Max, Zone: hr.Zone}
	}
	if g, ok := s.(domain.IntervalGroup); ok {
		resp.Repetitions = g.Repetitions
		resp.Intervals = make([]IntervalResponse, len(g.Intervals))
		for i, iv := range g.Intervals {
			resp.Intervals[i] = IntervalResponse{
				ID:        iv.ID,
				Type:      iv.Kind,
				Name:      iv.Name,
				Duration:  iv.Duration,
				Distance:  iv.Distance,
				Pace:      iv.Pace,
				Intensity: iv.Intensity,
			}
		}
	}
	return resp
}
