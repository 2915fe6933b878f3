package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"planbuilder/middleware"
	"planbuilder/services/draft"
	"planbuilder/services/plan"
	"planbuilder/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DraftHandler exposes the plan-drafting flow over HTTP.
type DraftHandler struct {
	Svc    draft.PlanDraftService
	Logger *zap.Logger
}

// NewDraftHandler creates a new DraftHandler instance.
func NewDraftHandler(svc draft.PlanDraftService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{Svc: svc, Logger: logger}
}

func ownerID(c *gin.Context) string {
	return c.GetString(middleware.OwnerIDKey)
}

func sessionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid session id", c.Param("sessionID"))
		return 0, false
	}
	return id, true
}

// respondError maps service and engine errors onto HTTP statuses. Every
// engine error is locally recovered; nothing here is fatal.
func (h *DraftHandler) respondError(c *gin.Context, err error) {
	var cerr *plan.ConstraintError
	var nse *draft.NotSubmittableError
	switch {
	case errors.Is(err, draft.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "plan draft not found or expired", "")
	case errors.As(err, &cerr):
		status := http.StatusUnprocessableEntity
		switch cerr.Code {
		case "sessionNotFound":
			status = http.StatusNotFound
		case "minimumCount", "removalPending", "noPendingRemoval":
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": cerr.Message, "code": cerr.Code})
	case errors.As(err, &nse):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "plan is not ready to submit", "problems": nse.Problems})
	case errors.Is(err, draft.ErrTooManyCategories), errors.Is(err, draft.ErrUnknownCategory):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("draft operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}

// CreateDraft starts a new plan draft with one default session.
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	snapshot, err := h.Svc.CreateDraft(c.Request.Context(), ownerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// GetDraft returns the current snapshot.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	snapshot, err := h.Svc.GetSnapshot(c.Request.Context(), ownerID(c), c.Param("draftID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// AppendSession adds a session to the end of the draft.
func (h *DraftHandler) AppendSession(c *gin.Context) {
	snapshot, err := h.Svc.AppendSession(c.Request.Context(), ownerID(c), c.Param("draftID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// RequestRemoval opens a pending removal for one session.
func (h *DraftHandler) RequestRemoval(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	snapshot, err := h.Svc.RequestRemoval(c.Request.Context(), ownerID(c), c.Param("draftID"), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ResolveRemoval settles the pending removal with the owner's decision.
func (h *DraftHandler) ResolveRemoval(c *gin.Context) {
	var input struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snapshot, err := h.Svc.ResolveRemoval(c.Request.Context(), ownerID(c), c.Param("draftID"), input.Confirmed)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetSessionDate assigns a session's calendar date.
func (h *DraftHandler) SetSessionDate(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snapshot, err := h.Svc.SetSessionDate(c.Request.Context(), ownerID(c), c.Param("draftID"), id, input.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetSessionClock applies a raw hour/minute edit to one end of a
// session's window. Hour and minute arrive as the raw field strings the
// user typed; the engine normalizes them.
func (h *DraftHandler) SetSessionClock(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var input struct {
		Field  string `json:"field" binding:"required"`
		Hour   string `json:"hour"`
		Minute string `json:"minute"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snapshot, err := h.Svc.SetSessionClock(c.Request.Context(), ownerID(c), c.Param("draftID"), id, input.Field, input.Hour, input.Minute)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ToggleSessionMeridiem flips AM/PM on one end of a session's window.
func (h *DraftHandler) ToggleSessionMeridiem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var input struct {
		Field string `json:"field" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snapshot, err := h.Svc.ToggleSessionMeridiem(c.Request.Context(), ownerID(c), c.Param("draftID"), id, input.Field)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetSessionActivity updates a session's activity note.
func (h *DraftHandler) SetSessionActivity(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var input struct {
		Activity string `json:"activity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snapshot, err := h.Svc.SetSessionActivity(c.Request.Context(), ownerID(c), c.Param("draftID"), id, input.Activity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetTitle updates the plan title.
func (h *DraftHandler) SetTitle(c *gin.Context) {
	var input struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snapshot, err := h.Svc.SetTitle(c.Request.Context(), ownerID(c), c.Param("draftID"), input.Title)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetCategories replaces the plan's category selection.
func (h *DraftHandler) SetCategories(c *gin.Context) {
	var input struct {
		CategoryIDs []int `json:"categoryIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	snapshot, err := h.Svc.SetCategories(c.Request.Context(), ownerID(c), c.Param("draftID"), input.CategoryIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SubmitPlan finalizes the draft into a persisted plan.
func (h *DraftHandler) SubmitPlan(c *gin.Context) {
	submitted, err := h.Svc.Submit(c.Request.Context(), ownerID(c), c.Param("draftID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submitted)
}

// CancelDraft deletes an in-progress draft.
func (h *DraftHandler) CancelDraft(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), ownerID(c), c.Param("draftID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
