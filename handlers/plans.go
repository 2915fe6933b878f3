package handlers

import (
	"errors"
	"net/http"

	planRepo "planbuilder/database/repository/plan"
	"planbuilder/middleware"
	"planbuilder/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PlanHandler serves submitted plans.
type PlanHandler struct {
	Repo   planRepo.PlanRepository
	Logger *zap.Logger
}

// NewPlanHandler creates a new PlanHandler instance.
func NewPlanHandler(repo planRepo.PlanRepository, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{Repo: repo, Logger: logger}
}

// GetPlan returns one submitted plan owned by the caller.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	plan, err := h.Repo.GetByID(c.Request.Context(), c.Param("planID"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "plan not found", "")
			return
		}
		h.Logger.Error("failed to fetch plan", zap.String("planID", c.Param("planID")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch plan", "")
		return
	}
	if plan.OwnerID != ownerID {
		utils.JSONError(c, http.StatusNotFound, "plan not found", "")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListPlans returns every plan the caller has submitted.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	plans, err := h.Repo.GetByOwnerID(c.Request.Context(), ownerID)
	if err != nil {
		h.Logger.Error("failed to list plans", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list plans", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
