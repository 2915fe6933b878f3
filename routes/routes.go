package routes

import (
	"net/http"
	"time"

	"planbuilder/handlers"
	"planbuilder/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the anonymous session endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/guest", hb.GuestTokenHandler)
	}
}

// RegisterDraftRoutes sets up the endpoints for the plan drafting flow.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	draftGroup := r.Group("/api/plans/draft")
	{
		draftGroup.Use(middleware.GuestAuthMiddleware())
		draftGroup.POST("", hb.CreateDraft)
		draftGroup.GET("/:draftID", hb.GetDraft)
		draftGroup.DELETE("/:draftID", hb.CancelDraft)
		draftGroup.POST("/:draftID/submit", hb.SubmitPlan)

		draftGroup.POST("/:draftID/sessions", hb.AppendSession)
		draftGroup.POST("/:draftID/sessions/:sessionID/removal", hb.RequestRemoval)
		draftGroup.POST("/:draftID/removal/resolve", hb.ResolveRemoval)
		draftGroup.PUT("/:draftID/sessions/:sessionID/date", hb.SetSessionDate)
		draftGroup.PUT("/:draftID/sessions/:sessionID/time", hb.SetSessionClock)
		draftGroup.PUT("/:draftID/sessions/:sessionID/meridiem", hb.ToggleSessionMeridiem)
		draftGroup.PUT("/:draftID/sessions/:sessionID/activity", hb.SetSessionActivity)

		draftGroup.PUT("/:draftID/title", hb.SetTitle)
		draftGroup.PUT("/:draftID/categories", hb.SetCategories)
		draftGroup.POST("/:draftID/cover", hb.UploadCover)
	}
}

// RegisterPlanRoutes registers the category catalog and submitted-plan
// read endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/categories", hb.ListCategories)

	api := r.Group("/api/plans")
	{
		api.Use(middleware.GuestAuthMiddleware())
		api.GET("", hb.ListPlans)
		api.GET("/:planID", hb.GetPlan)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
	RegisterPlanRoutes(r, hb)
	RegisterHealthRoute(r)
}
