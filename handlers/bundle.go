package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Auth endpoints.
	GuestTokenHandler gin.HandlerFunc

	// Draft lifecycle endpoints.
	CreateDraft gin.HandlerFunc
	GetDraft    gin.HandlerFunc
	CancelDraft gin.HandlerFunc
	SubmitPlan  gin.HandlerFunc

	// Session endpoints.
	AppendSession         gin.HandlerFunc
	RequestRemoval        gin.HandlerFunc
	ResolveRemoval        gin.HandlerFunc
	SetSessionDate        gin.HandlerFunc
	SetSessionClock       gin.HandlerFunc
	ToggleSessionMeridiem gin.HandlerFunc
	SetSessionActivity    gin.HandlerFunc

	// Plan metadata endpoints.
	SetTitle      gin.HandlerFunc
	SetCategories gin.HandlerFunc
	UploadCover   gin.HandlerFunc

	// Catalog and submitted-plan endpoints.
	ListCategories gin.HandlerFunc
	GetPlan        gin.HandlerFunc
	ListPlans      gin.HandlerFunc
}
