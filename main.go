// File: planbuilder/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planbuilder/config"
	"planbuilder/cron"
	"planbuilder/database"
	planRepo "planbuilder/database/repository/plan"
	"planbuilder/handlers"
	"planbuilder/middleware"
	"planbuilder/routes"
	"planbuilder/services/draft"
	"planbuilder/services/notification"
	"planbuilder/services/tasks"
	"planbuilder/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDraftCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	plansRepo := planRepo.NewMongoPlanRepo()

	// services.
	expiryScheduler := tasks.NewExpiryScheduler()
	defer expiryScheduler.Close()

	notificationService := &notification.LogNotificationService{Logger: logger}

	draftService := &draft.DefaultPlanDraftService{
		Cache:    utils.GetDraftCacheClient(),
		Repo:     plansRepo,
		Expiry:   expiryScheduler,
		TTL:      time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute,
		WarnLead: time.Duration(config.AppConfig.DraftExpiryWarnMinutes) * time.Minute,
		Logger:   logger,
	}

	draftHandler := handlers.NewDraftHandler(draftService, logger)
	planHandler := handlers.NewPlanHandler(plansRepo, logger)
	coverHandler := handlers.NewCoverHandler(cloudinaryStorageService, draftService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		GuestTokenHandler: handlers.GuestTokenHandler,

		// Draft lifecycle endpoints.
		CreateDraft: draftHandler.CreateDraft,
		GetDraft:    draftHandler.GetDraft,
		CancelDraft: draftHandler.CancelDraft,
		SubmitPlan:  draftHandler.SubmitPlan,

		// Session endpoints.
		AppendSession:         draftHandler.AppendSession,
		RequestRemoval:        draftHandler.RequestRemoval,
		ResolveRemoval:        draftHandler.ResolveRemoval,
		SetSessionDate:        draftHandler.SetSessionDate,
		SetSessionClock:       draftHandler.SetSessionClock,
		ToggleSessionMeridiem: draftHandler.ToggleSessionMeridiem,
		SetSessionActivity:    draftHandler.SetSessionActivity,

		// Plan metadata endpoints.
		SetTitle:      draftHandler.SetTitle,
		SetCategories: draftHandler.SetCategories,
		UploadCover:   coverHandler.UploadCover,

		// Catalog and submitted-plan endpoints.
		ListCategories: handlers.ListCategoriesHandler,
		GetPlan:        planHandler.GetPlan,
		ListPlans:      planHandler.ListPlans,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background worker that fires draft-expiry warnings.
	cron.InitExpiryWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
