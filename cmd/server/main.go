package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"jimpitan-be-svc/docs"
	"jimpitan-be-svc/internal/cache"
	"jimpitan-be-svc/internal/config"
	"jimpitan-be-svc/internal/database"
	"jimpitan-be-svc/internal/handler"
	"jimpitan-be-svc/internal/metrics"
	"jimpitan-be-svc/internal/middleware"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/internal/scheduler"
	"jimpitan-be-svc/internal/service"
	"jimpitan-be-svc/pkg/logger"
)

// @title Jimpitan Backend Service API
// @version 1.0
// @description RESTful API for recording jimpitan payments, allocating them to billing periods and tracking resident credit
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Jimpitan Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for recording jimpitan payments, allocating them to billing periods and tracking resident credit"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Jimpitan Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)
	middleware.SetupValidator()

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// RFID event de-duplication, Redis when configured
	eventStore := cache.NewEventStore(cfg.Redis, appLogger)

	// Initialize repositories
	periodRepo := repository.NewPeriodRepository(db.DB)
	creditRepo := repository.NewCreditRepository(db.DB)
	receiptRepo := repository.NewReceiptRepository(db.DB)
	cardRepo := repository.NewRFIDCardRepository(db.DB)
	logSchedulerRepo := repository.NewLogSchedulerRepository(db.DB)

	// Initialize services
	recorder := service.NewPaymentRecorder(db.DB, appLogger)
	paymentService := service.NewPaymentService(periodRepo, creditRepo, cardRepo, recorder, eventStore, cfg.Payment, cfg.Redis.EventTTL, appLogger)
	residentService := service.NewResidentService(periodRepo, creditRepo, receiptRepo, appLogger)
	receiptService := service.NewReceiptService(receiptRepo, appLogger)
	cardService := service.NewCardService(cardRepo, appLogger)
	timelineService := service.NewTimelineService(periodRepo, appLogger)

	// Start the overdue refresh job
	overdueScheduler := scheduler.NewOverdueScheduler(periodRepo, logSchedulerRepo, appLogger, cfg.Scheduler.OverdueCronExpression)
	if err := overdueScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start overdue scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(metrics.GinMiddleware())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, paymentService, residentService, receiptService, cardService, timelineService, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	overdueScheduler.Stop()

	if err := eventStore.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close event store")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
