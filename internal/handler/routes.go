package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jimpitan-be-svc/internal/service"
	"jimpitan-be-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	paymentService service.PaymentService,
	residentService service.ResidentService,
	receiptService service.ReceiptService,
	cardService service.CardService,
	timelineService service.TimelineService,
	logger *logger.Logger,
) {
	// Initialize handlers
	paymentHandler := NewPaymentHandler(paymentService, logger)
	residentHandler := NewResidentHandler(residentService, logger)
	receiptHandler := NewReceiptHandler(receiptService, logger)
	cardHandler := NewCardHandler(cardService, logger)
	timelineHandler := NewTimelineHandler(timelineService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Payment routes
		payments := v1.Group("/payments")
		{
			payments.POST("", paymentHandler.RecordPayment)
			payments.POST("/preview", paymentHandler.PreviewPayment)
			payments.POST("/rfid", paymentHandler.RecordRFIDPayment)
		}

		// Resident ledger routes
		residents := v1.Group("/residents/:resident_id")
		{
			residents.GET("/periods", residentHandler.GetPeriods)
			residents.GET("/periods/:period_key", residentHandler.GetPeriod)
			residents.GET("/summary", residentHandler.GetSummary)
			residents.GET("/credit", residentHandler.GetCredit)
			residents.GET("/receipts", residentHandler.GetReceipts)
		}

		// Receipt routes
		receipts := v1.Group("/receipts")
		{
			receipts.GET("/export", receiptHandler.ExportReceipts)
			receipts.GET("/:id", receiptHandler.GetReceipt)
		}

		// RFID card routes
		cards := v1.Group("/rfid-cards")
		{
			cards.POST("", cardHandler.BindCard)
		}

		// Timeline routes
		timelines := v1.Group("/timelines")
		{
			timelines.POST("/import", timelineHandler.ImportTimeline)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Jimpitan Backend Service",
	})
}
