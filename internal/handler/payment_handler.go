package handler

import (
	"jimpitan-be-svc/internal/middleware"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/service"
	"jimpitan-be-svc/pkg/logger"
	"jimpitan-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	ResidentID    string `json:"resident_id" binding:"required" example:"warga_001"`
	Amount        int64  `json:"amount" binding:"gte=0,lte=1000000000000" example:"60000"`
	PaymentSource string `json:"payment_source" binding:"payment_source" example:"cash"` // cash, credit or mixed; defaults to cash
	Reference     string `json:"reference" example:"kas-2026-01-05"`
}

// RFIDPaymentRequest represents a tap event sent by a card reader
type RFIDPaymentRequest struct {
	RFIDCode string `json:"rfid_code" binding:"required" example:"04A2B9C1"`
	Amount   int64  `json:"amount" binding:"gt=0,lte=1000000000000" example:"40000"`
	EventID  string `json:"event_id" example:"reader-3:1767600000"`
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// RecordPayment records a manual payment
// @Summary Record payment
// @Description Allocate a payment to the resident's unpaid periods, oldest first, and carry the excess as credit
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RecordPaymentRequest true "Payment"
// @Success 201 {object} utils.APIResponse{data=models.Receipt} "Payment recorded"
// @Failure 400 {object} utils.APIResponse "Invalid amount or request"
// @Failure 409 {object} utils.APIResponse "Ledger changed concurrently"
// @Failure 422 {object} utils.APIResponse "Insufficient credit or excess above the credit cap"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, middleware.ValidationMessage(err), err)
		return
	}

	receipt, err := h.paymentService.RecordPayment(c.Request.Context(), service.PaymentRequest{
		ResidentID: req.ResidentID,
		Amount:     req.Amount,
		Source:     models.PaymentSource(req.PaymentSource),
		Channel:    models.ChannelManual,
		Reference:  req.Reference,
	})
	if err != nil {
		respondError(c, "Failed to record payment", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"receipt_id":  receipt.ID,
		"resident_id": receipt.ResidentID,
		"amount":      receipt.GrossAmount,
	}).Info("Payment recorded successfully")

	utils.CreatedResponse(c, "Payment recorded successfully", receipt)
}

// PreviewPayment shows how a payment would be allocated
// @Summary Preview payment allocation
// @Description Compute the allocation of a payment against the current ledger without recording it
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RecordPaymentRequest true "Payment"
// @Success 200 {object} utils.APIResponse{data=allocation.Result} "Allocation preview"
// @Failure 400 {object} utils.APIResponse "Invalid amount or request"
// @Failure 422 {object} utils.APIResponse "Insufficient credit"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/payments/preview [post]
func (h *PaymentHandler) PreviewPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, middleware.ValidationMessage(err), err)
		return
	}

	result, err := h.paymentService.Preview(c.Request.Context(), service.PaymentRequest{
		ResidentID: req.ResidentID,
		Amount:     req.Amount,
		Source:     models.PaymentSource(req.PaymentSource),
	})
	if err != nil {
		respondError(c, "Failed to preview payment", err)
		return
	}

	utils.SuccessResponse(c, "Payment allocation preview", result)
}

// RecordRFIDPayment records a payment tapped on a card reader
// @Summary Record RFID payment
// @Description Resolve the resident from the card, ignore repeated event ids and record the payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RFIDPaymentRequest true "RFID tap event"
// @Success 201 {object} utils.APIResponse{data=models.Receipt} "Payment recorded"
// @Failure 400 {object} utils.APIResponse "Invalid amount or request"
// @Failure 404 {object} utils.APIResponse "Card not found"
// @Failure 409 {object} utils.APIResponse "Duplicate event or concurrent modification"
// @Failure 422 {object} utils.APIResponse "Excess above the credit cap"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/payments/rfid [post]
func (h *PaymentHandler) RecordRFIDPayment(c *gin.Context) {
	var req RFIDPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid RFID event body")
		utils.BadRequestResponse(c, middleware.ValidationMessage(err), err)
		return
	}

	receipt, err := h.paymentService.RecordRFIDPayment(c.Request.Context(), service.RFIDPaymentRequest{
		CardCode: req.RFIDCode,
		Amount:   req.Amount,
		EventID:  req.EventID,
	})
	if err != nil {
		respondError(c, "Failed to record RFID payment", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"receipt_id":  receipt.ID,
		"resident_id": receipt.ResidentID,
		"event_id":    req.EventID,
	}).Info("RFID payment recorded successfully")

	utils.CreatedResponse(c, "Payment recorded successfully", receipt)
}
