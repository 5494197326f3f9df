package handler

import (
	"jimpitan-be-svc/internal/middleware"
	"jimpitan-be-svc/internal/service"
	"jimpitan-be-svc/pkg/logger"
	"jimpitan-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CardHandler handles RFID card pairing
type CardHandler struct {
	cardService service.CardService
	logger      *logger.Logger
}

// BindCardRequest pairs a card with a resident
type BindCardRequest struct {
	RFIDCode   string `json:"rfid_code" binding:"required" example:"04A2B9C1"`
	ResidentID string `json:"resident_id" binding:"required" example:"warga_001"`
}

// NewCardHandler creates a new CardHandler instance
func NewCardHandler(cardService service.CardService, logger *logger.Logger) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		logger:      logger,
	}
}

// BindCard pairs an RFID card with a resident, replacing any previous pairing of the card
// @Summary Bind RFID card
// @Description Pair a card code with a resident so taps on it are credited to them
// @Tags rfid-cards
// @Accept json
// @Produce json
// @Param request body BindCardRequest true "Card binding"
// @Success 201 {object} utils.APIResponse{data=models.RFIDCard} "Card bound"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/rfid-cards [post]
func (h *CardHandler) BindCard(c *gin.Context) {
	var req BindCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, middleware.ValidationMessage(err), err)
		return
	}

	card, err := h.cardService.BindCard(c.Request.Context(), req.RFIDCode, req.ResidentID)
	if err != nil {
		respondError(c, "Failed to bind card", err)
		return
	}

	utils.CreatedResponse(c, "Card bound successfully", card)
}
