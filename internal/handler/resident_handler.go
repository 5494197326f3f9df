package handler

import (
	"strconv"

	"jimpitan-be-svc/internal/middleware"
	"jimpitan-be-svc/internal/service"
	"jimpitan-be-svc/pkg/logger"
	"jimpitan-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultCreditLimit = 50
	maxCreditLimit     = 200
	defaultPerPage     = 20
	maxPerPage         = 100
)

// ResidentHandler handles resident ledger queries
type ResidentHandler struct {
	residentService service.ResidentService
	logger          *logger.Logger
}

type periodURI struct {
	ResidentID string `uri:"resident_id" binding:"required"`
	PeriodKey  string `uri:"period_key" binding:"required,periodkey"`
}

// NewResidentHandler creates a new ResidentHandler instance
func NewResidentHandler(residentService service.ResidentService, logger *logger.Logger) *ResidentHandler {
	return &ResidentHandler{
		residentService: residentService,
		logger:          logger,
	}
}

// GetPeriods lists the resident's billing periods
// @Summary Get resident periods
// @Description Get every billing period of a resident in timeline order with its current status
// @Tags residents
// @Produce json
// @Param resident_id path string true "Resident ID"
// @Success 200 {object} utils.APIResponse{data=[]response.PeriodResponse} "Periods retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{resident_id}/periods [get]
func (h *ResidentHandler) GetPeriods(c *gin.Context) {
	residentID := c.Param("resident_id")

	periods, err := h.residentService.GetPeriods(c.Request.Context(), residentID)
	if err != nil {
		respondError(c, "Failed to get periods", err)
		return
	}

	utils.SuccessResponse(c, "Periods retrieved successfully", periods)
}

// GetPeriod returns one billing period
// @Summary Get resident period
// @Description Get one billing period of a resident by its key
// @Tags residents
// @Produce json
// @Param resident_id path string true "Resident ID"
// @Param period_key path string true "Period key" example(period_1)
// @Success 200 {object} utils.APIResponse{data=response.PeriodResponse} "Period retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid period key"
// @Failure 404 {object} utils.APIResponse "Period not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{resident_id}/periods/{period_key} [get]
func (h *ResidentHandler) GetPeriod(c *gin.Context) {
	var uri periodURI
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.BadRequestResponse(c, middleware.ValidationMessage(err), err)
		return
	}

	period, err := h.residentService.GetPeriod(c.Request.Context(), uri.ResidentID, uri.PeriodKey)
	if err != nil {
		respondError(c, "Failed to get period", err)
		return
	}

	utils.SuccessResponse(c, "Period retrieved successfully", period)
}

// GetSummary returns the resident's payment progress
// @Summary Get resident payment summary
// @Description Count periods per status, total the amounts and report the credit balance
// @Tags residents
// @Produce json
// @Param resident_id path string true "Resident ID"
// @Success 200 {object} utils.APIResponse{data=response.ResidentSummaryResponse} "Summary retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{resident_id}/summary [get]
func (h *ResidentHandler) GetSummary(c *gin.Context) {
	residentID := c.Param("resident_id")

	summary, err := h.residentService.GetSummary(c.Request.Context(), residentID)
	if err != nil {
		respondError(c, "Failed to get summary", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"resident_id": residentID,
		"paid":        summary.Paid,
		"total":       summary.TotalPeriods,
	}).Info("Resident summary retrieved successfully")

	utils.SuccessResponse(c, "Summary retrieved successfully", summary)
}

// GetCredit returns the credit balance and its journal
// @Summary Get resident credit
// @Description Get the credit balance and the most recent credit movements
// @Tags residents
// @Produce json
// @Param resident_id path string true "Resident ID"
// @Param limit query int false "Number of journal rows, at most 200" default(50)
// @Success 200 {object} utils.APIResponse{data=response.CreditHistoryResponse} "Credit retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{resident_id}/credit [get]
func (h *ResidentHandler) GetCredit(c *gin.Context) {
	residentID := c.Param("resident_id")
	limit := defaultCreditLimit
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = min(v, maxCreditLimit)
		}
	}

	credit, err := h.residentService.GetCredit(c.Request.Context(), residentID, limit)
	if err != nil {
		respondError(c, "Failed to get credit", err)
		return
	}

	utils.SuccessResponse(c, "Credit retrieved successfully", credit)
}

// GetReceipts lists the resident's receipts
// @Summary Get resident receipts
// @Description Get the resident's receipts, newest first
// @Tags residents
// @Produce json
// @Param resident_id path string true "Resident ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page, at most 100" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Receipt} "Receipts retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{resident_id}/receipts [get]
func (h *ResidentHandler) GetReceipts(c *gin.Context) {
	residentID := c.Param("resident_id")
	page := 1
	perPage := defaultPerPage

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if v, err := strconv.Atoi(pp); err == nil && v > 0 {
			perPage = min(v, maxPerPage)
		}
	}

	receipts, total, err := h.residentService.GetReceipts(c.Request.Context(), residentID, page, perPage)
	if err != nil {
		respondError(c, "Failed to get receipts", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Receipts retrieved successfully", receipts, page, perPage, total)
}
