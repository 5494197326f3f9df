package handler

import (
	"fmt"
	"net/http"
	"time"

	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/internal/service"
	"jimpitan-be-svc/pkg/logger"
	"jimpitan-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReceiptHandler handles receipt lookups and exports
type ReceiptHandler struct {
	receiptService service.ReceiptService
	logger         *logger.Logger
}

// NewReceiptHandler creates a new ReceiptHandler instance
func NewReceiptHandler(receiptService service.ReceiptService, logger *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// GetReceipt returns one receipt with its lines
// @Summary Get receipt
// @Description Get a receipt and the periods it was applied to
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} utils.APIResponse{data=models.Receipt} "Receipt retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Receipt not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/receipts/{id} [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get receipt", err)
		return
	}

	utils.SuccessResponse(c, "Receipt retrieved successfully", receipt)
}

// ExportReceipts downloads receipts as an Excel workbook
// @Summary Export receipts to Excel
// @Description Export receipts, optionally for one resident and a date range, as an xlsx file
// @Tags receipts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param resident_id query string false "Resident ID"
// @Param from query string false "First day, inclusive (YYYY-MM-DD)"
// @Param to query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {file} file "Excel workbook"
// @Failure 400 {object} utils.APIResponse "Invalid date"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/receipts/export [get]
func (h *ReceiptHandler) ExportReceipts(c *gin.Context) {
	filter := repository.ReceiptFilter{ResidentID: c.Query("resident_id")}

	if from := c.Query("from"); from != "" {
		day, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.BadRequestResponse(c, "from must be a date in YYYY-MM-DD format", err)
			return
		}
		filter.From = &day
	}
	if to := c.Query("to"); to != "" {
		day, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.BadRequestResponse(c, "to must be a date in YYYY-MM-DD format", err)
			return
		}
		end := day.AddDate(0, 0, 1)
		filter.To = &end
	}

	data, filename, err := h.receiptService.ExportReceipts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "Failed to export receipts", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
