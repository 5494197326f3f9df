package handler

import (
	"jimpitan-be-svc/internal/middleware"
	"jimpitan-be-svc/internal/service"
	"jimpitan-be-svc/pkg/logger"
	"jimpitan-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TimelineHandler handles timeline imports into the period ledger
type TimelineHandler struct {
	timelineService service.TimelineService
	logger          *logger.Logger
}

// NewTimelineHandler creates a new TimelineHandler instance
func NewTimelineHandler(timelineService service.TimelineService, logger *logger.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
		logger:          logger,
	}
}

// ImportTimeline loads a timeline's periods for the given residents
// @Summary Import billing timeline
// @Description Create the timeline's periods for each resident. Periods with amount 0 are holidays and are skipped. Residents that already have the timeline are reported as failed.
// @Tags timelines
// @Accept json
// @Produce json
// @Param request body service.TimelineImportRequest true "Timeline and residents"
// @Success 200 {object} utils.APIResponse{data=service.TimelineImportResponse} "Timeline import result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/timelines/import [post]
func (h *TimelineHandler) ImportTimeline(c *gin.Context) {
	var req service.TimelineImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, middleware.ValidationMessage(err), err)
		return
	}

	resp, err := h.timelineService.ImportTimeline(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to import timeline", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"timeline_id":   req.TimelineID,
		"success_count": resp.SuccessCount,
		"failed_count":  resp.FailedCount,
	}).Info("Timeline import completed")

	utils.SuccessResponse(c, "Timeline import completed", resp)
}
