package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/pkg/utils"
)

// statusFor maps ledger errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, allocation.ErrInvalidAmount), errors.Is(err, allocation.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, allocation.ErrInsufficientCredit), errors.Is(err, allocation.ErrExcessPaymentUnallocated):
		return http.StatusUnprocessableEntity
	case errors.Is(err, allocation.ErrConcurrentModification), errors.Is(err, allocation.ErrDuplicateEvent):
		return http.StatusConflict
	case allocation.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status it maps to. Internal errors are not echoed to the client.
func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.InternalServerErrorResponse(c, message, errors.New("internal server error"))
		return
	}
	utils.ErrorResponse(c, status, message, err)
}
