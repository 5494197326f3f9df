package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type validatedRequest struct {
	Source    string `json:"payment_source" binding:"payment_source"`
	PeriodKey string `json:"period_key" binding:"required,periodkey"`
	Amount    int64  `json:"amount" binding:"gte=0,lte=1000000000000"`
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()
	SetupValidator()

	tests := []struct {
		name    string
		req     validatedRequest
		message string
	}{
		{name: "valid", req: validatedRequest{Source: "mixed", PeriodKey: "period_3"}},
		{name: "source defaults", req: validatedRequest{PeriodKey: "period_1"}},
		{name: "unknown source", req: validatedRequest{Source: "bank", PeriodKey: "period_1"}, message: "payment_source must be one of: cash, credit, mixed"},
		{name: "bad period key", req: validatedRequest{PeriodKey: "week-1"}, message: "period_key must look like period_<n>"},
		{name: "missing period key", req: validatedRequest{}, message: "period_key is required"},
		{name: "negative amount", req: validatedRequest{PeriodKey: "period_1", Amount: -1}, message: "amount must be greater than or equal to 0"},
		{name: "amount above ledger maximum", req: validatedRequest{PeriodKey: "period_1", Amount: 1000000000001}, message: "amount must be less than or equal to 1000000000000"},
		{name: "padded period key", req: validatedRequest{PeriodKey: "period_007"}, message: "period_key must look like period_<n>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.message, ValidationMessage(err))
		})
	}
}
