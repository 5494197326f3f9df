package allocation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredErrors_UnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "amount", err: &AmountError{PeriodKey: "period_1", Amount: -5, Reason: "negative"}, sentinel: ErrInvalidAmount},
		{name: "credit", err: &InsufficientCreditError{ResidentID: "warga_001", Available: 10, Requested: 20}, sentinel: ErrInsufficientCredit},
		{name: "conflict", err: &ConflictError{ResidentID: "warga_001", Resource: "billing period", Key: "period_1"}, sentinel: ErrConcurrentModification},
		{name: "excess", err: &ExcessPaymentError{ResidentID: "warga_001", Remainder: 100, CreditCap: 120000}, sentinel: ErrExcessPaymentUnallocated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to record payment: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestConflictError_IncludesCause(t *testing.T) {
	err := &ConflictError{ResidentID: "warga_001", Resource: "billing period", Key: "period_2", Cause: errors.New("amount exceeds due")}
	assert.Contains(t, err.Error(), "period_2")
	assert.Contains(t, err.Error(), "amount exceeds due")
}

func TestClassification(t *testing.T) {
	conflict := &ConflictError{Resource: "credit account"}
	assert.True(t, IsRetryable(conflict))
	assert.False(t, IsClientError(conflict))

	assert.False(t, IsRetryable(ErrInvalidAmount))
	assert.True(t, IsClientError(&AmountError{Amount: -1}))
	assert.True(t, IsClientError(ErrDuplicateEvent))
	assert.True(t, IsClientError(fmt.Errorf("lookup: %w", ErrCardNotFound)))
	assert.True(t, IsNotFound(ErrReceiptNotFound))
	assert.False(t, IsClientError(errors.New("connection refused")))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, "invalid_amount", Code(&AmountError{Amount: -1}))
	assert.Equal(t, "insufficient_credit", Code(&InsufficientCreditError{}))
	assert.Equal(t, "excess_unallocated", Code(&ExcessPaymentError{}))
	assert.Equal(t, "concurrent_modification", Code(fmt.Errorf("retry: %w", &ConflictError{})))
	assert.Equal(t, "duplicate_event", Code(ErrDuplicateEvent))
	assert.Equal(t, "invalid_request", Code(ErrInvalidRequest))
	assert.Equal(t, "not_found", Code(ErrCardNotFound))
	assert.Equal(t, "internal", Code(errors.New("boom")))
}
