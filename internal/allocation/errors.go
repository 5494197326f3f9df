package allocation

import (
	"errors"
	"fmt"
)

// Sentinel errors for payment allocation and ledger mutations
var (
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrInvalidRequest           = errors.New("invalid allocation request")
	ErrInsufficientCredit       = errors.New("insufficient credit")
	ErrConcurrentModification   = errors.New("concurrent modification")
	ErrExcessPaymentUnallocated = errors.New("excess payment cannot be allocated")
	ErrResidentNotFound         = errors.New("resident not found")
	ErrPeriodNotFound           = errors.New("billing period not found")
	ErrReceiptNotFound          = errors.New("receipt not found")
	ErrCardNotFound             = errors.New("rfid card not found")
	ErrDuplicateEvent           = errors.New("duplicate payment event")
)

// AmountError reports an amount the ledger refuses
type AmountError struct {
	PeriodKey string
	Amount    int64
	Reason    string
}

func (e *AmountError) Error() string {
	if e.PeriodKey != "" {
		return fmt.Sprintf("invalid amount %d for period %s: %s", e.Amount, e.PeriodKey, e.Reason)
	}
	return fmt.Sprintf("invalid amount %d: %s", e.Amount, e.Reason)
}

func (e *AmountError) Unwrap() error {
	return ErrInvalidAmount
}

// InsufficientCreditError reports a debit larger than the available balance
type InsufficientCreditError struct {
	ResidentID string
	Available  int64
	Requested  int64
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit for resident %s: available %d, requested %d",
		e.ResidentID, e.Available, e.Requested)
}

func (e *InsufficientCreditError) Unwrap() error {
	return ErrInsufficientCredit
}

// ConflictError reports that a row changed between the read an allocation was based on and its commit
type ConflictError struct {
	ResidentID string
	Resource   string
	Key        string
	Cause      error
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s %s of resident %s was modified concurrently", e.Resource, e.Key, e.ResidentID)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConcurrentModification
}

// ExcessPaymentError reports money left over after periods are settled and the credit cap is reached
type ExcessPaymentError struct {
	ResidentID string
	Remainder  int64
	CreditCap  int64
}

func (e *ExcessPaymentError) Error() string {
	return fmt.Sprintf("payment for resident %s leaves %d unallocated (credit cap %d)",
		e.ResidentID, e.Remainder, e.CreditCap)
}

func (e *ExcessPaymentError) Unwrap() error {
	return ErrExcessPaymentUnallocated
}

// IsRetryable reports whether re-reading state and allocating again may succeed
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}

// IsClientError reports whether err is caused by the request rather than the system
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInsufficientCredit) ||
		errors.Is(err, ErrExcessPaymentUnallocated) ||
		errors.Is(err, ErrDuplicateEvent) ||
		IsNotFound(err)
}

// IsNotFound reports whether err names a missing resident, period, receipt or card
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResidentNotFound) ||
		errors.Is(err, ErrPeriodNotFound) ||
		errors.Is(err, ErrReceiptNotFound) ||
		errors.Is(err, ErrCardNotFound)
}

// Code returns a short snake_case name for err, used as a metric label and in simulator reports
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientCredit):
		return "insufficient_credit"
	case errors.Is(err, ErrExcessPaymentUnallocated):
		return "excess_unallocated"
	case errors.Is(err, ErrConcurrentModification):
		return "concurrent_modification"
	case errors.Is(err, ErrDuplicateEvent):
		return "duplicate_event"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case IsNotFound(err):
		return "not_found"
	default:
		return "internal"
	}
}
