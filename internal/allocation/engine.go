// Package allocation distributes a payment across a resident's billing periods and credit balance.
//
// Allocate is a pure function: it reads nothing but its arguments and mutates nothing, so the
// same inputs always yield the same Result. Persisting a Result is the caller's job.
package allocation

import (
	"math"
	"sort"

	"jimpitan-be-svc/internal/models"
)

// DefaultCapMultiplier bounds the credit balance to three period amounts
const DefaultCapMultiplier int64 = 3

// Request is one payment to allocate
type Request struct {
	ResidentID  string
	GrossAmount int64
	Source      models.PaymentSource
}

// Policy holds the knobs of the credit cap
type Policy struct {
	// CapMultiplier times the period amount is the highest balance excess may raise credit to
	CapMultiplier int64
	// ReferenceAmount is the period amount used when no period is touched, i.e. a top-up
	ReferenceAmount int64
}

// DefaultPolicy returns the policy with the default cap multiplier and no reference amount
func DefaultPolicy() Policy {
	return Policy{CapMultiplier: DefaultCapMultiplier}
}

// Line is the part of a payment applied to one period
type Line struct {
	PeriodKey        string              `json:"period_key"`
	Label            string              `json:"label"`
	AmountDue        int64               `json:"amount_due"`
	AmountPaidBefore int64               `json:"amount_paid_before"`
	CreditApplied    int64               `json:"credit_applied"`
	CashApplied      int64               `json:"cash_applied"`
	AmountApplied    int64               `json:"amount_applied"`
	ResultingStatus  models.PeriodStatus `json:"resulting_status"`
}

// Result is the full breakdown of an allocation
type Result struct {
	ResidentID           string               `json:"resident_id"`
	Source               models.PaymentSource `json:"payment_source"`
	GrossAmount          int64                `json:"gross_amount"`
	Lines                []Line               `json:"lines"`
	CreditConsumed       int64                `json:"credit_consumed"`
	CreditAdded          int64                `json:"credit_added"`
	NewCreditBalance     int64                `json:"new_credit_balance"`
	UnallocatedRemainder int64                `json:"unallocated_remainder"`
	// CreditCap is the balance ceiling excess was held to
	CreditCap int64 `json:"credit_cap"`
}

// TotalApplied sums what was applied to periods
func (r *Result) TotalApplied() int64 {
	var total int64
	for _, line := range r.Lines {
		total += line.AmountApplied
	}
	return total
}

// Balanced reports whether every unit that came in went somewhere
func (r *Result) Balanced() bool {
	return r.TotalApplied()+r.CreditAdded+r.UnallocatedRemainder == r.GrossAmount+r.CreditConsumed
}

// Allocate distributes req over the unpaid periods, oldest first, and decides the credit deltas.
// Credit (for credit and mixed sources) is applied before cash. Whatever is left after every
// period is settled becomes credit, up to the cap; the rest is reported as UnallocatedRemainder.
func Allocate(req Request, unpaid []models.BillingPeriod, balance int64, policy Policy) (*Result, error) {
	if err := validate(req, balance, policy); err != nil {
		return nil, err
	}

	periods, err := orderPeriods(unpaid)
	if err != nil {
		return nil, err
	}

	totalOutstanding, err := sumOutstanding(periods)
	if err != nil {
		return nil, err
	}

	var creditConsumed int64
	if req.Source.DrawsCredit() {
		creditConsumed = min(balance, totalOutstanding)
	}

	if req.GrossAmount == 0 && creditConsumed == 0 {
		if balance == 0 {
			return nil, &InsufficientCreditError{ResidentID: req.ResidentID, Available: 0, Requested: totalOutstanding}
		}
		return nil, &AmountError{Amount: 0, Reason: "no outstanding periods to settle with credit"}
	}

	result := &Result{
		ResidentID:     req.ResidentID,
		Source:         req.Source,
		GrossAmount:    req.GrossAmount,
		Lines:          []Line{},
		CreditConsumed: creditConsumed,
	}

	creditLeft := creditConsumed
	cashLeft := req.GrossAmount
	var lastTouched *models.BillingPeriod

	for i := range periods {
		if creditLeft == 0 && cashLeft == 0 {
			break
		}
		p := &periods[i]
		owed := p.Outstanding()
		if owed == 0 {
			continue
		}

		fromCredit := min(creditLeft, owed)
		creditLeft -= fromCredit
		fromCash := min(cashLeft, owed-fromCredit)
		cashLeft -= fromCash
		applied := fromCredit + fromCash

		result.Lines = append(result.Lines, Line{
			PeriodKey:        p.PeriodKey,
			Label:            p.Label,
			AmountDue:        p.AmountDue,
			AmountPaidBefore: p.AmountPaid,
			CreditApplied:    fromCredit,
			CashApplied:      fromCash,
			AmountApplied:    applied,
			ResultingStatus:  models.StatusAfterPayment(p.AmountDue, p.AmountPaid+applied),
		})
		lastTouched = p
	}

	// creditConsumed is bounded by the outstanding total, so creditLeft is zero here.
	remaining := cashLeft + creditLeft

	periodAmount := policy.ReferenceAmount
	if lastTouched != nil {
		periodAmount = lastTouched.AmountDue
	}
	result.CreditCap = capFor(policy.CapMultiplier, periodAmount)

	balanceAfterConsume := balance - creditConsumed
	room := result.CreditCap - balanceAfterConsume
	if room < 0 {
		room = 0
	}

	result.CreditAdded = min(remaining, room)
	result.UnallocatedRemainder = remaining - result.CreditAdded
	result.NewCreditBalance = balanceAfterConsume + result.CreditAdded

	return result, nil
}

func validate(req Request, balance int64, policy Policy) error {
	if req.ResidentID == "" {
		return ErrInvalidRequest
	}
	if !req.Source.IsValid() {
		return ErrInvalidRequest
	}
	if req.GrossAmount < 0 {
		return &AmountError{Amount: req.GrossAmount, Reason: "amount must not be negative"}
	}
	if req.GrossAmount == 0 && req.Source != models.PaymentSourceCredit {
		return &AmountError{Amount: req.GrossAmount, Reason: "amount must be positive"}
	}
	if req.GrossAmount > models.MaxAmount {
		return &AmountError{Amount: req.GrossAmount, Reason: "amount exceeds the ledger maximum"}
	}
	if balance < 0 {
		return &AmountError{Amount: balance, Reason: "credit balance must not be negative"}
	}
	if balance > models.MaxAmount {
		return &AmountError{Amount: balance, Reason: "credit balance exceeds the ledger maximum"}
	}
	if policy.CapMultiplier < 0 || policy.ReferenceAmount < 0 || policy.ReferenceAmount > models.MaxAmount {
		return ErrInvalidRequest
	}
	return nil
}

// orderPeriods returns a copy of the periods sorted by ordinal, rejecting inconsistent rows
func orderPeriods(unpaid []models.BillingPeriod) ([]models.BillingPeriod, error) {
	periods := make([]models.BillingPeriod, len(unpaid))
	copy(periods, unpaid)

	seenKeys := make(map[string]struct{}, len(periods))
	seenOrdinals := make(map[int]struct{}, len(periods))
	for i := range periods {
		p := &periods[i]
		if _, dup := seenKeys[p.PeriodKey]; dup {
			return nil, ErrInvalidRequest
		}
		seenKeys[p.PeriodKey] = struct{}{}

		if p.AmountDue <= 0 {
			return nil, &AmountError{PeriodKey: p.PeriodKey, Amount: p.AmountDue, Reason: "amount due must be positive"}
		}
		if p.AmountDue > models.MaxAmount {
			return nil, &AmountError{PeriodKey: p.PeriodKey, Amount: p.AmountDue, Reason: "amount due exceeds the ledger maximum"}
		}
		if p.AmountPaid < 0 || p.AmountPaid > p.AmountDue {
			return nil, &AmountError{PeriodKey: p.PeriodKey, Amount: p.AmountPaid, Reason: "amount paid outside [0, amount due]"}
		}

		ordinal, err := models.ParsePeriodOrdinal(p.PeriodKey)
		if err != nil {
			return nil, ErrInvalidRequest
		}
		if p.Ordinal != 0 && p.Ordinal != ordinal {
			return nil, ErrInvalidRequest
		}
		p.Ordinal = ordinal

		if _, dup := seenOrdinals[p.Ordinal]; dup {
			return nil, ErrInvalidRequest
		}
		seenOrdinals[p.Ordinal] = struct{}{}
	}

	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Ordinal != periods[j].Ordinal {
			return periods[i].Ordinal < periods[j].Ordinal
		}
		return periods[i].PeriodKey < periods[j].PeriodKey
	})
	return periods, nil
}

// sumOutstanding totals what is owed, refusing a total int64 cannot hold
func sumOutstanding(periods []models.BillingPeriod) (int64, error) {
	var total int64
	for _, p := range periods {
		owed := p.Outstanding()
		if total > math.MaxInt64-owed {
			return 0, &AmountError{PeriodKey: p.PeriodKey, Amount: owed, Reason: "total outstanding overflows"}
		}
		total += owed
	}
	return total, nil
}

// capFor returns multiplier * periodAmount, saturating instead of overflowing
func capFor(multiplier, periodAmount int64) int64 {
	if periodAmount > 0 && multiplier > math.MaxInt64/periodAmount {
		return math.MaxInt64
	}
	return multiplier * periodAmount
}
