// Package simulator replays allocation scenarios described in TOML files through the allocation engine.
package simulator

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"jimpitan-be-svc/internal/models"
)

// File is a scenario file
type File struct {
	// CapMultiplier applies to every scenario that does not set its own
	CapMultiplier int64      `toml:"cap_multiplier"`
	Scenarios     []Scenario `toml:"scenario"`
}

// Scenario is one payment against a fixed ledger state
type Scenario struct {
	Name            string   `toml:"name"`
	ResidentID      string   `toml:"resident_id"`
	Amount          int64    `toml:"amount"`
	Source          string   `toml:"source"`
	CreditBalance   int64    `toml:"credit_balance"`
	CapMultiplier   int64    `toml:"cap_multiplier"`
	ReferenceAmount int64    `toml:"reference_amount"`
	Periods         []Period `toml:"period"`
	Expect          *Expect  `toml:"expect"`
}

// Period is an unpaid period in a scenario
type Period struct {
	Key        string `toml:"key"`
	Label      string `toml:"label"`
	AmountDue  int64  `toml:"amount_due"`
	AmountPaid int64  `toml:"amount_paid"`
}

// Expect holds the outcome a scenario must produce. Unset fields are not checked.
type Expect struct {
	// Error is an allocation.Code value; empty means the allocation must succeed
	Error                string   `toml:"error"`
	Applied              []int64  `toml:"applied"`
	Statuses             []string `toml:"statuses"`
	CreditConsumed       *int64   `toml:"credit_consumed"`
	CreditAdded          *int64   `toml:"credit_added"`
	NewCreditBalance     *int64   `toml:"new_credit_balance"`
	UnallocatedRemainder *int64   `toml:"unallocated_remainder"`
}

// LoadFile reads a scenario file from disk
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses scenarios from r, rejecting keys it does not know
func Decode(r io.Reader) (*File, error) {
	var file File
	meta, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown scenario key %q", undecoded[0].String())
	}

	for i := range file.Scenarios {
		s := &file.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", i+1)
		}
		if s.ResidentID == "" {
			s.ResidentID = "simulated_resident"
		}
		if s.Source == "" {
			s.Source = string(models.PaymentSourceCash)
		}
		if s.CapMultiplier == 0 {
			s.CapMultiplier = file.CapMultiplier
		}
	}

	return &file, nil
}

func (s Scenario) billingPeriods() []models.BillingPeriod {
	periods := make([]models.BillingPeriod, 0, len(s.Periods))
	for _, p := range s.Periods {
		label := p.Label
		if label == "" {
			label = p.Key
		}
		periods = append(periods, models.BillingPeriod{
			ResidentID: s.ResidentID,
			PeriodKey:  p.Key,
			Label:      label,
			AmountDue:  p.AmountDue,
			AmountPaid: p.AmountPaid,
			Status:     models.StatusAfterPayment(p.AmountDue, p.AmountPaid),
		})
	}
	return periods
}
