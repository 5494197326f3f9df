package simulator

import (
	"fmt"
	"io"
	"strings"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"
)

// Outcome is the result of replaying one scenario
type Outcome struct {
	Scenario Scenario
	Result   *allocation.Result
	Err      error
	// Failures lists every expectation the outcome did not meet
	Failures []string
}

// Passed reports whether every expectation held
func (o Outcome) Passed() bool {
	return len(o.Failures) == 0
}

// Run allocates every scenario of the file in order
func Run(file *File) []Outcome {
	outcomes := make([]Outcome, 0, len(file.Scenarios))
	for _, s := range file.Scenarios {
		outcomes = append(outcomes, RunScenario(s))
	}
	return outcomes
}

// RunScenario allocates one scenario and checks its expectations
func RunScenario(s Scenario) Outcome {
	policy := allocation.Policy{CapMultiplier: s.CapMultiplier, ReferenceAmount: s.ReferenceAmount}
	if policy.CapMultiplier == 0 {
		policy.CapMultiplier = allocation.DefaultCapMultiplier
	}

	result, err := allocation.Allocate(allocation.Request{
		ResidentID:  s.ResidentID,
		GrossAmount: s.Amount,
		Source:      models.PaymentSource(s.Source),
	}, s.billingPeriods(), s.CreditBalance, policy)

	outcome := Outcome{Scenario: s, Result: result, Err: err}
	if result != nil && !result.Balanced() {
		outcome.Failures = append(outcome.Failures, "allocation does not balance")
	}
	if s.Expect != nil {
		outcome.Failures = append(outcome.Failures, check(*s.Expect, result, err)...)
	}
	return outcome
}

func check(expect Expect, result *allocation.Result, err error) []string {
	var failures []string

	if code := allocation.Code(err); code != expect.Error {
		failures = append(failures, fmt.Sprintf("error: want %q, got %q", expect.Error, code))
	}
	if result == nil {
		return failures
	}

	if expect.Applied != nil {
		applied := make([]int64, 0, len(result.Lines))
		for _, line := range result.Lines {
			applied = append(applied, line.AmountApplied)
		}
		if fmt.Sprint(applied) != fmt.Sprint(expect.Applied) {
			failures = append(failures, fmt.Sprintf("applied: want %v, got %v", expect.Applied, applied))
		}
	}
	if expect.Statuses != nil {
		statuses := make([]string, 0, len(result.Lines))
		for _, line := range result.Lines {
			statuses = append(statuses, string(line.ResultingStatus))
		}
		if strings.Join(statuses, ",") != strings.Join(expect.Statuses, ",") {
			failures = append(failures, fmt.Sprintf("statuses: want %v, got %v", expect.Statuses, statuses))
		}
	}

	failures = appendMismatch(failures, "credit_consumed", expect.CreditConsumed, result.CreditConsumed)
	failures = appendMismatch(failures, "credit_added", expect.CreditAdded, result.CreditAdded)
	failures = appendMismatch(failures, "new_credit_balance", expect.NewCreditBalance, result.NewCreditBalance)
	failures = appendMismatch(failures, "unallocated_remainder", expect.UnallocatedRemainder, result.UnallocatedRemainder)
	return failures
}

func appendMismatch(failures []string, field string, want *int64, got int64) []string {
	if want != nil && *want != got {
		failures = append(failures, fmt.Sprintf("%s: want %d, got %d", field, *want, got))
	}
	return failures
}

// Report writes a human readable summary of the outcomes and returns the number of failed scenarios
func Report(w io.Writer, outcomes []Outcome) int {
	failed := 0
	for _, o := range outcomes {
		status := "PASS"
		if !o.Passed() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s  %s\n", status, o.Scenario.Name)
		fmt.Fprintf(w, "      amount %d (%s), credit %d\n", o.Scenario.Amount, o.Scenario.Source, o.Scenario.CreditBalance)

		if o.Err != nil {
			fmt.Fprintf(w, "      rejected: %v\n", o.Err)
		}
		if o.Result != nil {
			for _, line := range o.Result.Lines {
				fmt.Fprintf(w, "      %-10s %8d -> %s\n", line.PeriodKey, line.AmountApplied, line.ResultingStatus)
			}
			fmt.Fprintf(w, "      credit -%d +%d = %d, unallocated %d\n",
				o.Result.CreditConsumed, o.Result.CreditAdded, o.Result.NewCreditBalance, o.Result.UnallocatedRemainder)
		}
		for _, failure := range o.Failures {
			fmt.Fprintf(w, "      ! %s\n", failure)
		}
	}

	fmt.Fprintf(w, "\n%d scenarios, %d failed\n", len(outcomes), failed)
	return failed
}
