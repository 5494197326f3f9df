package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/simulator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "simulator",
		Short:        "Replay jimpitan payment allocations without a database",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newAllocateCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run every scenario in a TOML file and check its expectations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := simulator.LoadFile(args[0])
			if err != nil {
				return err
			}

			if failed := simulator.Report(cmd.OutOrStdout(), simulator.Run(file)); failed > 0 {
				return fmt.Errorf("%d scenarios failed", failed)
			}
			return nil
		},
	}
}

func newAllocateCmd() *cobra.Command {
	var (
		amount          int64
		source          string
		credit          int64
		periods         string
		capMultiplier   int64
		referenceAmount int64
	)

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Allocate one payment and print the result as JSON",
		Example: `  simulator allocate --amount 100000 --periods 40000,40000,40000
  simulator allocate --amount 0 --source credit --credit 50000 --periods 40000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			unpaid, err := parsePeriods(periods)
			if err != nil {
				return err
			}

			result, err := allocation.Allocate(allocation.Request{
				ResidentID:  "simulated_resident",
				GrossAmount: amount,
				Source:      models.PaymentSource(source),
			}, unpaid, credit, allocation.Policy{CapMultiplier: capMultiplier, ReferenceAmount: referenceAmount})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "gross payment amount")
	cmd.Flags().StringVar(&source, "source", string(models.PaymentSourceCash), "payment source: cash, credit or mixed")
	cmd.Flags().Int64Var(&credit, "credit", 0, "credit balance before the payment")
	cmd.Flags().StringVar(&periods, "periods", "", "comma separated unpaid periods, each AMOUNT_DUE or AMOUNT_DUE/AMOUNT_PAID")
	cmd.Flags().Int64Var(&capMultiplier, "cap-multiplier", allocation.DefaultCapMultiplier, "credit cap as a multiple of the period amount")
	cmd.Flags().Int64Var(&referenceAmount, "reference-amount", 0, "period amount used for the cap when no period is unpaid")
	return cmd
}

// parsePeriods reads "40000,40000/15000" into periods period_1, period_2, ...
func parsePeriods(list string) ([]models.BillingPeriod, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	periods := make([]models.BillingPeriod, 0, len(parts))
	for i, part := range parts {
		dueText, paidText, hasPaid := strings.Cut(strings.TrimSpace(part), "/")

		due, err := strconv.ParseInt(dueText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount due %q: %w", dueText, err)
		}
		var paid int64
		if hasPaid {
			if paid, err = strconv.ParseInt(paidText, 10, 64); err != nil {
				return nil, fmt.Errorf("invalid amount paid %q: %w", paidText, err)
			}
		}

		key := models.PeriodKeyFor(i + 1)
		periods = append(periods, models.BillingPeriod{
			PeriodKey:  key,
			Ordinal:    i + 1,
			Label:      key,
			AmountDue:  due,
			AmountPaid: paid,
			Status:     models.StatusAfterPayment(due, paid),
		})
	}
	return periods, nil
}
