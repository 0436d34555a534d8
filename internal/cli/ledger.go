package cli

import (
	"fmt"
	"time"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/muhamadbasim/Lokanant/internal/ledgerfile"
	"github.com/muhamadbasim/Lokanant/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// LedgerSummary is the JSON output of ledger summarize.
type LedgerSummary struct {
	Stats          domain.TransactionStats   `json:"stats"`
	ClosingBalance decimal.Decimal           `json:"closingBalance"`
	Monthly        domain.MonthlyPerformance `json:"monthly"`
	Warnings       []string                  `json:"warnings,omitempty"`
}

// NewLedgerCommand creates the ledger command group.
func NewLedgerCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect exported ledgers",
	}
	cmd.AddCommand(newLedgerSummarizeCommand(rootOpts))
	return cmd
}

func newLedgerSummarizeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		file   string
		months int
	)
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print totals and monthly performance of a ledger file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := ledgerfile.Load(file)
			if err != nil {
				return err
			}

			stats, warnings := accounting.SummarizeTransactions(txns)
			closing := accounting.LatestBalance(txns)
			perf, _ := accounting.MonthlyPerformance(txns, months)

			messages := make([]string, len(warnings))
			for i, w := range warnings {
				messages[i] = w.Error()
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, LedgerSummary{Stats: stats, ClosingBalance: closing, Monthly: perf, Warnings: messages})
			}

			fmt.Fprintf(out, "Transactions:   %d\n", stats.TransactionCount)
			fmt.Fprintf(out, "Total income:   %s\n", stats.TotalIncome.String())
			fmt.Fprintf(out, "Total expense:  %s\n", stats.TotalExpense.String())
			fmt.Fprintf(out, "Net profit:     %s\n", stats.NetProfit.String())
			fmt.Fprintf(out, "Closing balance: %s\n", closing.String())
			if len(perf.Months) > 0 {
				fmt.Fprintln(out)
				for _, m := range perf.Months {
					label := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
					fmt.Fprintf(out, "%s  revenue %s  expenses %s  profit %s\n", label, m.Revenue, m.Expenses, m.Profit)
				}
				fmt.Fprintf(out, "Revenue change: %s%%\n", perf.RevenueChangePercent.StringFixed(2))
			}
			for _, msg := range messages {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "ledger file (YAML or JSON)")
	cmd.Flags().IntVar(&months, "months", 6, "number of months in the performance view")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
