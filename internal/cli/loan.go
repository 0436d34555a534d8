package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/muhamadbasim/Lokanant/internal/core/domain"
	"github.com/muhamadbasim/Lokanant/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type loanFlags struct {
	principal string
	rate      string
	term      int
	maxAmount string
	maxTerm   int
}

func (f *loanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.principal, "principal", "", "loan principal")
	cmd.Flags().StringVar(&f.rate, "rate", "", "annual interest rate in percent, e.g. 8.5")
	cmd.Flags().IntVar(&f.term, "term", 0, "term in months")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("term")
}

// parse returns the offer and principal. Without --max-amount and --max-term the
// request itself is the offer.
func (f *loanFlags) parse() (domain.LoanParameters, decimal.Decimal, error) {
	principal, err := decimal.NewFromString(f.principal)
	if err != nil {
		return domain.LoanParameters{}, decimal.Zero, fmt.Errorf("invalid --principal %q: %w", f.principal, err)
	}
	rate, err := decimal.NewFromString(f.rate)
	if err != nil {
		return domain.LoanParameters{}, decimal.Zero, fmt.Errorf("invalid --rate %q: %w", f.rate, err)
	}
	params := domain.LoanParameters{MaxAmount: principal, AnnualInterestRatePercent: rate, TermMonths: f.term}
	if f.maxAmount != "" {
		if params.MaxAmount, err = decimal.NewFromString(f.maxAmount); err != nil {
			return domain.LoanParameters{}, decimal.Zero, fmt.Errorf("invalid --max-amount %q: %w", f.maxAmount, err)
		}
	}
	if f.maxTerm > 0 {
		params.TermMonths = f.maxTerm
	}
	return params, principal, nil
}

// NewLoanCommand creates the loan command group.
func NewLoanCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Simulate loan repayments",
	}
	cmd.AddCommand(newLoanQuoteCommand(rootOpts))
	cmd.AddCommand(newLoanScheduleCommand(rootOpts))
	return cmd
}

func newLoanQuoteCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute the monthly installment and totals for a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, principal, err := flags.parse()
			if err != nil {
				return err
			}
			quote, err := accounting.QuoteLoan(params, principal, flags.term, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, quote)
			}
			fmt.Fprintf(out, "Principal:        %s\n", quote.Principal.StringFixed(2))
			fmt.Fprintf(out, "Interest rate:    %s%% p.a.\n", quote.AnnualInterestRatePercent.String())
			fmt.Fprintf(out, "Term:             %d months\n", quote.TermMonths)
			fmt.Fprintf(out, "Monthly payment:  %s\n", quote.RoundedMonthlyPayment.String())
			fmt.Fprintf(out, "Total repayment:  %s\n", quote.TotalRepayment.String())
			fmt.Fprintf(out, "Total interest:   %s\n", quote.TotalInterest.String())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.maxAmount, "max-amount", "", "largest principal on offer (defaults to --principal)")
	cmd.Flags().IntVar(&flags.maxTerm, "max-term", 0, "longest term on offer (defaults to --term)")
	return cmd
}

func newLoanScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &loanFlags{}
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month amortization schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, principal, err := flags.parse()
			if err != nil {
				return err
			}
			schedule, err := accounting.AmortizationSchedule(principal, params.AnnualInterestRatePercent, flags.term)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, schedule)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Month\tPayment\tInterest\tPrincipal\tRemaining\t")
			for _, row := range schedule {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", row.Month,
					row.Payment.StringFixed(2), row.Interest.StringFixed(2),
					row.Principal.StringFixed(2), row.RemainingBalance.StringFixed(2))
			}
			return tw.Flush()
		},
	}
	flags.register(cmd)
	return cmd
}
