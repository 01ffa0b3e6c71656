package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/finance"
	"github.com/harperdean/pocketwise/internal/money"
)

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run financial calculations",
		Long:  `Compute compound interest growth and amortized loan payments.`,
	}

	cmd.AddCommand(calcInterestCmd())
	cmd.AddCommand(calcPaymentCmd())

	return cmd
}

func calcInterestCmd() *cobra.Command {
	var (
		principal        float64
		rate             float64
		years            float64
		compoundsPerYear int
	)

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Compound interest growth",
		Long:  `Future value of a principal at a fixed annual rate, compounded periodically.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			amount, err := finance.CompoundInterest(principal, rate, years, compoundsPerYear)
			if err != nil {
				return common.NewUserError("check the interest inputs", err)
			}

			growth := amount - principal
			fmt.Printf("%s grows to %s over %.1f years (%.2f%% annual, %d compounds/year)\n",
				money.FormatCurrency(principal), money.FormatCurrency(amount),
				years, rate*100, compoundsPerYear)
			fmt.Printf("interest earned: %s\n", money.FormatCurrency(growth))

			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "starting principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate (e.g. 0.05 for 5%)")
	cmd.Flags().Float64Var(&years, "years", 0, "investment horizon in years")
	cmd.Flags().IntVar(&compoundsPerYear, "compounds", finance.DefaultCompoundsPerYear, "compounding periods per year")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func calcPaymentCmd() *cobra.Command {
	var (
		loan  float64
		rate  float64
		years int
	)

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Amortized monthly loan payment",
		Long:  `Fixed monthly payment that fully retires a loan over its term.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			payment, err := finance.AmortizedPayment(loan, rate, years)
			if err != nil {
				return common.NewUserError("check the loan inputs", err)
			}

			numPayments := years * 12
			total := payment * float64(numPayments)
			fmt.Printf("monthly payment: %s (%d payments)\n", money.FormatCurrency(payment), numPayments)
			fmt.Printf("total paid: %s, interest: %s\n",
				money.FormatCurrency(total), money.FormatCurrency(total-loan))

			return nil
		},
	}

	cmd.Flags().Float64Var(&loan, "amount", 0, "loan principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate (e.g. 0.05 for 5%)")
	cmd.Flags().IntVar(&years, "years", 0, "loan term in years")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}
