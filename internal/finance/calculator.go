// Package finance implements pure financial formulas. All functions are
// deterministic and side-effect free.
//
// Results are rounded to two decimal places using round-half-away-from-zero
// (half-up over the non-negative domain these formulas operate in).
package finance

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/harperdean/pocketwise/internal/common"
)

// DefaultCompoundsPerYear is monthly compounding, the conventional default.
const DefaultCompoundsPerYear = 12

// CompoundInterest returns the future value of principal compounded at
// annualRate for the given number of years:
//
//	amount = principal * (1 + rate/n)^(n*years)
//
// It fails with ErrInvalidArgument if principal or years is negative or
// compoundsPerYear is not positive.
func CompoundInterest(principal, annualRate, years float64, compoundsPerYear int) (float64, error) {
	if principal < 0 {
		return 0, fmt.Errorf("%w: principal must be non-negative, got %.2f", common.ErrInvalidArgument, principal)
	}
	if years < 0 {
		return 0, fmt.Errorf("%w: years must be non-negative, got %.2f", common.ErrInvalidArgument, years)
	}
	if compoundsPerYear <= 0 {
		return 0, fmt.Errorf("%w: compounds per year must be positive, got %d", common.ErrInvalidArgument, compoundsPerYear)
	}

	n := float64(compoundsPerYear)
	amount := principal * math.Pow(1+annualRate/n, n*years)

	return roundCents(amount), nil
}

// AmortizedPayment returns the fixed monthly payment that fully retires a
// loan's principal and interest over the given term. A zero rate degrades
// to straight division of the principal across the payments.
//
// It fails with ErrInvalidArgument if the term yields no payments.
func AmortizedPayment(loanAmount, annualRate float64, years int) (float64, error) {
	numPayments := years * 12
	if numPayments <= 0 {
		return 0, fmt.Errorf("%w: loan term must yield at least one payment, got %d years", common.ErrInvalidArgument, years)
	}

	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return roundCents(loanAmount / float64(numPayments)), nil
	}

	growth := math.Pow(1+monthlyRate, float64(numPayments))
	payment := loanAmount * monthlyRate * growth / (growth - 1)

	return roundCents(payment), nil
}

// roundCents rounds half away from zero to two decimal places.
func roundCents(v float64) float64 {
	r, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return r
}
