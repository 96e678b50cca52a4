// Package schedule builds ordered repayment plans from loan terms.
//
// Two strategies exist: the flat simple-interest split the back office has
// always persisted, and a true declining-balance annuity plan. The service is
// configured with one canonical strategy and uses it for both persisted
// installments and previews.
package schedule

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mikopo-backoffice/pkg/annuity"
)

type Strategy string

const (
	// StrategyFlat: totalInterest = P*r*n/100, level amount over n monthly
	// or 4n weekly periods.
	StrategyFlat Strategy = "flat"
	// StrategyAnnuity: level annuity payment with declining-balance
	// interest, weekly periods = round(n*4.33).
	StrategyAnnuity Strategy = "annuity"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFlat, StrategyAnnuity:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown schedule strategy %q", s)
}

// Terms are the loan parameters a plan derives from. AnnualRatePct is a
// percentage (12 means 12% p.a.).
type Terms struct {
	Principal     decimal.Decimal
	AnnualRatePct float64
	TermMonths    int
	Weekly        bool
}

// Line is one planned installment. RunningBalance is the amount still owed
// after this installment is paid, clamped to zero on the final line.
type Line struct {
	Seq            int
	DueDate        time.Time
	Amount         decimal.Decimal
	Principal      decimal.Decimal
	Interest       decimal.Decimal
	RunningBalance decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Build produces the full ordered plan anchored at anchor: the i-th line is
// due i calendar months (or 7*i days) after it. Due dates are date-only UTC.
func Build(strategy Strategy, t Terms, anchor time.Time) ([]Line, error) {
	if t.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("principal must be positive, got %s", t.Principal)
	}
	if t.TermMonths <= 0 {
		return nil, fmt.Errorf("term must be positive, got %d months", t.TermMonths)
	}
	if t.AnnualRatePct < 0 {
		return nil, fmt.Errorf("rate must not be negative, got %v", t.AnnualRatePct)
	}
	switch strategy {
	case StrategyFlat:
		return buildFlat(t, anchor), nil
	case StrategyAnnuity:
		return buildAnnuity(t, anchor), nil
	}
	return nil, fmt.Errorf("unknown schedule strategy %q", strategy)
}

func buildFlat(t Terms, anchor time.Time) []Line {
	periods := t.TermMonths
	if t.Weekly {
		periods = t.TermMonths * 4
	}
	totalInterest := t.Principal.
		Mul(decimal.NewFromFloat(t.AnnualRatePct)).
		Mul(decimal.NewFromInt(int64(t.TermMonths))).
		Div(hundred).
		Round(2)
	total := t.Principal.Add(totalInterest)

	n := decimal.NewFromInt(int64(periods))
	amount := total.DivRound(n, 2)
	interest := totalInterest.DivRound(n, 2)

	lines := make([]Line, 0, periods)
	outstanding := total
	for i := 1; i <= periods; i++ {
		a, in := amount, interest
		if i == periods {
			// absorb rounding drift so the plan sums exactly
			a = total.Sub(amount.Mul(decimal.NewFromInt(int64(periods - 1))))
			in = totalInterest.Sub(interest.Mul(decimal.NewFromInt(int64(periods - 1))))
		}
		outstanding = outstanding.Sub(a)
		if outstanding.IsNegative() || i == periods {
			outstanding = decimal.Zero
		}
		lines = append(lines, Line{
			Seq:            i,
			DueDate:        dueDate(anchor, i, t.Weekly),
			Amount:         a,
			Principal:      a.Sub(in),
			Interest:       in,
			RunningBalance: outstanding,
		})
	}
	return lines
}

func buildAnnuity(t Terms, anchor time.Time) []Line {
	var (
		periods int
		rate    float64
		payment decimal.Decimal
	)
	if t.Weekly {
		periods = annuity.WeeklyPeriods(t.TermMonths)
		rate = t.AnnualRatePct / 100 / 52
		payment = annuity.WeeklyPayment(t.Principal, t.AnnualRatePct, t.TermMonths)
	} else {
		periods = t.TermMonths
		rate = t.AnnualRatePct / 100 / 12
		payment = annuity.MonthlyPayment(t.Principal, t.AnnualRatePct, t.TermMonths)
	}

	lines := make([]Line, 0, periods)
	balance := t.Principal
	for i := 1; i <= periods; i++ {
		interest := balance.Mul(decimal.NewFromFloat(rate)).Round(2)
		principal := payment.Sub(interest)
		amount := payment
		if i == periods || principal.GreaterThanOrEqual(balance) {
			// final installment clears whatever is left
			principal = balance
			amount = principal.Add(interest)
		}
		balance = balance.Sub(principal)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		lines = append(lines, Line{
			Seq:            i,
			DueDate:        dueDate(anchor, i, t.Weekly),
			Amount:         amount,
			Principal:      principal,
			Interest:       interest,
			RunningBalance: balance,
		})
		if balance.IsZero() && i < periods {
			break
		}
	}
	return lines
}

func dueDate(anchor time.Time, seq int, weekly bool) time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	if weekly {
		return day.AddDate(0, 0, 7*seq)
	}
	return day.AddDate(0, seq, 0)
}
