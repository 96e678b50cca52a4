// Package annuity computes level-payment loan amortization figures.
//
// Rates are annual percentages (12 means 12% p.a.). All arithmetic stays in
// shopspring/decimal so payments are exact to the cent regardless of the
// principal's magnitude.
package annuity

import (
	"math"

	"github.com/shopspring/decimal"
)

// WeeksPerMonth converts a term in months to weekly periods.
const WeeksPerMonth = 4.33

// WeeklyPeriods returns the number of weekly installments for a term in
// months, rounded to the nearest whole week.
func WeeklyPeriods(termMonths int) int {
	return int(math.Round(float64(termMonths) * WeeksPerMonth))
}

// MonthlyPayment returns the level monthly payment for a loan of principal P
// at annualRatePct over termMonths periods.
func MonthlyPayment(principal decimal.Decimal, annualRatePct float64, termMonths int) decimal.Decimal {
	rate := decimal.NewFromFloat(annualRatePct).Div(decimal.NewFromInt(1200))
	return payment(principal, rate, termMonths)
}

// WeeklyPayment returns the level weekly payment; the term in months is
// converted to weeks via WeeksPerMonth.
func WeeklyPayment(principal decimal.Decimal, annualRatePct float64, termMonths int) decimal.Decimal {
	rate := decimal.NewFromFloat(annualRatePct).Div(decimal.NewFromInt(5200))
	return payment(principal, rate, WeeklyPeriods(termMonths))
}

// payment applies payment = P*i*(1+i)^n / ((1+i)^n - 1). The formula is
// undefined at i = 0, so zero-rate loans split the principal evenly.
func payment(principal, periodicRate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(periods))
	if periodicRate.IsZero() {
		return principal.DivRound(n, 2)
	}
	one := decimal.NewFromInt(1)
	factor := one.Add(periodicRate).Pow(n)
	return principal.Mul(periodicRate).Mul(factor).DivRound(factor.Sub(one), 2)
}
