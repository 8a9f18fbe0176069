package loan

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// MonthlyPayment computes the level annuity payment for a principal at the
// given annual rate over the term: P*r*(1+r)^n / ((1+r)^n - 1), with r the
// monthly rate. Rounded to the nearest whole currency unit.
func MonthlyPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	r := annualRate.Div(decimal.NewFromInt(12))
	if r.IsZero() {
		return principal.Div(n).Round(0)
	}
	growth := one.Add(r).Pow(n)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(one)).Round(0)
}
