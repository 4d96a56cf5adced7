// Package money holds the rounding rules shared by every monetary value the API returns.
package money

import "github.com/shopspring/decimal"

// Places is the number of decimals kept on output.
const Places = 2

// Round rounds half away from zero to two places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Float renders a rounded amount for JSON responses.
func Float(d decimal.Decimal) float64 {
	return Round(d).InexactFloat64()
}

// FloatPtr is Float for optional amounts.
func FloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := Float(*d)
	return &f
}

// Sum adds the amounts, returning zero for an empty list.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
