// Package money implements the IGV tax arithmetic for tax-inclusive pricing.
//
// Entered unit prices already contain IGV (18%). The engine backs the taxable
// base out of each tax-inclusive line total, rounds it to two decimal places
// with round-half-up, and sums the per-line bases. Tax is then computed on
// the summed base. Rounding is per line, not on the aggregate: the subtotal
// of several lines is generally not BaseFromTotal applied to their combined
// total, and that is the intended policy.
//
// All arithmetic runs on exact decimals. Binary floats must never touch a
// stored or displayed amount.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IGVRate is the fixed tax rate applied to the tax-exclusive base.
var IGVRate = decimal.New(18, -2) // 0.18

var one = decimal.New(1, 0)

// Totals is the computed totals block of an invoice.
type Totals struct {
	Subtotal decimal.Decimal // sum of per-line taxable bases
	Tax      decimal.Decimal // IGV on the subtotal
	Discount decimal.Decimal
	Total    decimal.Decimal // subtotal + tax - discount
}

// Item is the minimal line view the engine needs.
type Item struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// BaseFromTotal returns the taxable base backed out of a tax-inclusive
// amount: total / 1.18, rounded half-up to two decimal places.
// Callers must not pass negative amounts.
func BaseFromTotal(totalInclTax decimal.Decimal) decimal.Decimal {
	return roundHalfUp(totalInclTax.Div(one.Add(IGVRate)))
}

// TaxFromBase returns the IGV on a taxable base: base * 0.18, rounded
// half-up to two decimal places.
func TaxFromBase(base decimal.Decimal) decimal.Decimal {
	return roundHalfUp(base.Mul(IGVRate))
}

// LineTotal returns quantity * unitPrice with no intermediate rounding.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeTotals derives the totals block for a set of line items and a
// discount. Each line's base is rounded independently before summation.
// The total is not clamped: a discount larger than subtotal + tax yields a
// negative total, which the input boundary is expected to prevent.
func ComputeTotals(items []Item, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(BaseFromTotal(LineTotal(item.Quantity, item.UnitPrice)))
	}
	tax := TaxFromBase(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}
}

// Format renders an amount as a currency string, e.g. "S/ 169.49".
func Format(d decimal.Decimal) string {
	return fmt.Sprintf("S/ %s", d.StringFixed(2))
}

// roundHalfUp rounds to two decimal places, halves away from zero.
// The engine only sees non-negative amounts, so away-from-zero and half-up
// coincide.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
