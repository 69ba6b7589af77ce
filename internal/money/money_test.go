package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j2425716/facturador/internal/money"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestBaseFromTotal(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  string
	}{
		{"inclusive 200", "200.00", "169.49"},
		{"exact division", "118.00", "100.00"},
		{"single sol", "1.00", "0.85"},
		{"zero", "0.00", "0.00"},
		{"small amount", "0.59", "0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.BaseFromTotal(dec(t, tt.total))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestTaxFromBase(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"base 100", "100.00", "18.00"},
		{"base 169.49", "169.49", "30.51"},
		{"zero", "0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.TaxFromBase(dec(t, tt.base))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

// The rounding policy is round-half-up on exact decimals: a quotient or
// product landing exactly on a half cent goes up, with no binary-float
// artifacts in the intermediate.
func TestRoundHalfUp(t *testing.T) {
	// 11.8059 / 1.18 is exactly 10.005
	assert.Equal(t, "10.01", money.BaseFromTotal(dec(t, "11.8059")).StringFixed(2))

	// 91.75 * 0.18 is exactly 16.515
	assert.Equal(t, "16.52", money.TaxFromBase(dec(t, "91.75")).StringFixed(2))
}

func TestLineTotalNoIntermediateRounding(t *testing.T) {
	// 3 * 33.335 = 100.005, kept exact
	got := money.LineTotal(3, dec(t, "33.335"))
	assert.True(t, got.Equal(dec(t, "100.005")), "got %s", got)
}

func TestComputeTotalsSingleLine(t *testing.T) {
	// Client "Acme", one item ("Consulting", 2, 100.00), no discount:
	// the per-line-then-sum policy reproduces the inclusive total.
	totals := money.ComputeTotals([]money.Item{
		{Quantity: 2, UnitPrice: dec(t, "100.00")},
	}, decimal.Zero)

	assert.Equal(t, "169.49", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "30.51", totals.Tax.StringFixed(2))
	assert.Equal(t, "200.00", totals.Total.StringFixed(2))
}

// Rounding happens per line, then the bases are summed. Two lines of 1.00
// give a subtotal of 1.70, not BaseFromTotal(2.00) = 1.69.
func TestComputeTotalsRoundsPerLine(t *testing.T) {
	totals := money.ComputeTotals([]money.Item{
		{Quantity: 1, UnitPrice: dec(t, "1.00")},
		{Quantity: 1, UnitPrice: dec(t, "1.00")},
	}, decimal.Zero)

	assert.Equal(t, "1.70", totals.Subtotal.StringFixed(2))
	aggregate := money.BaseFromTotal(dec(t, "2.00"))
	assert.Equal(t, "1.69", aggregate.StringFixed(2))
}

func TestComputeTotalsAppliesDiscount(t *testing.T) {
	totals := money.ComputeTotals([]money.Item{
		{Quantity: 2, UnitPrice: dec(t, "100.00")},
	}, dec(t, "50.00"))

	assert.Equal(t, "150.00", totals.Total.StringFixed(2))
	assert.Equal(t, "50.00", totals.Discount.StringFixed(2))
}

// The total is not clamped by the engine; the input boundary is responsible
// for rejecting oversized discounts.
func TestComputeTotalsDoesNotClamp(t *testing.T) {
	totals := money.ComputeTotals([]money.Item{
		{Quantity: 1, UnitPrice: dec(t, "1.18")},
	}, dec(t, "10.00"))

	assert.Equal(t, "-8.82", totals.Total.StringFixed(2))
}

// Backing the base out of a tax-inclusive total and re-adding the tax
// reconstructs the total within one cent.
func TestBaseAndTaxReconstructTotal(t *testing.T) {
	totals := []string{"0.01", "0.59", "1.00", "99.99", "118.00", "200.00", "12345.67", "0.03"}
	cent := dec(t, "0.01")

	for _, s := range totals {
		total := dec(t, s)
		base := money.BaseFromTotal(total)
		reconstructed := base.Add(money.TaxFromBase(base))
		drift := reconstructed.Sub(total).Abs()
		assert.True(t, drift.LessThanOrEqual(cent),
			"total %s reconstructed as %s (drift %s)", s, reconstructed, drift)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "S/ 169.49", money.Format(dec(t, "169.49")))
	assert.Equal(t, "S/ 200.00", money.Format(dec(t, "200")))
	assert.Equal(t, "S/ 0.00", money.Format(decimal.Zero))
}
