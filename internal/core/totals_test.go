package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"invoicegen/internal/core"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(qty, price string) core.LineItem {
	return core.LineItem{Name: "item", Quantity: d(qty), UnitPrice: d(price)}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []core.LineItem
		taxRate      string
		discount     core.DiscountSpec
		currency     string
		wantSubtotal string
		wantTax      string
		wantDiscount string
		wantTotal    string
		wantSymbol   string
	}{
		{
			name:         "percent discount with tax",
			items:        []core.LineItem{item("2", "10"), item("1", "5")},
			taxRate:      "15",
			discount:     core.DiscountSpec{Kind: core.DiscountPercent, Value: d("10")},
			currency:     "USD",
			wantSubtotal: "25",
			wantTax:      "3.75",
			wantDiscount: "2.50",
			wantTotal:    "26.25",
			wantSymbol:   "$",
		},
		{
			name:         "empty item list is all zeros, not an error",
			items:        nil,
			taxRate:      "15",
			discount:     core.DiscountSpec{Kind: core.DiscountPercent, Value: d("10")},
			currency:     "GHS",
			wantSubtotal: "0",
			wantTax:      "0",
			wantDiscount: "0",
			wantTotal:    "0",
			wantSymbol:   "₵",
		},
		{
			name:         "flat discount capped at subtotal plus tax",
			items:        []core.LineItem{item("1", "10")},
			taxRate:      "0",
			discount:     core.DiscountSpec{Kind: core.DiscountFlat, Value: d("50")},
			currency:     "GHS",
			wantSubtotal: "10",
			wantTax:      "0",
			wantDiscount: "10",
			wantTotal:    "0",
			wantSymbol:   "₵",
		},
		{
			name:         "flat discount below cap applied as-is",
			items:        []core.LineItem{item("3", "20")},
			taxRate:      "10",
			discount:     core.DiscountSpec{Kind: core.DiscountFlat, Value: d("6")},
			currency:     "EUR",
			wantSubtotal: "60",
			wantTax:      "6",
			wantDiscount: "6",
			wantTotal:    "60",
			wantSymbol:   "€",
		},
		{
			name: "non-positive quantity and negative price rows are excluded",
			items: []core.LineItem{
				item("2", "10"),
				item("0", "99"),
				item("-1", "99"),
				item("5", "-3"),
			},
			taxRate:      "0",
			discount:     core.DiscountSpec{},
			currency:     "GHS",
			wantSubtotal: "20",
			wantTax:      "0",
			wantDiscount: "0",
			wantTotal:    "20",
			wantSymbol:   "₵",
		},
		{
			name:         "unknown currency falls back to default symbol",
			items:        []core.LineItem{item("1", "1")},
			taxRate:      "0",
			discount:     core.DiscountSpec{},
			currency:     "XBT",
			wantSubtotal: "1",
			wantTax:      "0",
			wantDiscount: "0",
			wantTotal:    "1",
			wantSymbol:   "₵",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.CalculateTotals(tt.items, d(tt.taxRate), tt.discount, tt.currency)

			if !got.Subtotal.Equal(d(tt.wantSubtotal)) {
				t.Errorf("subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			}
			if !got.TaxAmount.Equal(d(tt.wantTax)) {
				t.Errorf("tax = %s, want %s", got.TaxAmount, tt.wantTax)
			}
			if !got.DiscountAmount.Equal(d(tt.wantDiscount)) {
				t.Errorf("discount = %s, want %s", got.DiscountAmount, tt.wantDiscount)
			}
			if !got.Total.Equal(d(tt.wantTotal)) {
				t.Errorf("total = %s, want %s", got.Total, tt.wantTotal)
			}
			if got.CurrencySymbol != tt.wantSymbol {
				t.Errorf("symbol = %q, want %q", got.CurrencySymbol, tt.wantSymbol)
			}

			// Invariant: total = subtotal + tax − discount.
			recomposed := got.Subtotal.Add(got.TaxAmount).Sub(got.DiscountAmount)
			if !recomposed.Equal(got.Total) {
				t.Errorf("invariant broken: %s + %s - %s != %s",
					got.Subtotal, got.TaxAmount, got.DiscountAmount, got.Total)
			}
		})
	}
}

func TestCalculateTotals_Deterministic(t *testing.T) {
	items := []core.LineItem{item("2.5", "19.99"), item("1", "0.01")}
	disc := core.DiscountSpec{Kind: core.DiscountFlat, Value: d("7.77")}

	first := core.CalculateTotals(items, d("12.5"), disc, "USD")
	second := core.CalculateTotals(items, d("12.5"), disc, "USD")

	if first.Subtotal.String() != second.Subtotal.String() ||
		first.TaxAmount.String() != second.TaxAmount.String() ||
		first.DiscountAmount.String() != second.DiscountAmount.String() ||
		first.Total.String() != second.Total.String() ||
		first.CurrencySymbol != second.CurrencySymbol {
		t.Errorf("recomputation differs: %+v vs %+v", first, second)
	}
}

func TestDisplayFormatting(t *testing.T) {
	totals := core.CalculateTotals([]core.LineItem{item("2", "10")}, d("15"), core.DiscountSpec{}, "USD")

	if got := totals.DisplaySubtotal(); got != "$20.00" {
		t.Errorf("DisplaySubtotal = %q, want $20.00", got)
	}
	if got := totals.DisplayTax(); got != "$3.00" {
		t.Errorf("DisplayTax = %q, want $3.00", got)
	}
	if got := totals.DisplayTotal(); got != "$23.00" {
		t.Errorf("DisplayTotal = %q, want $23.00", got)
	}
}

func TestLineItemAmount(t *testing.T) {
	li := item("2.5", "19.99")
	if got := li.Amount(); !got.Equal(d("49.98")) {
		t.Errorf("Amount = %s, want 49.98", got)
	}
}
