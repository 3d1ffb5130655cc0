package core

import "github.com/shopspring/decimal"

// currencySymbols maps the allow-listed ISO codes to display symbols. Unknown
// codes fall back to defaultCurrencySymbol.
var currencySymbols = map[string]string{
	"GHS": "₵",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
	"ZAR": "R",
	"KES": "KSh",
	"INR": "₹",
	"JPY": "¥",
	"AUD": "A$",
}

const defaultCurrencySymbol = "₵"

// CurrencySymbol resolves a currency code to its display symbol.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return defaultCurrencySymbol
}

var oneHundred = decimal.NewFromInt(100)

// CalculateTotals derives the financial summary for a document. This is the
// single canonical totals algorithm:
//
//	subtotal = Σ qty×price over items with qty > 0 and price ≥ 0
//	tax      = subtotal × taxRatePercent/100
//	discount = percent: subtotal × value/100
//	           flat:    min(value, subtotal+tax)
//	total    = subtotal + tax − discount
//
// Items with non-positive quantity or negative price are excluded from the
// accumulation, not clamped. All outputs are rounded to 2 decimal places.
// The function is deterministic and holds no state: recomputing on the same
// inputs yields an identical result, and an empty item list yields all zeros.
func CalculateTotals(items []LineItem, taxRatePercent decimal.Decimal, discount DiscountSpec, currencyCode string) TotalsResult {
	subtotal := decimal.Zero
	for _, item := range items {
		if !item.Quantity.IsPositive() || item.UnitPrice.IsNegative() {
			continue
		}
		subtotal = subtotal.Add(item.Quantity.Mul(item.UnitPrice))
	}

	taxAmount := subtotal.Mul(taxRatePercent.Div(oneHundred))

	var discountAmount decimal.Decimal
	switch discount.Kind {
	case DiscountFlat:
		discountAmount = decimal.Min(discount.Value, subtotal.Add(taxAmount))
	default:
		discountAmount = subtotal.Mul(discount.Value.Div(oneHundred))
	}

	total := subtotal.Add(taxAmount).Sub(discountAmount)

	return TotalsResult{
		Subtotal:       subtotal.Round(2),
		TaxAmount:      taxAmount.Round(2),
		DiscountAmount: discountAmount.Round(2),
		Total:          total.Round(2),
		CurrencySymbol: CurrencySymbol(currencyCode),
	}
}

// FormatAmount renders a monetary value for display: currency symbol followed
// by the amount with exactly two decimal places.
func FormatAmount(symbol string, v decimal.Decimal) string {
	return symbol + v.StringFixed(2)
}

// DisplaySubtotal and friends render the pre-rounded totals with the resolved
// currency symbol. Renderers must use these (or StringFixed) rather than raw
// floats.
func (t TotalsResult) DisplaySubtotal() string { return FormatAmount(t.CurrencySymbol, t.Subtotal) }

func (t TotalsResult) DisplayTax() string { return FormatAmount(t.CurrencySymbol, t.TaxAmount) }

func (t TotalsResult) DisplayDiscount() string {
	return FormatAmount(t.CurrencySymbol, t.DiscountAmount)
}

func (t TotalsResult) DisplayTotal() string { return FormatAmount(t.CurrencySymbol, t.Total) }
