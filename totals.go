package cotizador

import "github.com/shopspring/decimal"

// Totals holds the three derived amounts of a quotation. Values keep full
// precision; rounding to 2 fraction digits happens at persistence or display.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// TaxLabel names the tax line for display, e.g. "IGV (18%)" for a 0.18 rate.
func TaxLabel(rate decimal.Decimal) string {
	return "IGV (" + rate.Mul(decimal.NewFromInt(100)).String() + "%)"
}

// ComputeTotals derives subtotal, tax and total from a list of line items.
// It is pure arithmetic over whatever values are supplied: validation of
// positive quantities and prices belongs to the item-entry step, not here.
func ComputeTotals(items []LineItem, taxEnabled bool, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}
	tax := decimal.Zero
	if taxEnabled {
		tax = subtotal.Mul(taxRate)
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
