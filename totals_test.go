package cotizador

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func item(t *testing.T, desc, qty, price string) LineItem {
	t.Helper()
	it, err := NewLineItem(desc, d(qty), d(price), "")
	if err != nil {
		t.Fatal(err)
	}
	return it
}

func TestComputeTotals(t *testing.T) {
	igv := d("0.18")

	tests := []struct {
		name       string
		items      []LineItem
		taxEnabled bool
		subtotal   string
		tax        string
		total      string
	}{
		{
			name: "with tax",
			items: []LineItem{
				item(t, "puerta", "4", "40"),
				item(t, "instalación", "1", "40"),
			},
			taxEnabled: true,
			subtotal:   "200",
			tax:        "36",
			total:      "236",
		},
		{
			name: "tax disabled",
			items: []LineItem{
				item(t, "puerta", "4", "40"),
				item(t, "instalación", "1", "40"),
			},
			taxEnabled: false,
			subtotal:   "200",
			tax:        "0",
			total:      "200",
		},
		{
			name:       "no items",
			items:      nil,
			taxEnabled: true,
			subtotal:   "0",
			tax:        "0",
			total:      "0",
		},
		{
			name: "fractional quantities keep precision",
			items: []LineItem{
				item(t, "tablero", "2.5", "33.33"),
			},
			taxEnabled: true,
			subtotal:   "83.325",
			tax:        "14.9985",
			total:      "98.3235",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, tt.taxEnabled, igv)
			if !got.Subtotal.Equal(d(tt.subtotal)) {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tt.subtotal)
			}
			if !got.Tax.Equal(d(tt.tax)) {
				t.Errorf("Tax = %s, want %s", got.Tax, tt.tax)
			}
			if !got.Total.Equal(d(tt.total)) {
				t.Errorf("Total = %s, want %s", got.Total, tt.total)
			}
		})
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	a := item(t, "a", "3", "10.10")
	b := item(t, "b", "7", "0.33")
	c := item(t, "c", "1", "99.99")

	forward := ComputeTotals([]LineItem{a, b, c}, true, d("0.18"))
	backward := ComputeTotals([]LineItem{c, b, a}, true, d("0.18"))

	if !forward.Total.Equal(backward.Total) {
		t.Errorf("totals depend on item order: %s vs %s", forward.Total, backward.Total)
	}
}

func TestTaxLabel(t *testing.T) {
	if got := TaxLabel(d("0.18")); got != "IGV (18%)" {
		t.Errorf("TaxLabel = %q", got)
	}
	if got := TaxLabel(d("0.105")); got != "IGV (10.5%)" {
		t.Errorf("TaxLabel = %q", got)
	}
}

func TestNewLineItemValidation(t *testing.T) {
	if _, err := NewLineItem("", d("1"), d("10"), ""); err == nil {
		t.Error("empty description should be rejected")
	}
	if _, err := NewLineItem("x", d("0"), d("10"), ""); err == nil {
		t.Error("zero quantity should be rejected")
	}
	if _, err := NewLineItem("x", d("-1"), d("10"), ""); err == nil {
		t.Error("negative quantity should be rejected")
	}
	if _, err := NewLineItem("x", d("1"), d("-0.01"), ""); err == nil {
		t.Error("negative price should be rejected")
	}
	it, err := NewLineItem("  x  ", d("2"), d("0"), "")
	if err != nil {
		t.Fatalf("zero price is valid: %v", err)
	}
	if it.Description != "x" {
		t.Errorf("description not trimmed: %q", it.Description)
	}
	if !it.Subtotal.Equal(d("0")) {
		t.Errorf("subtotal = %s", it.Subtotal)
	}
}
