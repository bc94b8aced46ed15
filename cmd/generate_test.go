package cmd

import (
	"path/filepath"
	"testing"

	"github.com/etnz/cotizador"
	"github.com/shopspring/decimal"
)

func TestBuildDocument(t *testing.T) {
	cfg := cotizador.DefaultConfig()
	cfg.Company.Name = "Acme SAC"
	cfg.Company.TaxID = "20123456789"

	item, err := cotizador.NewLineItem("Puerta", decimal.NewFromInt(4), decimal.NewFromInt(350), "")
	if err != nil {
		t.Fatal(err)
	}
	item.Image = "COT-2026-00042-01.jpg"

	rec := &cotizador.QuotationRecord{
		Number:     "COT-2026-00042",
		CreatedAt:  "2026-08-31 14:05",
		Client:     cotizador.Client{Name: "Constructora Andina"},
		Items:      []cotizador.LineItem{item},
		Subtotal:   decimal.NewFromInt(1400),
		TaxRate:    decimal.NewFromFloat(0.18),
		Tax:        decimal.NewFromInt(252),
		Total:      decimal.NewFromInt(1652),
		Currency:   cotizador.PEN,
		TaxEnabled: true,
		Status:     cotizador.StatusGenerated,
	}

	doc := buildDocument(cfg, rec)

	if doc.CompanyName != "Acme SAC" || doc.Number != "COT-2026-00042" {
		t.Errorf("header = %q %q", doc.CompanyName, doc.Number)
	}
	if doc.Date != "2026-08-31" {
		t.Errorf("date = %q, want the date part of the stamp", doc.Date)
	}
	if doc.TaxLabel != "IGV (18%)" {
		t.Errorf("tax label = %q", doc.TaxLabel)
	}
	if doc.Total != "S/1,652.00" {
		t.Errorf("total = %q", doc.Total)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("lines = %d", len(doc.Lines))
	}
	line := doc.Lines[0]
	if line.Subtotal != "S/1,400.00" || line.Code != "REF-01" {
		t.Errorf("line = %+v", line)
	}
	if line.Image != filepath.Join(cfg.ReferencesDir, "COT-2026-00042-01.jpg") {
		t.Errorf("image path = %q", line.Image)
	}
}
