package cotizador

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestHistoryRoundTrip(t *testing.T) {
	h := NewHistory()
	rec := record("COT-2026-00042-V2", "Acme SAC", StatusSent, "236")
	rec.Client.Email = "ventas@acme.pe"
	rec.DeliveryDate = NewDate(2026, time.September, 15)
	rec.Items = []LineItem{item(t, "puerta", "4", "40"), item(t, "instalación", "1", "40")}
	rec.Subtotal = d("200")
	rec.TaxRate = d("0.18")
	rec.Tax = d("36")
	rec.DocumentPath = "Acme_SAC - COT-2026-00042-V2.pdf"
	rec.Terms = "Precios incluyen IGV"
	if err := h.Append(rec); err != nil {
		t.Fatal(err)
	}

	var first bytes.Buffer
	if err := EncodeHistory(&first, h); err != nil {
		t.Fatal(err)
	}

	back, err := DecodeHistory(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	var second bytes.Buffer
	if err := EncodeHistory(&second, back); err != nil {
		t.Fatal(err)
	}

	// Encoding what was decoded must reproduce the file byte for byte.
	if first.String() != second.String() {
		t.Errorf("encode/decode/encode is not idempotent:\n%s\nvs\n%s", first.String(), second.String())
	}

	got := back.Find("COT-2026-00042-V2")
	if got == nil {
		t.Fatal("record lost in round trip")
	}
	if got.BaseNumber != "COT-2026-00042" || got.Version != 2 {
		t.Errorf("base/version = %q/%d", got.BaseNumber, got.Version)
	}
	if len(got.Items) != 2 || got.Items[0].Description != "puerta" {
		t.Errorf("items = %v", got.Items)
	}
}

func TestDecodeHistoryDefaults(t *testing.T) {
	// An early file: no baseNumber, no version, spelled-out currency,
	// no taxEnabled, empty status.
	raw := `[
  {
    "number": "COT-2024-00007-V3",
    "createdAt": "2024-03-01 09:30",
    "client": {"name": "Acme"},
    "items": [],
    "subtotal": 100,
    "taxRate": 0.18,
    "tax": 18,
    "total": 118,
    "currency": "SOLES",
    "documentPath": "Acme - COT-2024-00007-V3.pdf",
    "status": ""
  }
]`
	h, err := DecodeHistory(strings.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	rec := h.Find("COT-2024-00007-V3")
	if rec == nil {
		t.Fatal("record not decoded")
	}
	if rec.BaseNumber != "COT-2024-00007" || rec.Version != 3 {
		t.Errorf("base/version = %q/%d, want derived from the number", rec.BaseNumber, rec.Version)
	}
	if rec.Currency != PEN {
		t.Errorf("currency = %s, want PEN from legacy SOLES", rec.Currency)
	}
	if !rec.TaxEnabled {
		t.Error("missing taxEnabled should default to true")
	}
	if rec.Status != StatusGenerated {
		t.Errorf("status = %q, want Generated", rec.Status)
	}
}

func TestDecodeHistoryRejectsGarbage(t *testing.T) {
	if _, err := DecodeHistory(strings.NewReader("not json")); err == nil {
		t.Error("expected an error")
	}
	if _, err := DecodeHistory(strings.NewReader(`[{"number":"X","status":"Maybe"}]`)); err == nil {
		t.Error("an unknown status should fail the decode")
	}
	if _, err := DecodeHistory(strings.NewReader(`[{"number":"X","currency":"XXX"}]`)); err == nil {
		t.Error("an unknown currency should fail the decode")
	}
}

func TestDecodeHistoryEmpty(t *testing.T) {
	h, err := DecodeHistory(strings.NewReader("[]"))
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 0 {
		t.Errorf("Len = %d", h.Len())
	}
}
