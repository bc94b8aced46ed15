package cotizador

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		err      bool
	}{
		{"Generated", StatusGenerated, false},
		{"sent", StatusSent, false},
		{"ACCEPTED", StatusAccepted, false},
		{"Rejected", StatusRejected, false},
		{"Pending", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if tt.err != (err != nil) {
			t.Errorf("ParseStatus(%q): err = %v", tt.input, err)
			continue
		}
		if !tt.err && got != tt.expected {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNeedsConfirmation(t *testing.T) {
	if StatusGenerated.NeedsConfirmation() || StatusSent.NeedsConfirmation() {
		t.Error("Generated and Sent must not require confirmation")
	}
	if !StatusAccepted.NeedsConfirmation() || !StatusRejected.NeedsConfirmation() {
		t.Error("Accepted and Rejected must require confirmation")
	}
}

func TestRecordMarshalKeyOrder(t *testing.T) {
	rec := record("COT-2026-00001", "Acme", StatusGenerated, "118")
	rec.Items = []LineItem{item(t, "puerta", "1", "100")}
	rec.Subtotal = d("100")
	rec.TaxRate = d("0.18")
	rec.Tax = d("18")

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)

	// Keys appear in the canonical order, whatever Go's map iteration does.
	order := []string{`"number"`, `"baseNumber"`, `"version"`, `"createdAt"`,
		`"client"`, `"items"`, `"subtotal"`, `"taxRate"`, `"tax"`, `"total"`,
		`"currency"`, `"taxEnabled"`, `"documentPath"`, `"status"`}
	last := -1
	for _, key := range order {
		i := strings.Index(s, key)
		if i < 0 {
			t.Fatalf("key %s missing in %s", key, s)
		}
		if i < last {
			t.Errorf("key %s out of order in %s", key, s)
		}
		last = i
	}

	// Amounts are numbers, not strings.
	if strings.Contains(s, `"subtotal":"`) {
		t.Errorf("amounts should be JSON numbers: %s", s)
	}
	// A zero delivery date stays out of the document.
	if strings.Contains(s, "deliveryDate") {
		t.Errorf("zero deliveryDate should be omitted: %s", s)
	}
}
