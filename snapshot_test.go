package cotizador

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Acme SAC", "Acme_SAC"},
		{"a/b\\c:d", "abcd"},
		{"Señor & Cía.", "Seor_Ca."},
		{"  spaced  ", "spaced"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.expected {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDocumentFilename(t *testing.T) {
	if got := DocumentFilename("Acme SAC", "COT-2026-00001"); got != "Acme_SAC - COT-2026-00001.pdf" {
		t.Errorf("DocumentFilename = %q", got)
	}
	if got := DocumentFilename("", "COT-2026-00001"); got != "SinCliente - COT-2026-00001.pdf" {
		t.Errorf("DocumentFilename with no client = %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "puerta.JPG")
	if err := os.WriteFile(image, []byte("fake image bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	draft := NewDraft(cfg)
	draft.Client = Client{Name: "Acme SAC", Email: "ventas@acme.pe"}
	if err := draft.AddItem("puerta", d("4"), d("40"), image); err != nil {
		t.Fatal(err)
	}
	if err := draft.AddItem("instalación", d("1"), d("40"), ""); err != nil {
		t.Fatal(err)
	}

	refs := filepath.Join(dir, "Referencias")
	rec, err := draft.Snapshot("COT-2026-00042", refs)
	if err != nil {
		t.Fatal(err)
	}

	if rec.Number != "COT-2026-00042" || rec.BaseNumber != "COT-2026-00042" || rec.Version != 1 {
		t.Errorf("numbering = %q %q %d", rec.Number, rec.BaseNumber, rec.Version)
	}
	if rec.Status != StatusGenerated {
		t.Errorf("status = %s", rec.Status)
	}
	if !rec.Subtotal.Equal(d("200")) || !rec.Tax.Equal(d("36")) || !rec.Total.Equal(d("236")) {
		t.Errorf("totals = %s %s %s", rec.Subtotal, rec.Tax, rec.Total)
	}
	if rec.DocumentPath != "Acme_SAC - COT-2026-00042.pdf" {
		t.Errorf("document path = %q", rec.DocumentPath)
	}

	// The image moved into the references directory, renamed by number and
	// position, extension lowercased.
	if rec.Items[0].Image != "COT-2026-00042-01.jpg" {
		t.Errorf("relocated image = %q", rec.Items[0].Image)
	}
	if _, err := os.Stat(filepath.Join(refs, "COT-2026-00042-01.jpg")); err != nil {
		t.Errorf("relocated file missing: %v", err)
	}
	if rec.Items[1].Image != "" {
		t.Errorf("item without image gained %q", rec.Items[1].Image)
	}

	// The draft itself is untouched by the snapshot.
	if draft.Items[0].Image != image {
		t.Errorf("draft item mutated: %q", draft.Items[0].Image)
	}
}

func TestSnapshotMissingImage(t *testing.T) {
	cfg := DefaultConfig()
	draft := NewDraft(cfg)
	draft.Client = Client{Name: "Acme"}
	if err := draft.AddItem("puerta", d("1"), d("10"), "/does/not/exist.png"); err != nil {
		t.Fatal(err)
	}

	rec, err := draft.Snapshot("COT-2026-00001", filepath.Join(t.TempDir(), "refs"))
	if err != nil {
		t.Fatalf("a missing reference image must not fail the snapshot: %v", err)
	}
	if rec.Items[0].Image != "" {
		t.Errorf("unreadable image should be dropped, got %q", rec.Items[0].Image)
	}
}

func TestSnapshotRejectsInvalidDraft(t *testing.T) {
	cfg := DefaultConfig()

	draft := NewDraft(cfg)
	if _, err := draft.Snapshot("COT-2026-00001", t.TempDir()); err == nil {
		t.Error("a draft without client and items should be rejected")
	}

	draft.Client.Name = "Acme"
	if _, err := draft.Snapshot("COT-2026-00001", t.TempDir()); err == nil {
		t.Error("a draft without items should be rejected")
	}
}

func TestDraftItemOperations(t *testing.T) {
	cfg := DefaultConfig()
	draft := NewDraft(cfg)

	if err := draft.AddItem("a", d("1"), d("10"), ""); err != nil {
		t.Fatal(err)
	}
	if err := draft.AddItem("b", d("2"), d("20"), ""); err != nil {
		t.Fatal(err)
	}

	if err := draft.UpdateItem(2, "b2", d("3"), d("20"), ""); err != nil {
		t.Fatal(err)
	}
	if draft.Items[1].Description != "b2" || !draft.Items[1].Subtotal.Equal(d("60")) {
		t.Errorf("update: %+v", draft.Items[1])
	}
	if err := draft.UpdateItem(3, "x", d("1"), d("1"), ""); err == nil {
		t.Error("updating an out-of-range position should fail")
	}

	if err := draft.RemoveItem(1); err != nil {
		t.Fatal(err)
	}
	if len(draft.Items) != 1 || draft.Items[0].Description != "b2" {
		t.Errorf("remove: %+v", draft.Items)
	}
	if err := draft.RemoveItem(0); err == nil {
		t.Error("removing position 0 should fail")
	}

	if !draft.Totals().Total.Equal(d("70.8")) {
		t.Errorf("total = %s", draft.Totals().Total)
	}
}
