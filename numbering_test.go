package cotizador

import (
	"path/filepath"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		series      string
		correlative int
		expected    string
	}{
		{"COT-2026", 1, "COT-2026-00001"},
		{"COT-2026", 42, "COT-2026-00042"},
		{"COT-2026", 123456, "COT-2026-123456"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.series, tt.correlative); got != tt.expected {
			t.Errorf("FormatNumber(%q, %d) = %q, want %q", tt.series, tt.correlative, got, tt.expected)
		}
	}
}

func TestSplitNumber(t *testing.T) {
	tests := []struct {
		number  string
		base    string
		version int
	}{
		{"COT-2026-00042", "COT-2026-00042", 1},
		{"COT-2026-00042-V2", "COT-2026-00042", 2},
		{"COT-2026-00042-V10", "COT-2026-00042", 10},
		// V0 is never emitted; the whole string counts as the base
		{"COT-2026-00042-V0", "COT-2026-00042-V0", 1},
		{"COT-V", "COT-V", 1},
	}
	for _, tt := range tests {
		base, version := SplitNumber(tt.number)
		if base != tt.base || version != tt.version {
			t.Errorf("SplitNumber(%q) = %q, %d, want %q, %d", tt.number, base, version, tt.base, tt.version)
		}
	}
}

func TestVersionNumber(t *testing.T) {
	if got := VersionNumber("COT-2026-00042", 2); got != "COT-2026-00042-V2" {
		t.Errorf("VersionNumber = %q", got)
	}
}

func TestIssueNumberSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Series = "COT-2026"
	cfg.Correlative = 7

	n1, err := cfg.IssueNumber(path)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := cfg.IssueNumber(path)
	if err != nil {
		t.Fatal(err)
	}
	if n1 != "COT-2026-00007" || n2 != "COT-2026-00008" {
		t.Errorf("issued %q then %q", n1, n2)
	}

	// The incremented correlative must have hit the disk after each issue.
	reloaded := LoadConfig(path)
	if reloaded.Correlative != 9 {
		t.Errorf("persisted correlative = %d, want 9", reloaded.Correlative)
	}
}

func TestNextVersion(t *testing.T) {
	h := NewHistory()
	base := "COT-2026-00042"

	if got := NextVersion(h, base); got != 2 {
		t.Errorf("NextVersion on empty history = %d, want 2", got)
	}

	for _, number := range []string{base, base + "-V2", base + "-V3"} {
		rec := QuotationRecord{Number: number, Status: StatusGenerated, Currency: PEN}
		rec.BaseNumber, rec.Version = SplitNumber(number)
		if err := h.Append(rec); err != nil {
			t.Fatal(err)
		}
	}

	if got := NextVersion(h, base); got != 4 {
		t.Errorf("NextVersion = %d, want 4", got)
	}
	if got := NextVersion(h, "COT-2026-00099"); got != 2 {
		t.Errorf("NextVersion for an unknown base = %d, want 2", got)
	}

	// Computing twice without generating must not consume anything.
	if got := NextVersion(h, base); got != 4 {
		t.Errorf("NextVersion is not idempotent, got %d", got)
	}
}
