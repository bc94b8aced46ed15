package cotizador

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2026-01-15", NewDate(2026, time.January, 15), false},
		{"2026-7-1", NewDate(2026, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
		{"2026-13-01", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q): expected an error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.March, 5)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-03-05"` {
		t.Errorf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDateZeroJSON(t *testing.T) {
	var d Date
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("zero date marshals to %s, want null", b)
	}

	var back Date
	if err := json.Unmarshal([]byte(`""`), &back); err != nil {
		t.Fatal(err)
	}
	if !back.IsZero() {
		t.Errorf("empty string should decode to the zero date, got %v", back)
	}
}

func TestBetween(t *testing.T) {
	d := NewDate(2026, time.June, 15)
	tests := []struct {
		from, to Date
		want     bool
	}{
		{NewDate(2026, time.June, 1), NewDate(2026, time.June, 30), true},
		{NewDate(2026, time.June, 15), NewDate(2026, time.June, 15), true},
		{Date{}, NewDate(2026, time.June, 30), true},
		{NewDate(2026, time.June, 1), Date{}, true},
		{Date{}, Date{}, true},
		{NewDate(2026, time.June, 16), Date{}, false},
		{Date{}, NewDate(2026, time.June, 14), false},
	}
	for _, tt := range tests {
		if got := d.Between(tt.from, tt.to); got != tt.want {
			t.Errorf("Between(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStampDate(t *testing.T) {
	d, err := StampDate("2026-08-31 14:05")
	if err != nil {
		t.Fatal(err)
	}
	if d != NewDate(2026, time.August, 31) {
		t.Errorf("StampDate = %v", d)
	}
	if _, err := StampDate("14:05"); err == nil {
		t.Error("expected an error on a stamp without a date part")
	}
}
