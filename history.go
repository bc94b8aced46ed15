package cotizador

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// History is the append-only list of quotation records, the source of truth
// for numbering continuity, the client directory and reporting. Records keep
// their append order, which is also chronological order.
type History struct {
	records []QuotationRecord
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{records: make([]QuotationRecord, 0)}
}

// Len returns the number of records.
func (h *History) Len() int { return len(h.records) }

// Append adds a record at the end of the history. Numbers are globally
// unique across the store.
func (h *History) Append(r QuotationRecord) error {
	if r.Number == "" {
		return fmt.Errorf("record has no number")
	}
	if h.Find(r.Number) != nil {
		return fmt.Errorf("duplicate quotation number %q", r.Number)
	}
	h.records = append(h.records, r)
	return nil
}

// Find returns a pointer to the first record with the given number, or nil.
func (h *History) Find(number string) *QuotationRecord {
	for i := range h.records {
		if h.records[i].Number == number {
			return &h.records[i]
		}
	}
	return nil
}

// UpdateStatus mutates in place the status of the first record with the
// given number. Any transition is accepted; restricting them is a product
// decision that was deliberately not taken.
func (h *History) UpdateStatus(number string, status Status) error {
	r := h.Find(number)
	if r == nil {
		return fmt.Errorf("quotation %q not found in history", number)
	}
	r.Status = status
	return nil
}

// Records returns an iterator that yields each record in append order.
func (h *History) Records() iter.Seq2[int, QuotationRecord] {
	return func(yield func(int, QuotationRecord) bool) {
		for i, r := range h.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Filter returns the records matching all given predicates, in append order.
func (h *History) Filter(predicates ...func(QuotationRecord) bool) []QuotationRecord {
	var out []QuotationRecord
	for _, r := range h.records {
		accept := true
		for _, p := range predicates {
			if !p(r) {
				accept = false
				break
			}
		}
		if accept {
			out = append(out, r)
		}
	}
	return out
}

// ByStatus returns a predicate that filters records by status equality.
func ByStatus(s Status) func(QuotationRecord) bool {
	return func(r QuotationRecord) bool { return r.Status == s }
}

// ByText returns a predicate that matches a case-insensitive substring of
// the record number or the client name.
func ByText(query string) func(QuotationRecord) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(r QuotationRecord) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(r.Number), q) ||
			strings.Contains(strings.ToLower(r.Client.Name), q)
	}
}

// DateField selects which date of a record a range filter applies to.
type DateField int

const (
	// CreationDate matches against the date part of the creation timestamp.
	CreationDate DateField = iota
	// DeliveryDate matches against the delivery date; records without one
	// never match.
	DeliveryDate
)

// ByDateRange returns a predicate that matches records whose selected date
// falls in the inclusive [from, to] range. A zero bound is open on that side.
func ByDateRange(from, to Date, field DateField) func(QuotationRecord) bool {
	return func(r QuotationRecord) bool {
		var d Date
		switch field {
		case DeliveryDate:
			d = r.DeliveryDate
			if d.IsZero() {
				return false
			}
		default:
			created, err := StampDate(r.CreatedAt)
			if err != nil {
				return false
			}
			d = created
		}
		return d.Between(from, to)
	}
}

// GrandTotal sums the rounded totals of all records. Like the rest of the
// reporting it sums across currencies without conversion.
func (h *History) GrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range h.records {
		sum = sum.Add(Round2(r.Total))
	}
	return sum
}

// StatusCounts returns the number of records per status.
func (h *History) StatusCounts() map[Status]int {
	counts := make(map[Status]int)
	for _, r := range h.records {
		counts[r.Status]++
	}
	return counts
}
