package cotizador

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Draft is the quotation being edited. It owns its line items exclusively;
// finalizing copies a snapshot into a QuotationRecord and leaves the draft
// untouched so the caller decides when to reset it.
type Draft struct {
	Client       Client          `json:"client"`
	PaymentTerms string          `json:"paymentTerms"`
	Validity     string          `json:"validity"`
	DeliveryDate Date            `json:"deliveryDate,omitzero"`
	Currency     Currency        `json:"currency"`
	TaxEnabled   bool            `json:"taxEnabled"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Terms        string          `json:"terms,omitempty"`
	Items        []LineItem      `json:"items"`

	// RevisionOf carries the base number of the quotation being revised;
	// when set, finalizing issues a version suffix instead of a fresh
	// correlative.
	RevisionOf string `json:"revisionOf,omitempty"`
}

// NewDraft creates an empty draft seeded with the configuration defaults.
func NewDraft(cfg *Config) *Draft {
	return &Draft{
		PaymentTerms: cfg.PaymentTerms,
		Validity:     cfg.Validity,
		Currency:     cfg.Currency,
		TaxEnabled:   true,
		TaxRate:      cfg.TaxRate,
		Items:        make([]LineItem, 0),
	}
}

// AddItem validates and appends a line item.
func (d *Draft) AddItem(description string, quantity, unitPrice decimal.Decimal, image string) error {
	item, err := NewLineItem(description, quantity, unitPrice, image)
	if err != nil {
		return err
	}
	d.Items = append(d.Items, item)
	return nil
}

// UpdateItem replaces the item at the 1-based position.
func (d *Draft) UpdateItem(position int, description string, quantity, unitPrice decimal.Decimal, image string) error {
	if position < 1 || position > len(d.Items) {
		return fmt.Errorf("no item at position %d", position)
	}
	item, err := NewLineItem(description, quantity, unitPrice, image)
	if err != nil {
		return err
	}
	d.Items[position-1] = item
	return nil
}

// RemoveItem deletes the item at the 1-based position.
func (d *Draft) RemoveItem(position int) error {
	if position < 1 || position > len(d.Items) {
		return fmt.Errorf("no item at position %d", position)
	}
	d.Items = append(d.Items[:position-1], d.Items[position:]...)
	return nil
}

// Totals computes the draft's current totals.
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.Items, d.TaxEnabled, d.TaxRate)
}

// Validate checks that the draft can be finalized: a client name and at
// least one item. Nothing is written before this passes.
func (d *Draft) Validate() error {
	if d.Client.Name == "" {
		return fmt.Errorf("client name is required")
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("the quotation has no items")
	}
	return nil
}
