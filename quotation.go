package cotizador

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a quotation record.
type Status string

const (
	StatusGenerated Status = "Generated"
	StatusSent      Status = "Sent"
	StatusAccepted  Status = "Accepted"
	StatusRejected  Status = "Rejected"
)

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generated":
		return StatusGenerated, nil
	case "sent":
		return StatusSent, nil
	case "accepted":
		return StatusAccepted, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// NeedsConfirmation reports whether marking a quotation with this status
// should be confirmed by the user first. Transitions are never rejected;
// confirmation is advisory only.
func (s Status) NeedsConfirmation() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Client holds the contact details of a quotation's recipient.
// All fields are optional except that a finalized quotation requires a name.
type Client struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// LineItem is a single line of a quotation: a description, a quantity, a
// unit price, the derived line subtotal, and an optional reference image.
// While a quotation is being drafted Image holds a path to the working file;
// in a saved record it holds the relocated reference file name.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Image       string          `json:"image,omitempty"`
}

// NewLineItem builds a line item with its derived subtotal.
func NewLineItem(description string, quantity, unitPrice decimal.Decimal, image string) (LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return LineItem{}, fmt.Errorf("item description cannot be empty")
	}
	if !quantity.IsPositive() {
		return LineItem{}, fmt.Errorf("item quantity must be positive, got %s", quantity)
	}
	if unitPrice.IsNegative() {
		return LineItem{}, fmt.Errorf("item unit price cannot be negative, got %s", unitPrice)
	}
	return LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    quantity.Mul(unitPrice),
		Image:       image,
	}, nil
}

// QuotationRecord is one entry of the history store: the immutable snapshot
// of a generated quotation, plus its mutable status.
type QuotationRecord struct {
	Number       string
	BaseNumber   string
	Version      int
	CreatedAt    string
	DeliveryDate Date
	Client       Client
	PaymentTerms string
	Validity     string
	Items        []LineItem
	Subtotal     decimal.Decimal
	TaxRate      decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Currency     Currency
	TaxEnabled   bool
	DocumentPath string // file name of the rendered artifact, not a full path
	Status       Status
	Terms        string // free-text terms block
}

// MarshalJSON encodes the record with a canonical key order. Monetary
// amounts are rounded to 2 fraction digits at this point; in-memory values
// keep full precision.
func (r QuotationRecord) MarshalJSON() ([]byte, error) {
	items := make([]*jsonObjectWriter, 0, len(r.Items))
	for _, it := range r.Items {
		var w jsonObjectWriter
		w.Append("description", it.Description)
		w.Append("quantity", it.Quantity)
		w.Append("unitPrice", Round2(it.UnitPrice))
		w.Append("subtotal", Round2(it.Subtotal))
		w.Optional("image", it.Image)
		items = append(items, &w)
	}

	var w jsonObjectWriter
	w.Append("number", r.Number)
	w.Append("baseNumber", r.BaseNumber)
	w.Append("version", r.Version)
	w.Append("createdAt", r.CreatedAt)
	if !r.DeliveryDate.IsZero() {
		w.Append("deliveryDate", r.DeliveryDate)
	}
	w.Append("client", r.Client)
	w.Optional("paymentTerms", r.PaymentTerms)
	w.Optional("validity", r.Validity)
	w.Append("items", items)
	w.Append("subtotal", Round2(r.Subtotal))
	w.Append("taxRate", r.TaxRate)
	w.Append("tax", Round2(r.Tax))
	w.Append("total", Round2(r.Total))
	w.Append("currency", r.Currency)
	w.Append("taxEnabled", r.TaxEnabled)
	w.Append("documentPath", r.DocumentPath)
	w.Append("status", r.Status)
	w.Optional("terms", r.Terms)
	return w.MarshalJSON()
}
