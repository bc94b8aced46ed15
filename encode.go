package cotizador

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonRecord is a permissive decoding target for one history entry. Fields
// added across schema versions decode to their zero value and are defaulted
// in record().
type jsonRecord struct {
	Number       string          `json:"number"`
	BaseNumber   string          `json:"baseNumber"`
	Version      int             `json:"version"`
	CreatedAt    string          `json:"createdAt"`
	DeliveryDate Date            `json:"deliveryDate"`
	Client       Client          `json:"client"`
	PaymentTerms string          `json:"paymentTerms"`
	Validity     string          `json:"validity"`
	Items        []LineItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	TaxEnabled   *bool           `json:"taxEnabled"`
	DocumentPath string          `json:"documentPath"`
	Status       string          `json:"status"`
	Terms        string          `json:"terms"`
}

func (j jsonRecord) record() (QuotationRecord, error) {
	r := QuotationRecord{
		Number:       j.Number,
		BaseNumber:   j.BaseNumber,
		Version:      j.Version,
		CreatedAt:    j.CreatedAt,
		DeliveryDate: j.DeliveryDate,
		Client:       j.Client,
		PaymentTerms: j.PaymentTerms,
		Validity:     j.Validity,
		Items:        j.Items,
		Subtotal:     j.Subtotal,
		TaxRate:      j.TaxRate,
		Tax:          j.Tax,
		Total:        j.Total,
		DocumentPath: j.DocumentPath,
		Terms:        j.Terms,
	}

	// Default the fields that older files may lack.
	base, version := SplitNumber(j.Number)
	if r.BaseNumber == "" {
		r.BaseNumber = base
	}
	if r.Version < 1 {
		r.Version = version
	}

	if j.Status == "" {
		r.Status = StatusGenerated
	} else {
		status, err := ParseStatus(j.Status)
		if err != nil {
			return r, err
		}
		r.Status = status
	}

	if j.Currency == "" {
		r.Currency = PEN
	} else {
		cur, err := ParseCurrency(j.Currency)
		if err != nil {
			return r, err
		}
		r.Currency = cur
	}

	// Tax defaults to enabled unless the file says otherwise.
	r.TaxEnabled = j.TaxEnabled == nil || *j.TaxEnabled

	return r, nil
}

// DecodeHistory decodes a history store from its JSON array form.
func DecodeHistory(r io.Reader) (*History, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read history: %w", err)
	}

	var entries []jsonRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("could not parse history: %w", err)
	}

	h := NewHistory()
	for _, e := range entries {
		rec, err := e.record()
		if err != nil {
			return nil, fmt.Errorf("invalid history record %q: %w", e.Number, err)
		}
		if err := h.Append(rec); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// EncodeHistory writes the history store as an indented JSON array with a
// canonical key order per record.
func EncodeHistory(w io.Writer, h *History) error {
	decimal.MarshalJSONWithoutQuotes = true

	data, err := json.MarshalIndent(h.records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode history: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write history: %w", err)
	}
	return nil
}
