package renderer

import (
	"github.com/etnz/cotizador"
)

// ItemView is one pre-formatted line of the item table.
type ItemView struct {
	Position    int
	Description string
	Quantity    string
	UnitPrice   string
	Subtotal    string
	HasImage    bool
}

// QuotationView is the pre-formatted data behind the quotation preview.
// Every monetary amount is already a display string so the template stays
// free of formatting logic.
type QuotationView struct {
	Title        string // "Draft" or the issued number
	Status       string // empty for a draft
	CreatedAt    string
	ClientName   string
	ClientEmail  string
	ClientAddr   string
	ClientTaxID  string
	PaymentTerms string
	Validity     string
	DeliveryDate string
	Items        []ItemView
	Subtotal     string
	TaxLabel     string
	Tax          string
	Total        string
	TaxEnabled   bool
	Terms        string
}

// NewDraftView builds the preview of a quotation still being edited.
func NewDraftView(d *cotizador.Draft) *QuotationView {
	t := d.Totals()
	v := &QuotationView{
		Title:        "Draft",
		ClientName:   d.Client.Name,
		ClientEmail:  d.Client.Email,
		ClientAddr:   d.Client.Address,
		ClientTaxID:  d.Client.TaxID,
		PaymentTerms: d.PaymentTerms,
		Validity:     d.Validity,
		Subtotal:     cotizador.M(t.Subtotal, d.Currency).String(),
		TaxLabel:     cotizador.TaxLabel(d.TaxRate),
		Tax:          cotizador.M(t.Tax, d.Currency).String(),
		Total:        cotizador.M(t.Total, d.Currency).String(),
		TaxEnabled:   d.TaxEnabled,
		Terms:        d.Terms,
	}
	if d.RevisionOf != "" {
		v.Title = "Draft (revision of " + d.RevisionOf + ")"
	}
	if !d.DeliveryDate.IsZero() {
		v.DeliveryDate = d.DeliveryDate.String()
	}
	v.Items = itemViews(d.Items, d.Currency)
	return v
}

// NewRecordView builds the preview of a finalized quotation.
func NewRecordView(r *cotizador.QuotationRecord) *QuotationView {
	v := &QuotationView{
		Title:        r.Number,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		ClientName:   r.Client.Name,
		ClientEmail:  r.Client.Email,
		ClientAddr:   r.Client.Address,
		ClientTaxID:  r.Client.TaxID,
		PaymentTerms: r.PaymentTerms,
		Validity:     r.Validity,
		Subtotal:     cotizador.M(r.Subtotal, r.Currency).String(),
		TaxLabel:     cotizador.TaxLabel(r.TaxRate),
		Tax:          cotizador.M(r.Tax, r.Currency).String(),
		Total:        cotizador.M(r.Total, r.Currency).String(),
		TaxEnabled:   r.TaxEnabled,
		Terms:        r.Terms,
	}
	if !r.DeliveryDate.IsZero() {
		v.DeliveryDate = r.DeliveryDate.String()
	}
	v.Items = itemViews(r.Items, r.Currency)
	return v
}

func itemViews(items []cotizador.LineItem, cur cotizador.Currency) []ItemView {
	views := make([]ItemView, 0, len(items))
	for i, it := range items {
		views = append(views, ItemView{
			Position:    i + 1,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   cotizador.M(it.UnitPrice, cur).String(),
			Subtotal:    cotizador.M(it.Subtotal, cur).String(),
			HasImage:    it.Image != "",
		})
	}
	return views
}
