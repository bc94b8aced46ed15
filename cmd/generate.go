package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cotizador"
	"github.com/etnz/cotizador/pdf"
	"github.com/google/subcommands"
)

type generateCmd struct{}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "number the draft and render its PDF document" }
func (*generateCmd) Usage() string {
	return `generate

  Finalizes the working draft: assigns the next correlative number (or the
  next version suffix when revising), renders the PDF into the quotations
  directory, appends the record to the history, and resets the draft for
  the next quotation.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {}

func (c *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	d := loadDraft(cfg)
	h := loadHistory()

	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Draft is not ready: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, target, err := finalizeDraft(cfg, d, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := h.Append(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording quotation: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveHistory(h); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
		return subcommands.ExitFailure
	}

	// The generated document is immutable; the draft served its purpose.
	if err := saveDraft(cotizador.NewDraft(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Generated %s, but could not reset the draft: %v\n", rec.Number, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Generated %s: %s\n", rec.Number, target)
	return subcommands.ExitSuccess
}

// finalizeDraft assigns the draft its number, snapshots it and renders the
// PDF into the quotations directory. The returned record is not yet part of
// the history.
func finalizeDraft(cfg *cotizador.Config, d *cotizador.Draft, h *cotizador.History) (cotizador.QuotationRecord, string, error) {
	// The correlative is consumed, and persisted, only once the draft is
	// known to be valid. Revisions reuse the base number instead.
	var number string
	if d.RevisionOf != "" {
		number = cotizador.VersionNumber(d.RevisionOf, cotizador.NextVersion(h, d.RevisionOf))
	} else {
		var err error
		number, err = cfg.IssueNumber(*configFile)
		if err != nil {
			return cotizador.QuotationRecord{}, "", fmt.Errorf("issuing number: %w", err)
		}
	}

	rec, err := d.Snapshot(number, cfg.ReferencesDir)
	if err != nil {
		return cotizador.QuotationRecord{}, "", fmt.Errorf("finalizing draft: %w", err)
	}

	if err := os.MkdirAll(cfg.QuotationsDir, 0755); err != nil {
		return cotizador.QuotationRecord{}, "", fmt.Errorf("creating %s: %w", cfg.QuotationsDir, err)
	}
	target := filepath.Join(cfg.QuotationsDir, rec.DocumentPath)
	if err := pdf.Render(buildDocument(cfg, &rec), target); err != nil {
		return cotizador.QuotationRecord{}, "", fmt.Errorf("rendering document: %w", err)
	}
	return rec, target, nil
}

// buildDocument turns a finalized record into the layout input, with every
// amount already formatted in the record's currency.
func buildDocument(cfg *cotizador.Config, rec *cotizador.QuotationRecord) *pdf.Document {
	date := rec.CreatedAt
	if day, err := cotizador.StampDate(rec.CreatedAt); err == nil {
		date = day.String()
	}

	doc := &pdf.Document{
		CompanyName:    cfg.Company.Name,
		CompanyTaxID:   cfg.Company.TaxID,
		CompanyAddress: cfg.Company.Address,
		LogoPath:       cfg.LogoPath,
		Number:         rec.Number,
		Date:           date,
		ClientName:     rec.Client.Name,
		ClientAddr:     rec.Client.Address,
		ClientEmail:    rec.Client.Email,
		PaymentTerms:   rec.PaymentTerms,
		Validity:       rec.Validity,
		Subtotal:       cotizador.M(rec.Subtotal, rec.Currency).String(),
		TaxLabel:       cotizador.TaxLabel(rec.TaxRate),
		Tax:            cotizador.M(rec.Tax, rec.Currency).String(),
		Total:          cotizador.M(rec.Total, rec.Currency).String(),
		Terms:          rec.Terms,
	}
	if !rec.TaxEnabled {
		doc.TaxLabel = "IGV (exonerado)"
	}
	if !rec.DeliveryDate.IsZero() {
		doc.DeliveryDate = rec.DeliveryDate.String()
	}

	for i, it := range rec.Items {
		line := pdf.Line{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   cotizador.M(it.UnitPrice, rec.Currency).String(),
			Subtotal:    cotizador.M(it.Subtotal, rec.Currency).String(),
			Code:        fmt.Sprintf("REF-%02d", i+1),
		}
		if it.Image != "" {
			line.Image = filepath.Join(cfg.ReferencesDir, it.Image)
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}
