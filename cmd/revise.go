package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cotizador"
	"github.com/google/subcommands"
)

type reviseCmd struct {
	number string
}

func (*reviseCmd) Name() string     { return "revise" }
func (*reviseCmd) Synopsis() string { return "load a generated quotation back into the draft" }
func (*reviseCmd) Usage() string {
	return `revise -n <number>

  Replaces the working draft with a copy of the given quotation. When the
  copy is generated it keeps the base number and gains the next version
  suffix (-V2, -V3, ...). The original record is left untouched.
`
}

func (c *reviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "quotation number to copy into the draft")
}

func (c *reviseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" || f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "expected -n <number> and no arguments")
		return subcommands.ExitUsageError
	}

	h := loadHistory()
	rec := h.Find(c.number)
	if rec == nil {
		fmt.Fprintf(os.Stderr, "No quotation %q in the history\n", c.number)
		return subcommands.ExitFailure
	}

	cfg := loadConfig()

	// Stored items reference their image by file name inside the
	// references directory; the draft needs a resolvable path so the next
	// generate can relocate a fresh copy.
	items := make([]cotizador.LineItem, len(rec.Items))
	copy(items, rec.Items)
	for i := range items {
		if items[i].Image != "" {
			items[i].Image = filepath.Join(cfg.ReferencesDir, items[i].Image)
		}
	}
	d := &cotizador.Draft{
		Client:       rec.Client,
		PaymentTerms: rec.PaymentTerms,
		Validity:     rec.Validity,
		DeliveryDate: rec.DeliveryDate,
		Currency:     rec.Currency,
		TaxEnabled:   rec.TaxEnabled,
		TaxRate:      rec.TaxRate,
		Terms:        rec.Terms,
		Items:        items,
		RevisionOf:   rec.BaseNumber,
	}

	if err := saveDraft(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving draft: %v\n", err)
		return subcommands.ExitFailure
	}

	next := cotizador.VersionNumber(rec.BaseNumber, cotizador.NextVersion(h, rec.BaseNumber))
	fmt.Printf("Draft now revises %s; generating will produce %s\n", rec.BaseNumber, next)
	return subcommands.ExitSuccess
}
