package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	desc  string
	qty   string
	price string
	image string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a line item to the draft" }
func (*addCmd) Usage() string {
	return `add -desc <text> -qty <n> -price <amount> [-image <file>]

  Appends a line item. The subtotal is derived from quantity and unit
  price. An optional reference image is shown in the document's final
  section; the file is copied next to the quotation on generate, so it
  only has to exist at that point.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "item description")
	f.StringVar(&c.qty, "qty", "1", "quantity")
	f.StringVar(&c.price, "price", "", "unit price")
	f.StringVar(&c.image, "image", "", "path to a reference image")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	qty, err := decimal.NewFromString(c.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid quantity %q: %v\n", c.qty, err)
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}
	if c.image != "" {
		if _, err := os.Stat(c.image); err != nil {
			fmt.Fprintf(os.Stderr, "warning: reference image %q is not readable yet: %v\n", c.image, err)
		}
	}

	cfg := loadConfig()
	d := loadDraft(cfg)
	if err := d.AddItem(c.desc, qty, price, c.image); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveDraft(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving draft: %v\n", err)
		return subcommands.ExitFailure
	}

	t := d.Totals()
	fmt.Printf("Item %d added. Total so far: %s\n", len(d.Items), t.Total.StringFixed(2))
	return subcommands.ExitSuccess
}
