package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editCmd struct {
	pos   int
	desc  string
	qty   string
	price string
	image string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify a line item of the draft" }
func (*editCmd) Usage() string {
	return `edit -pos <n> [-desc <text>] [-qty <n>] [-price <amount>] [-image <file>]

  Modifies the item at the given 1-based position. Fields not passed keep
  their current value; pass -image "" to detach the reference image.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pos, "pos", 0, "1-based item position")
	f.StringVar(&c.desc, "desc", "", "item description")
	f.StringVar(&c.qty, "qty", "", "quantity")
	f.StringVar(&c.price, "price", "", "unit price")
	f.StringVar(&c.image, "image", "", "path to a reference image")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	d := loadDraft(cfg)

	if c.pos < 1 || c.pos > len(d.Items) {
		fmt.Fprintf(os.Stderr, "No item at position %d, draft has %d\n", c.pos, len(d.Items))
		return subcommands.ExitUsageError
	}
	current := d.Items[c.pos-1]

	given := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { given[fl.Name] = true })

	desc := current.Description
	if given["desc"] {
		desc = c.desc
	}
	qty := current.Quantity
	if given["qty"] {
		var err error
		qty, err = decimal.NewFromString(c.qty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid quantity %q: %v\n", c.qty, err)
			return subcommands.ExitUsageError
		}
	}
	price := current.UnitPrice
	if given["price"] {
		var err error
		price, err = decimal.NewFromString(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid price %q: %v\n", c.price, err)
			return subcommands.ExitUsageError
		}
	}
	image := current.Image
	if given["image"] {
		image = c.image
	}

	if err := d.UpdateItem(c.pos, desc, qty, price, image); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveDraft(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving draft: %v\n", err)
		return subcommands.ExitFailure
	}

	t := d.Totals()
	fmt.Printf("Item %d updated. Total: %s\n", c.pos, t.Total.StringFixed(2))
	return subcommands.ExitSuccess
}
