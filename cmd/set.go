package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cotizador"
	"github.com/google/subcommands"
)

type setCmd struct {
	client   string
	email    string
	address  string
	ruc      string
	payment  string
	validity string
	delivery string
	currency string
	tax      bool
	terms    string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "fill the header fields of the draft" }
func (*setCmd) Usage() string {
	return `set [-client <name>] [-email <addr>] [-address <addr>] [-ruc <ruc>]
    [-payment <terms>] [-validity <text>] [-delivery <yyyy-mm-dd>]
    [-currency PEN|USD|EUR] [-tax=true|false] [-terms <text>]

  Updates the draft header. Only the flags actually passed are applied.
  When -client names a client already present in the history, their email,
  address and RUC are autofilled from the latest quotation unless given
  explicitly. A partial name prints close matches instead of guessing.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "client name")
	f.StringVar(&c.email, "email", "", "client email address")
	f.StringVar(&c.address, "address", "", "client address")
	f.StringVar(&c.ruc, "ruc", "", "client RUC tax identifier")
	f.StringVar(&c.payment, "payment", "", "payment terms")
	f.StringVar(&c.validity, "validity", "", "validity of the offer")
	f.StringVar(&c.delivery, "delivery", "", "delivery date (yyyy-mm-dd), empty to clear")
	f.StringVar(&c.currency, "currency", "", "quotation currency (PEN, USD or EUR)")
	f.BoolVar(&c.tax, "tax", true, "apply IGV to the totals")
	f.StringVar(&c.terms, "terms", "", "free-text terms and conditions")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	d := loadDraft(cfg)

	given := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { given[fl.Name] = true })
	if len(given) == 0 {
		fmt.Fprintln(os.Stderr, "nothing to set, see usage")
		return subcommands.ExitUsageError
	}

	if given["client"] {
		d.Client.Name = strings.TrimSpace(c.client)
		c.autofill(d, given)
	}
	if given["email"] {
		d.Client.Email = c.email
	}
	if given["address"] {
		d.Client.Address = c.address
	}
	if given["ruc"] {
		d.Client.TaxID = c.ruc
	}
	if given["payment"] {
		d.PaymentTerms = c.payment
	}
	if given["validity"] {
		d.Validity = c.validity
	}
	if given["terms"] {
		d.Terms = c.terms
	}
	if given["tax"] {
		d.TaxEnabled = c.tax
	}
	if given["delivery"] {
		if c.delivery == "" {
			d.DeliveryDate = cotizador.Date{}
		} else {
			day, err := cotizador.ParseDate(c.delivery)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid delivery date: %v\n", err)
				return subcommands.ExitUsageError
			}
			d.DeliveryDate = day
		}
	}
	if given["currency"] {
		cur, err := cotizador.ParseCurrency(c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid currency: %v\n", err)
			return subcommands.ExitUsageError
		}
		d.Currency = cur
	}

	if err := saveDraft(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving draft: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// autofill completes the client block from the history when the name
// matches a known client. Explicitly passed flags always win.
func (c *setCmd) autofill(d *cotizador.Draft, given map[string]bool) {
	if d.Client.Name == "" {
		return
	}
	dir := cotizador.BuildDirectory(loadHistory())
	rec, ok := dir.Lookup(d.Client.Name)
	if !ok {
		if suggestions := dir.Suggest(d.Client.Name, 3); len(suggestions) > 0 {
			fmt.Printf("Unknown client %q. Close matches: %s\n",
				d.Client.Name, strings.Join(suggestions, ", "))
		}
		return
	}
	// Known client: reuse the canonical spelling and the stored contacts.
	d.Client.Name = rec.Client.Name
	if !given["email"] {
		d.Client.Email = rec.Client.Email
	}
	if !given["address"] {
		d.Client.Address = rec.Client.Address
	}
	if !given["ruc"] {
		d.Client.TaxID = rec.Client.TaxID
	}
	fmt.Printf("Client %q autofilled from history.\n", rec.Client.Name)
}
