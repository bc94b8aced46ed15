package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cotizador/ruc"
	"github.com/google/subcommands"
)

type rucCmd struct {
	apply bool
}

func (*rucCmd) Name() string     { return "ruc" }
func (*rucCmd) Synopsis() string { return "look a RUC up in the tax registry" }
func (*rucCmd) Usage() string {
	return `ruc [-apply] <ruc>

  Resolves an 11 digit RUC to the registered company name and address
  through the apisperu API (needs config -ruc-token). With -apply the
  result is written into the draft's client block.
`
}

func (c *rucCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.apply, "apply", false, "fill the draft client from the result")
}

func (c *rucCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one RUC")
		return subcommands.ExitUsageError
	}
	taxID := f.Arg(0)

	cfg := loadConfig()
	info, err := ruc.New(cfg.RucToken).Lookup(taxID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s\n", info.Name)
	if info.Address != "" {
		fmt.Printf("%s\n", info.Address)
	}

	if c.apply {
		d := loadDraft(cfg)
		d.Client.Name = info.Name
		d.Client.Address = info.Address
		d.Client.TaxID = taxID
		if err := saveDraft(d); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving draft: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Draft client updated.")
	}
	return subcommands.ExitSuccess
}
