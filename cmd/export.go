package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cotizador"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the history as CSV" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes every quotation to a CSV file, one row per record, followed by a
  summary block with the grand total and the per-status counts. Use -o -
  to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "cotizaciones.csv", "output file, - for stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h := loadHistory()

	if c.output == "-" {
		if err := cotizador.ExportCSV(os.Stdout, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := cotizador.ExportCSV(out, h); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d quotations to %s\n", h.Len(), c.output)
	return subcommands.ExitSuccess
}
