package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cotizador/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	number string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the draft or a generated quotation" }
func (*showCmd) Usage() string {
	return `show [-n <number>]

  Without a flag, renders the working draft with its items and totals.
  With -n, renders the generated quotation with that number instead.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "number of a generated quotation")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number != "" {
		h := loadHistory()
		rec := h.Find(c.number)
		if rec == nil {
			fmt.Fprintf(os.Stderr, "No quotation %q in the history\n", c.number)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.RenderQuotation(renderer.NewRecordView(rec)))
		return subcommands.ExitSuccess
	}

	cfg := loadConfig()
	d := loadDraft(cfg)
	printMarkdown(renderer.RenderQuotation(renderer.NewDraftView(d)))
	return subcommands.ExitSuccess
}
