package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cotizador"
	"github.com/etnz/cotizador/renderer"
	"github.com/google/subcommands"
)

type clientsCmd struct {
	query string
}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list known clients" }
func (*clientsCmd) Usage() string {
	return `clients [-q <partial name>]

  Lists every distinct client found in the history with the contact
  details of their latest quotation. With -q, prints fuzzy matches for a
  partial name instead, best first.
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "partial client name to match")
}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir := cotizador.BuildDirectory(loadHistory())

	if c.query != "" {
		matches := dir.Suggest(c.query, 5)
		if len(matches) == 0 {
			fmt.Printf("No client matches %q\n", c.query)
			return subcommands.ExitSuccess
		}
		for _, name := range matches {
			fmt.Println(name)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ClientsMarkdown(dir))
	return subcommands.ExitSuccess
}
