package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cotizador"
	"github.com/google/subcommands"
)

type newCmd struct {
	keepClient bool
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "start a fresh quotation draft" }
func (*newCmd) Usage() string {
	return `new [-keep-client]

  Resets the working draft to the configuration defaults, discarding the
  current items. With -keep-client the client block survives the reset,
  which is handy when quoting the same client twice in a row.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.keepClient, "keep-client", false, "keep the current client on the new draft")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	old := loadDraft(cfg)

	d := cotizador.NewDraft(cfg)
	if c.keepClient {
		d.Client = old.Client
	}

	if err := saveDraft(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving draft: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Draft reset.")
	return subcommands.ExitSuccess
}
