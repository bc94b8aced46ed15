package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	pos int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a line item from the draft" }
func (*rmCmd) Usage() string {
	return `rm -pos <n>

  Removes the item at the given 1-based position. Following items shift
  up, so positions printed by a previous show may change.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.pos, "pos", 0, "1-based item position")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	d := loadDraft(cfg)

	if err := d.RemoveItem(c.pos); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := saveDraft(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving draft: %v\n", err)
		return subcommands.ExitFailure
	}

	t := d.Totals()
	fmt.Printf("Item %d removed. Total: %s\n", c.pos, t.Total.StringFixed(2))
	return subcommands.ExitSuccess
}
