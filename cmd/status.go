package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cotizador"
	"github.com/google/subcommands"
)

type statusCmd struct {
	yes bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "change the status of a generated quotation" }
func (*statusCmd) Usage() string {
	return `status [-y] <number> Generated|Sent|Accepted|Rejected

  Records the client's answer. Any transition is allowed; marking a
  quotation Accepted or Rejected asks for confirmation unless -y is
  passed.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected a quotation number and a status")
		return subcommands.ExitUsageError
	}
	number := f.Arg(0)

	status, err := cotizador.ParseStatus(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	h := loadHistory()
	rec := h.Find(number)
	if rec == nil {
		fmt.Fprintf(os.Stderr, "No quotation %q in the history\n", number)
		return subcommands.ExitFailure
	}

	if status.NeedsConfirmation() && !c.yes {
		q := fmt.Sprintf("Mark %s (%s, total %s) as %s?",
			rec.Number, rec.Client.Name, cotizador.M(rec.Total, rec.Currency), status)
		if !confirm(q) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := h.UpdateStatus(number, status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveHistory(h); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s is now %s\n", number, status)
	return subcommands.ExitSuccess
}
