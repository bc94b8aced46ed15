package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cotizador"
	"github.com/etnz/cotizador/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	status   string
	query    string
	from     string
	to       string
	byDelive bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list generated quotations" }
func (*historyCmd) Usage() string {
	return `history [-status <s>] [-q <text>] [-from <yyyy-mm-dd>] [-to <yyyy-mm-dd>] [-by-delivery]

  Lists quotations from the history, newest last, with a per-status count
  and the grand total of the listing. Filters combine: -q matches number
  and client name, -from/-to bound the creation date (or the delivery
  date with -by-delivery), and either bound may be omitted.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "only this status (Generated, Sent, Accepted, Rejected)")
	f.StringVar(&c.query, "q", "", "substring of the number or client name")
	f.StringVar(&c.from, "from", "", "first date to include")
	f.StringVar(&c.to, "to", "", "last date to include")
	f.BoolVar(&c.byDelive, "by-delivery", false, "filter on the delivery date instead of the creation date")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h := loadHistory()

	var predicates []func(cotizador.QuotationRecord) bool
	if c.status != "" {
		status, err := cotizador.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		predicates = append(predicates, cotizador.ByStatus(status))
	}
	if c.query != "" {
		predicates = append(predicates, cotizador.ByText(c.query))
	}
	if c.from != "" || c.to != "" {
		var from, to cotizador.Date
		var err error
		if c.from != "" {
			if from, err = cotizador.ParseDate(c.from); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid -from date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.to != "" {
			if to, err = cotizador.ParseDate(c.to); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid -to date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		field := cotizador.CreationDate
		if c.byDelive {
			field = cotizador.DeliveryDate
		}
		predicates = append(predicates, cotizador.ByDateRange(from, to, field))
	}

	printMarkdown(renderer.HistoryMarkdown(h.Filter(predicates...)))
	return subcommands.ExitSuccess
}
