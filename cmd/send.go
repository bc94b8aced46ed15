package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/cotizador"
	"github.com/etnz/cotizador/mail"
	"github.com/google/subcommands"
)

type sendCmd struct {
	to     string
	number string
}

func (*sendCmd) Name() string     { return "send" }
func (*sendCmd) Synopsis() string { return "email a quotation to the client" }
func (*sendCmd) Usage() string {
	return `send [-to <addr>] [-n <number>]

  Without -n, finalizes the working draft the way generate does (number,
  PDF, history record), resets the draft, and emails the document to the
  client; the record is marked Sent once the mail is accepted. With -n,
  re-sends the document of an already generated quotation. The -to flag
  overrides the recipient. The SMTP password is taken from the
  ` + smtpPasswordEnv + ` environment variable when not stored in the
  configuration.
`
}

func (c *sendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "recipient address, defaults to the client's email")
	f.StringVar(&c.number, "n", "", "re-send an existing quotation instead of the draft")
}

func (c *sendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "unexpected argument, use -n <number> for an existing quotation")
		return subcommands.ExitUsageError
	}

	cfg := loadConfig()
	h := loadHistory()

	var rec *cotizador.QuotationRecord
	if c.number != "" {
		rec = h.Find(c.number)
		if rec == nil {
			fmt.Fprintf(os.Stderr, "No quotation %q in the history\n", c.number)
			return subcommands.ExitFailure
		}
	} else {
		d := loadDraft(cfg)
		if err := d.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Draft is not ready: %v\n", err)
			return subcommands.ExitFailure
		}
		r, target, err := finalizeDraft(cfg, d, h)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := h.Append(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording quotation: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := saveHistory(h); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := saveDraft(cotizador.NewDraft(cfg)); err != nil {
			fmt.Fprintf(os.Stderr, "Generated %s, but could not reset the draft: %v\n", r.Number, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Generated %s: %s\n", r.Number, target)
		// The record stays Generated until the mail is accepted, so a
		// failed delivery can be retried with -n without a new number.
		rec = h.Find(r.Number)
	}

	document := filepath.Join(cfg.QuotationsDir, rec.DocumentPath)
	if _, err := os.Stat(document); err != nil {
		fmt.Fprintf(os.Stderr, "Document %s is missing: %v\n", document, err)
		return subcommands.ExitFailure
	}

	smtp := cfg.SMTP
	if smtp.Password == "" {
		smtp.Password = os.Getenv(smtpPasswordEnv)
	}

	msg := mail.Quotation(rec, smtp.Username, cfg.Company.Name, document)
	if c.to != "" {
		msg.To = c.to
	}
	if err := mail.Send(smtp, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := h.UpdateStatus(rec.Number, cotizador.StatusSent); err != nil {
		fmt.Fprintf(os.Stderr, "Sent, but could not update status: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveHistory(h); err != nil {
		fmt.Fprintf(os.Stderr, "Sent, but could not save history: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sent %s to %s\n", rec.Number, msg.To)
	return subcommands.ExitSuccess
}
