package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cotizador"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type configCmd struct {
	company     string
	ruc         string
	address     string
	logo        string
	series      string
	seriesYear  bool
	correlative int
	taxRate     string
	currency    string
	payment     string
	validity    string
	quotDir     string
	refDir      string
	rucToken    string
	smtpHost    string
	smtpPort    int
	smtpUser    string
	smtpTLS     bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the application settings" }
func (*configCmd) Usage() string {
	return `config [flags]

  Without flags, prints the current settings. With flags, updates only
  the settings passed and writes the configuration back.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "company", "", "company name printed on documents")
	f.StringVar(&c.ruc, "ruc", "", "company RUC tax identifier")
	f.StringVar(&c.address, "address", "", "company address")
	f.StringVar(&c.logo, "logo", "", "path to the logo image, empty to remove")
	f.StringVar(&c.series, "series", "", "numbering series, e.g. COT-2026")
	f.BoolVar(&c.seriesYear, "series-year", false, "reset the series to the current year and the correlative to 1")
	f.IntVar(&c.correlative, "correlative", 0, "next correlative number")
	f.StringVar(&c.taxRate, "tax-rate", "", "IGV rate as a fraction, e.g. 0.18")
	f.StringVar(&c.currency, "currency", "", "default currency (PEN, USD or EUR)")
	f.StringVar(&c.payment, "payment", "", "default payment terms")
	f.StringVar(&c.validity, "validity", "", "default validity text")
	f.StringVar(&c.quotDir, "quotations-dir", "", "directory for rendered documents")
	f.StringVar(&c.refDir, "references-dir", "", "directory for reference images")
	f.StringVar(&c.rucToken, "ruc-token", "", "apisperu API token for RUC lookups")
	f.StringVar(&c.smtpHost, "smtp-host", "", "SMTP server host")
	f.IntVar(&c.smtpPort, "smtp-port", 0, "SMTP server port")
	f.StringVar(&c.smtpUser, "smtp-user", "", "SMTP username, also the sender address")
	f.BoolVar(&c.smtpTLS, "smtp-tls", true, "require TLS on the SMTP connection")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()

	given := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { given[fl.Name] = true })

	if len(given) == 0 {
		c.print(cfg)
		return subcommands.ExitSuccess
	}

	if given["company"] {
		cfg.Company.Name = c.company
	}
	if given["ruc"] {
		cfg.Company.TaxID = c.ruc
	}
	if given["address"] {
		cfg.Company.Address = c.address
	}
	if given["logo"] {
		cfg.LogoPath = c.logo
	}
	// Applied before -series and -correlative so either can still override.
	if given["series-year"] && c.seriesYear {
		cfg.Series = cotizador.DefaultSeries()
		cfg.Correlative = 1
	}
	if given["series"] {
		cfg.Series = c.series
	}
	if given["correlative"] {
		if c.correlative < 1 {
			fmt.Fprintln(os.Stderr, "correlative must be at least 1")
			return subcommands.ExitUsageError
		}
		cfg.Correlative = c.correlative
	}
	if given["tax-rate"] {
		rate, err := decimal.NewFromString(c.taxRate)
		if err != nil || rate.IsNegative() {
			fmt.Fprintf(os.Stderr, "Invalid tax rate %q\n", c.taxRate)
			return subcommands.ExitUsageError
		}
		cfg.TaxRate = rate
	}
	if given["currency"] {
		cur, err := cotizador.ParseCurrency(c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		cfg.Currency = cur
	}
	if given["payment"] {
		cfg.PaymentTerms = c.payment
	}
	if given["validity"] {
		cfg.Validity = c.validity
	}
	if given["quotations-dir"] {
		cfg.QuotationsDir = c.quotDir
	}
	if given["references-dir"] {
		cfg.ReferencesDir = c.refDir
	}
	if given["ruc-token"] {
		cfg.RucToken = c.rucToken
	}
	if given["smtp-host"] {
		cfg.SMTP.Host = c.smtpHost
	}
	if given["smtp-port"] {
		cfg.SMTP.Port = c.smtpPort
	}
	if given["smtp-user"] {
		cfg.SMTP.Username = c.smtpUser
	}
	if given["smtp-tls"] {
		cfg.SMTP.UseTLS = c.smtpTLS
	}

	if err := saveConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Configuration updated.")
	return subcommands.ExitSuccess
}

func (c *configCmd) print(cfg *cotizador.Config) {
	fmt.Printf("company:        %s\n", cfg.Company.Name)
	fmt.Printf("ruc:            %s\n", cfg.Company.TaxID)
	fmt.Printf("address:        %s\n", cfg.Company.Address)
	fmt.Printf("logo:           %s\n", cfg.LogoPath)
	fmt.Printf("series:         %s\n", cfg.Series)
	fmt.Printf("correlative:    %d\n", cfg.Correlative)
	fmt.Printf("tax-rate:       %s\n", cfg.TaxRate)
	fmt.Printf("currency:       %s\n", cfg.Currency)
	fmt.Printf("payment:        %s\n", cfg.PaymentTerms)
	fmt.Printf("validity:       %s\n", cfg.Validity)
	fmt.Printf("quotations-dir: %s\n", cfg.QuotationsDir)
	fmt.Printf("references-dir: %s\n", cfg.ReferencesDir)
	fmt.Printf("ruc-token:      %s\n", mask(cfg.RucToken))
	fmt.Printf("smtp-host:      %s\n", cfg.SMTP.Host)
	fmt.Printf("smtp-port:      %d\n", cfg.SMTP.Port)
	fmt.Printf("smtp-user:      %s\n", cfg.SMTP.Username)
	fmt.Printf("smtp-tls:       %t\n", cfg.SMTP.UseTLS)
}

// mask hides most of a secret, keeping just enough to recognize it.
func mask(s string) string {
	if len(s) <= 4 {
		if s == "" {
			return ""
		}
		return "****"
	}
	return s[:4] + "****"
}
