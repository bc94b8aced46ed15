package cotizador

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// configSchemaVersion is the current version of the configuration file
// schema. Files from older versions are migrated on load.
const configSchemaVersion = 1

// Company is the issuing business identity printed on every document.
type Company struct {
	Name    string `json:"name"`
	TaxID   string `json:"taxId,omitempty"`
	Address string `json:"address,omitempty"`
}

// SMTPConfig holds the outbound email relay settings.
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	UseTLS   bool   `json:"useTLS"`
}

// Config is the persistent application configuration. It is loaded once at
// startup and written back on every settings change and on every base-number
// issuance, so a crash can never reuse a correlative.
type Config struct {
	SchemaVersion int             `json:"schemaVersion"`
	Company       Company         `json:"company"`
	LogoPath      string          `json:"logoPath,omitempty"`
	Series        string          `json:"series"`
	Correlative   int             `json:"correlative"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Currency      Currency        `json:"currency"`
	PaymentTerms  string          `json:"paymentTerms"`
	Validity      string          `json:"validity"`
	QuotationsDir string          `json:"quotationsDir"`
	ReferencesDir string          `json:"referencesDir"`
	RucToken      string          `json:"rucToken,omitempty"`
	SMTP          SMTPConfig      `json:"smtp"`
}

// DefaultSeries returns the series for the current calendar year,
// e.g. "COT-2025".
func DefaultSeries() string {
	return fmt.Sprintf("COT-%d", time.Now().Year())
}

// DefaultConfig returns a ready-to-use configuration for a fresh install.
func DefaultConfig() *Config {
	return &Config{
		SchemaVersion: configSchemaVersion,
		Series:        DefaultSeries(),
		Correlative:   1,
		TaxRate:       decimal.NewFromFloat(0.18),
		Currency:      PEN,
		PaymentTerms:  "50% adelanto - 50% contraentrega",
		Validity:      "15 días",
		QuotationsDir: "Cotizaciones",
		ReferencesDir: "Referencias",
		SMTP:          SMTPConfig{Port: 587, UseTLS: true},
	}
}

// migrate upgrades a decoded configuration to the current schema version,
// filling the fields that older files do not carry. Replaces the scattered
// per-field fallbacks of earlier iterations with one explicit step.
func (c *Config) migrate() {
	if c.SchemaVersion >= configSchemaVersion {
		return
	}
	def := DefaultConfig()
	if c.Series == "" {
		c.Series = def.Series
	}
	if c.Correlative < 1 {
		c.Correlative = def.Correlative
	}
	if c.TaxRate.IsZero() {
		c.TaxRate = def.TaxRate
	}
	if c.Currency == "" {
		c.Currency = def.Currency
	}
	if c.PaymentTerms == "" {
		c.PaymentTerms = def.PaymentTerms
	}
	if c.Validity == "" {
		c.Validity = def.Validity
	}
	if c.QuotationsDir == "" {
		c.QuotationsDir = def.QuotationsDir
	}
	if c.ReferencesDir == "" {
		c.ReferencesDir = def.ReferencesDir
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = def.SMTP.Port
	}
	c.SchemaVersion = configSchemaVersion
}
