package cotizador

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency identifies one of the supported quotation currencies by its
// ISO-4217 code.
type Currency string

const (
	PEN Currency = "PEN"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{PEN, USD, EUR}

// ParseCurrency parses a currency code. The legacy spelled-out names used by
// early history files (SOLES, DOLARES, EUROS) are accepted too.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PEN", "SOLES":
		return PEN, nil
	case "USD", "DOLARES":
		return USD, nil
	case "EUR", "EUROS":
		return EUR, nil
	default:
		return "", fmt.Errorf("unknown currency: %q", s)
	}
}

// currency returns the go-money currency metadata, never nil.
func (c Currency) currency() *money.Currency {
	return money.New(0, string(c)).Currency()
}

// Symbol returns the currency grapheme, e.g. "S/" for PEN.
func (c Currency) Symbol() string { return c.currency().Grapheme }

// Money represents a monetary value in one of the supported currencies.
// Arithmetic keeps full decimal precision; rounding to the currency fraction
// happens only at display or persistence time.
type Money struct {
	value decimal.Decimal
	cur   Currency
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}

// M creates a Money value from any numeric type.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency Currency) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func (m Money) Currency() Currency     { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money      { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// Mul multiplies the amount by a unit-less quantity.
func (m Money) Mul(q decimal.Decimal) Money {
	return Money{value: m.value.Mul(q), cur: m.cur}
}

// String formats the value with the currency symbol and thousand separators,
// rounded to the currency fraction, e.g. "S/1,234.56".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

func (m Money) currency() *money.Currency { return m.cur.currency() }

// Round2 rounds a decimal amount to 2 fraction digits, the precision used
// when persisting totals.
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
