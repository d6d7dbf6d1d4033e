package leverage

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency of a snapshot that does not declare one.
const DefaultCurrency = "TWD"

// Money represents an exact monetary value in the snapshot's currency.
// A snapshot never mixes currencies, so the currency is only needed for display.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric value.
func M[T number](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(r Ratio) Money               { return Money{value: m.value.Mul(r.value)} }
func (m Money) Div(r Ratio) Money               { return Money{value: m.value.Div(r.value)} }

// Per returns m/n, or zero when n is zero.
func (m Money) Per(n Money) Ratio {
	if n.IsZero() {
		return Ratio{}
	}
	return Ratio{value: m.value.Div(n.value)}
}

// Float returns the closest float64, for display and AI prompts only.
func (m Money) Float() float64 { return m.value.InexactFloat64() }

// String returns the amount with two decimals and no currency.
func (m Money) String() string { return m.value.StringFixed(2) }

// Format returns the amount formatted in the given currency, e.g. "NT$1,234.00".
func (m Money) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.String() + " " + currency
	}
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// SignedFormat is like Format but always prefixes a sign for non zero values.
func (m Money) SignedFormat(currency string) string {
	if m.IsPositive() {
		return "+" + m.Format(currency)
	}
	return m.Format(currency)
}

// MarshalJSON encodes the amount as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}

// Sum adds all amounts.
func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// ValidateCurrency checks that code is a known ISO 4217 currency.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalid, code)
	}
	return nil
}
