// Package types implements special types for grantdesk.
package types

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for monetary values.
const MoneyPlaces = 2

// Money is a fixed-point monetary amount.
//
// It is stored as DECIMAL(12,2) and serialized as a decimal string with
// exactly two fractional digits, e.g. "500000.00".
type Money struct {
	decimal.Decimal
}

// NewMoney returns the Money value for a decimal, rounded to two places.
func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(MoneyPlaces)}
}

// ParseMoney parses a decimal string.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%q is not a decimal amount: %w", s, err)
	}

	return NewMoney(d), nil
}

// MustMoney parses a decimal string and panics if that fails.
// It is intended for constants and tests.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.StringFixed(MoneyPlaces)
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Both JSON strings and JSON numbers are accepted.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*m = NewMoney(d)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Money) GormDataType() string {
	return "DECIMAL(12,2)"
}

// Add returns m + n.
func (m Money) Add(n Money) Money {
	return Money{m.Decimal.Add(n.Decimal)}
}

// Sub returns m - n.
func (m Money) Sub(n Money) Money {
	return Money{m.Decimal.Sub(n.Decimal)}
}

// GreaterThan reports whether m > n.
func (m Money) GreaterThan(n Money) bool {
	return m.Decimal.GreaterThan(n.Decimal)
}

// Equal reports whether m and n are the same amount.
func (m Money) Equal(n Money) bool {
	return m.Decimal.Equal(n.Decimal)
}

// Sum adds up amounts using fixed-point arithmetic.
func Sum(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Decimal)
	}

	return NewMoney(total)
}
