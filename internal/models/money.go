package models

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for every amount.
const MoneyPlaces = 2

// Money is a fixed-point amount with two decimal places
type Money struct {
	decimal.Decimal
}

// NewMoney parses a decimal string such as "25000.50"
func NewMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d.Round(MoneyPlaces)}, nil
}

// MustMoney is NewMoney for constants; it panics on malformed input.
func MustMoney(value string) Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromInt returns a whole amount.
func MoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// Equal reports whether both amounts have the same value, ignoring scale.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String renders the amount with exactly two decimals.
func (m Money) String() string {
	return m.StringFixed(MoneyPlaces)
}

// MarshalJSON encodes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(MoneyPlaces)), nil
}

// UnmarshalJSON accepts bare JSON numbers only; quoted amounts are a type error.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(Money{})}
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(Money{})}
	}
	m.Decimal = d.Round(MoneyPlaces)
	return nil
}
