package values

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits kept after every monetary step.
const Precision int32 = 8

var hundred = decimal.NewFromInt(100)

// Money represents a non-floating monetary amount in the platform currency.
// Rounding is half away from zero (decimal.Round).
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a new Money value object
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString creates Money from a decimal string such as "1207.5"
func NewMoneyFromString(amount string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %w", err)
	}
	return Money{amount: dec}, nil
}

// NewMoneyFromInt creates Money from a whole currency amount
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// MustNewMoneyFromString creates Money and panics on error (for constants/tests)
func MustNewMoneyFromString(amount string) Money {
	m, err := NewMoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero Money value
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String returns the amount with the full fixed precision, e.g. "1207.50000000"
func (m Money) String() string {
	return m.amount.StringFixed(Precision)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal compares amounts numerically, ignoring trailing zeros
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Cmp returns -1, 0, or 1 based on comparison with other
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Max returns the larger of m and other
func (m Money) Max(other Money) Money {
	if m.LessThan(other) {
		return other
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Percent returns m × percent / 100 without rounding
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(percent).Div(hundred)}
}

// Round rounds the amount to the given number of decimal places, half away from zero
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places)}
}

// RoundToPrecision rounds to the monetary Precision
func (m Money) RoundToPrecision() Money {
	return m.Round(Precision)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// bare JSON numbers are accepted as well
		raw = string(data)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	m.amount = amount
	return nil
}
