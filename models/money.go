package models

import "github.com/shopspring/decimal"

// Money is a fixed-point amount stored as decimal(10,2) and rendered in JSON
// as a string with exactly two decimals.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

func MustMoney(s string) Money {
	return NewMoney(decimal.RequireFromString(s))
}

func (m Money) Times(quantity int) Money {
	return NewMoney(m.Mul(decimal.NewFromInt(int64(quantity))))
}

func (m Money) Plus(other Money) Money {
	return NewMoney(m.Add(other.Decimal))
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
