package pricing

import (
	"errors"
	"fmt"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in minor currency units (cents). The currency itself is
// the property's and is not modelled.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

// AddPercent raises m by pct percent, truncating toward zero.
func (m Money) AddPercent(pct int64) Money {
	return Money{cents: m.cents * (100 + pct) / 100}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
