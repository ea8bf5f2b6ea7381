package room

import (
	"errors"
	"fmt"
)

var ErrNegativeRate = errors.New("room rate cannot be negative")

// Money is an amount in the property's currency minor units. Differences between two
// estimates may be negative; rates may not.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func NewRate(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeRate
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) IsNegative() bool {
	return m.amount < 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

var ErrInvalidStatus = errors.New("invalid room status")

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}
