// Package reward holds the shared payout balance. The balance is a single
// process-wide counter constructed once at startup and passed by handle to
// the lifecycle engine; it is never ambient global state.
package reward

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds is returned when a deduction exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient reward balance")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("invalid reward amount")
)

// Ledger guards the reward balance. Deduct is compare-and-deduct under the
// mutex, so the balance can never go negative regardless of how many payout
// requests race.
type Ledger struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

func NewLedger(initial decimal.Decimal) *Ledger {
	return &Ledger{balance: initial}
}

// Balance returns the current balance.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Deduct removes amount from the balance. The check and the subtraction
// happen under one lock acquisition.
func (l *Ledger) Deduct(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.GreaterThan(l.balance) {
		return ErrInsufficientFunds
	}
	l.balance = l.balance.Sub(amount)
	return nil
}

// Credit adds amount to the balance.
func (l *Ledger) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balance = l.balance.Add(amount)
	return nil
}
