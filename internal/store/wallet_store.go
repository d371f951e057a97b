package store

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// WalletStore holds the session wallet aggregate: balance and total
// earnings. All state is volatile for the lifetime of the session.
type WalletStore struct {
	mu            sync.RWMutex
	balance       decimal.Decimal
	totalEarnings decimal.Decimal
	currency      string
}

func NewWalletStore(balance, totalEarnings decimal.Decimal) *WalletStore {
	return &WalletStore{
		balance:       balance,
		totalEarnings: totalEarnings,
		currency:      "USD",
	}
}

func (s *WalletStore) Balance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

func (s *WalletStore) TotalEarnings() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalEarnings
}

func (s *WalletStore) Currency() string {
	return s.currency
}

// Withdraw decrements the balance. The amount is re-checked against the
// balance at confirmation time; the workflow validated it earlier but the
// balance may have moved since.
func (s *WalletStore) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount.GreaterThan(s.balance) {
		return s.balance, ErrInsufficientFunds
	}
	s.balance = s.balance.Sub(amount)
	return s.balance, nil
}

// Accrue adds the earning increment to both balance and total earnings and
// returns the new figures.
func (s *WalletStore) Accrue(increment decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = s.balance.Add(increment)
	s.totalEarnings = s.totalEarnings.Add(increment)
	return s.balance, s.totalEarnings
}
