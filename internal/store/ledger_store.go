package store

import (
	"fmt"
	"sync"
	"time"

	"cryptowallet/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerStore is the ordered collection of transaction records, newest
// first. Records are immutable once appended.
type LedgerStore struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	lastID       int64
}

func NewLedgerStore(seed []models.Transaction) *LedgerStore {
	transactions := make([]models.Transaction, len(seed))
	copy(transactions, seed)
	return &LedgerStore{transactions: transactions}
}

// Append prepends a new transaction with a time-derived id. Two appends in
// the same millisecond get distinct ids via a monotonic bump.
func (s *LedgerStore) Append(txType models.TransactionType, amount decimal.Decimal, currency string, status models.TransactionStatus, now time.Time) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	tx := models.Transaction{
		ID:       fmt.Sprintf("tx-%d", id),
		Type:     txType,
		Amount:   amount,
		Currency: currency,
		Date:     now.Format("2006-01-02"),
		Status:   status,
	}
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	return tx
}

type ListFilter struct {
	Type   models.TransactionType
	Status models.TransactionStatus
	Limit  int
	Offset int
}

// List returns matching transactions, newest first.
func (s *LedgerStore) List(filter ListFilter) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		matched = append(matched, tx)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []models.Transaction{}
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched
}

// Head returns the most recently created transaction.
func (s *LedgerStore) Head() (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.transactions) == 0 {
		return models.Transaction{}, false
	}
	return s.transactions[0], true
}

func (s *LedgerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}
