package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Asset is a tracked market instrument. Symbol is the identity and never
// changes; price and 24h change drift under the market simulator.
type Asset struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h"`
	Icon      string          `json:"icon"`
}

type EarningPlan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	APY         decimal.Decimal `json:"apy"`
	MinLock     string          `json:"min_lock"`
	Active      bool            `json:"active"`
	TotalStaked decimal.Decimal `json:"total_staked"`
}

type TransactionType string

const (
	TxDeposit  TransactionType = "deposit"
	TxWithdraw TransactionType = "withdraw"
	TxEarn     TransactionType = "earn"
	TxTransfer TransactionType = "transfer"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is immutable once created; no status transition exists.
type Transaction struct {
	ID       string            `json:"id"`
	Type     TransactionType   `json:"type"`
	Amount   decimal.Decimal   `json:"amount"`
	Currency string            `json:"currency"`
	Date     string            `json:"date"`
	Status   TransactionStatus `json:"status"`
}

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}
