package store

import (
	"cryptowallet/internal/models"

	"github.com/shopspring/decimal"
)

// Opening figures for a fresh session wallet.
var (
	OpeningBalance  = decimal.RequireFromString("12450.75")
	OpeningEarnings = decimal.RequireFromString("1240.50")
)

// SeedAssets returns the fixed set of tracked instruments.
func SeedAssets() []models.Asset {
	return []models.Asset{
		{Symbol: "BTC", Name: "Bitcoin", Price: dec("64230.50"), Change24h: dec("2.4"), Icon: "₿"},
		{Symbol: "ETH", Name: "Ethereum", Price: dec("3450.12"), Change24h: dec("-1.2"), Icon: "Ξ"},
		{Symbol: "SOL", Name: "Solana", Price: dec("145.60"), Change24h: dec("5.7"), Icon: "◎"},
		{Symbol: "BNB", Name: "Binance Coin", Price: dec("590.20"), Change24h: dec("0.5"), Icon: "BNB"},
		{Symbol: "ADA", Name: "Cardano", Price: dec("0.45"), Change24h: dec("-0.8"), Icon: "₳"},
	}
}

func SeedPlans() []models.EarningPlan {
	return []models.EarningPlan{
		{ID: "p1", Name: "Auto-Trader Alpha", APY: dec("12.5"), MinLock: "Flexible", Active: true, TotalStaked: dec("1500")},
		{ID: "p2", Name: "BTC Staking Pool", APY: dec("5.2"), MinLock: "30 Days", Active: false, TotalStaked: dec("0")},
		{ID: "p3", Name: "DeFi Yield Aggregator", APY: dec("18.4"), MinLock: "90 Days", Active: true, TotalStaked: dec("5000")},
	}
}

// SeedTransactions returns the mock history a fresh session starts with,
// newest first.
func SeedTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "tx-8", Type: models.TxEarn, Amount: dec("16.50"), Currency: "USDT", Date: "2023-10-29", Status: models.StatusCompleted},
		{ID: "tx-7", Type: models.TxEarn, Amount: dec("14.80"), Currency: "USDT", Date: "2023-10-28", Status: models.StatusCompleted},
		{ID: "tx-6", Type: models.TxEarn, Amount: dec("15.20"), Currency: "USDT", Date: "2023-10-27", Status: models.StatusCompleted},
		{ID: "tx-5", Type: models.TxTransfer, Amount: dec("0.5"), Currency: "ETH", Date: "2023-10-27", Status: models.StatusCompleted},
		{ID: "tx-4", Type: models.TxEarn, Amount: dec("45.00"), Currency: "USDT", Date: "2023-10-26", Status: models.StatusCompleted},
		{ID: "tx-3", Type: models.TxWithdraw, Amount: dec("1000"), Currency: "USD", Date: "2023-10-26", Status: models.StatusPending},
		{ID: "tx-2", Type: models.TxEarn, Amount: dec("12.50"), Currency: "USDT", Date: "2023-10-25", Status: models.StatusCompleted},
		{ID: "tx-1", Type: models.TxDeposit, Amount: dec("5000"), Currency: "USD", Date: "2023-10-24", Status: models.StatusCompleted},
	}
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
