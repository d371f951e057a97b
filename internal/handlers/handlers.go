package handlers

import (
	"encoding/json"
	"net/http"

	"cryptowallet/internal/models"

	"github.com/shopspring/decimal"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func transactionJSON(tx models.Transaction) map[string]any {
	return map[string]any{
		"id":       tx.ID,
		"type":     string(tx.Type),
		"status":   string(tx.Status),
		"amount":   formatAmount(tx.Amount),
		"currency": tx.Currency,
		"date":     tx.Date,
	}
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}
