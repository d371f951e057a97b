package handlers

import (
	"net/http"
	"strconv"

	"cryptowallet/internal/middleware"
	"cryptowallet/internal/models"
	"cryptowallet/internal/store"
)

// ListTransactions returns the ledger newest first. The history screen
// filters by status=pending and the earning screen by type=earn with a
// limit, so both are query parameters here.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	query := r.URL.Query()
	page := parseInt(query.Get("page"), 1)
	limit := parseInt(query.Get("limit"), 20)
	filter := store.ListFilter{
		Type:   models.TransactionType(query.Get("type")),
		Status: models.TransactionStatus(query.Get("status")),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	transactions := sess.Ledger.List(filter)
	normalized := make([]map[string]any, 0, len(transactions))
	for _, tx := range transactions {
		normalized = append(normalized, transactionJSON(tx))
	}
	respondJSON(w, http.StatusOK, normalized)
}

func parseInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
