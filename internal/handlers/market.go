package handlers

import (
	"net/http"

	"cryptowallet/internal/middleware"
)

func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	assets := sess.Assets.List()
	normalized := make([]map[string]any, 0, len(assets))
	for _, asset := range assets {
		normalized = append(normalized, map[string]any{
			"symbol":     asset.Symbol,
			"name":       asset.Name,
			"price":      formatAmount(asset.Price),
			"change_24h": asset.Change24h.StringFixed(2),
			"icon":       asset.Icon,
		})
	}
	respondJSON(w, http.StatusOK, normalized)
}
