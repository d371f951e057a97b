package handlers

import (
	"net/http"
	"strings"

	"cryptowallet/internal/auth"
	"cryptowallet/internal/websocket"
)

// WSStream upgrades to a websocket carrying price ticks, wallet updates and
// notifications for the caller's session. Browsers cannot set headers on
// websocket dials, so the token is also accepted as a query parameter.
func (h *Handler) WSStream(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	claims, err := auth.ParseToken(h.cfg.JWTSecret, token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	if _, ok := h.sessions.Get(claims.SessionID); !ok {
		respondError(w, http.StatusUnauthorized, "session expired")
		return
	}
	websocket.ServeWS(w, r, h.hub, claims.SessionID)
}
