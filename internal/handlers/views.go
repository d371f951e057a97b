package handlers

import (
	"encoding/json"
	"net/http"

	"cryptowallet/internal/middleware"
	"cryptowallet/internal/session"
)

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	view := sess.CurrentView()
	respondJSON(w, http.StatusOK, map[string]any{
		"view":        string(view),
		"nav_visible": view.NavVisible(),
	})
}

type setViewRequest struct {
	View string `json:"view"`
}

func (h *Handler) SetView(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req setViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	view, err := session.ParseView(req.View)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown view")
		return
	}
	sess.SetView(view)
	respondJSON(w, http.StatusOK, map[string]any{
		"view":        string(view),
		"nav_visible": view.NavVisible(),
	})
}

// ViewBack is the profile screen's dedicated back transition to home.
func (h *Handler) ViewBack(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	view := sess.Back()
	respondJSON(w, http.StatusOK, map[string]any{
		"view":        string(view),
		"nav_visible": view.NavVisible(),
	})
}
