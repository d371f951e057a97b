package handlers

import (
	"net/http"

	"cryptowallet/internal/middleware"
)

func (h *Handler) CurrentNotification(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	notification, visible := sess.Notifier.Current()
	if !visible {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, notification)
}

// DismissNotification is the manual close affordance; it also cancels the
// pending auto-dismiss timer.
func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sess.Notifier.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}
