package handlers

import (
	"net/http"

	"cryptowallet/internal/middleware"
	"cryptowallet/internal/store"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, sess.Plans.List())
}

func (h *Handler) TogglePlan(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	plan, err := sess.TogglePlan(chi.URLParam(r, "id"))
	if err != nil {
		if err == store.ErrPlanNotFound {
			respondError(w, http.StatusNotFound, "plan not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to toggle plan")
		return
	}
	respondJSON(w, http.StatusOK, plan)
}
