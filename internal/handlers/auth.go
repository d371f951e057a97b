package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cryptowallet/internal/auth"
	"cryptowallet/internal/middleware"
	"cryptowallet/internal/models"
	"cryptowallet/internal/validator"

	"github.com/google/uuid"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register synthesizes a verified user from the submitted form after a
// simulated network delay. Nothing is checked against a user store and the
// stub never rejects valid input.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateName(req.Name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.startSession(w, r, req.Name, req.Email, req.Password, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login always succeeds with the fixed demo identity.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.startSession(w, r, "Demo User", req.Email, req.Password, http.StatusOK)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, name, email, password string, status int) {
	// simulated network latency of the auth backend
	h.pause(r.Context(), h.cfg.AuthDelay)

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to secure password")
		return
	}
	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsVerified:   true,
		CreatedAt:    h.scheduler.Now(),
	}
	sess := h.sessions.Create(user)
	token, err := auth.GenerateToken(h.cfg.JWTSecret, sess.ID, h.cfg.TokenTTL)
	if err != nil {
		h.sessions.Destroy(sess.ID)
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	sess.Notifier.Show(fmt.Sprintf("Welcome back, %s!", user.Name), models.NotifySuccess)
	respondJSON(w, status, map[string]any{
		"token": token,
		"user":  user,
	})
}

// pause blocks for the given delay, armed through the scheduler like every
// other timer so it can be fast-forwarded. Returns early if the caller's
// request is cancelled.
func (h *Handler) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	done := make(chan struct{})
	cancel := h.scheduler.AfterFunc(d, func() { close(done) })
	select {
	case <-done:
	case <-ctx.Done():
		cancel()
	}
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, sess.User())
}

// Logout destroys the session, which stops both simulators and cancels any
// pending notification timer. The farewell toast is returned in the body
// because the session-scoped notifier is already torn down.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.sessions.Destroy(sess.ID)
	respondJSON(w, http.StatusOK, models.Notification{
		Message: "Logged out successfully",
		Kind:    models.NotifyInfo,
	})
}
