package handlers

import (
	"encoding/json"
	"net/http"

	"cryptowallet/internal/middleware"
	"cryptowallet/internal/workflow"
)

// depositAddress is the fixed mock receiving address shown in the deposit
// flow; nothing is ever received on it.
const depositAddress = "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"

func (h *Handler) GetWallet(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"balance":        formatAmount(sess.Wallet.Balance()),
		"total_earnings": formatAmount(sess.Wallet.TotalEarnings()),
		"currency":       sess.Wallet.Currency(),
	})
}

func (h *Handler) DepositAddress(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"address": depositAddress,
		"network": "BTC",
	})
}

type depositRequest struct {
	Amount string `json:"amount"`
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := sess.SubmitDeposit(req.Amount); err != nil {
		respondSubmitError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, map[string]string{"state": string(sess.Workflow.State())})
}

type withdrawRequest struct {
	Amount  string `json:"amount"`
	Address string `json:"address"`
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := sess.SubmitWithdraw(req.Amount, req.Address); err != nil {
		respondSubmitError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, map[string]string{"state": string(sess.Workflow.State())})
}

func respondSubmitError(w http.ResponseWriter, err error) {
	if err == workflow.ErrBusy {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	respondError(w, http.StatusBadRequest, err.Error())
}

func (h *Handler) WorkflowState(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"state": string(sess.Workflow.State())})
}

// CloseWorkflow is the user's cancel affordance; it is rejected while a
// submission is in flight.
func (h *Handler) CloseWorkflow(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := sess.Workflow.Close(); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"state": string(sess.Workflow.State())})
}
