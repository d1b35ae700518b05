package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"investing/src/models"
	"investing/src/schemas"
	"investing/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid request body"))
		return
	}

	account, err := h.Ledger.CreateAccount(ctx, req.Name, models.RiskProfile(req.RiskProfile))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, account, http.StatusCreated)
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	accountID, err := accountIDFromURL(r)
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid account id"))
		return
	}

	account, err := h.Ledger.GetAccount(ctx, accountID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, account, http.StatusOK)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	accountID, err := accountIDFromURL(r)
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid account id"))
		return
	}

	if err := h.Ledger.DeleteAccount(ctx, accountID); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	accountID, err := accountIDFromURL(r)
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid account id"))
		return
	}

	var req schemas.UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid request body"))
		return
	}

	account, err := h.Ledger.UpdateBalance(ctx, accountID, req.Balance)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, account, http.StatusOK)
}

func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	accountID, err := accountIDFromURL(r)
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid account id"))
		return
	}

	holdings, err := h.Ledger.GetHoldings(ctx, accountID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	accountID, err := accountIDFromURL(r)
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid account id"))
		return
	}

	transactions, err := h.Ledger.GetTransactions(ctx, accountID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transactions, http.StatusOK)
}

func (h *Handler) ExecuteTrade(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	accountID, err := accountIDFromURL(r)
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid account id"))
		return
	}

	var req schemas.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid request body"))
		return
	}

	transaction, err := h.Ledger.ExecuteTrade(ctx, accountID, req.Ticker,
		models.TransactionType(req.Side), req.Quantity, req.Price)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transaction, http.StatusCreated)
}

func accountIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
