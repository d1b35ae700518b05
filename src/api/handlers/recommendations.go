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
)

func (h *Handler) RecommendPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req schemas.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid request body"))
		return
	}

	profile := models.RiskProfile(req.RiskProfile)
	if req.RiskProfile == "" {
		profile = models.RiskBalanced
	}

	recommendation, err := h.Recommendations.GetRecommendation(ctx, req.Balance, profile)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, recommendation, http.StatusOK)
}

// GetETFUniverse lists the scored sector universe, best momentum first.
func (h *Handler) GetETFUniverse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	scores, err := h.ETFs.GetAll(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, scores, http.StatusOK)
}

func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ticker := chi.URLParam(r, "ticker")
	price, err := h.Market.GetPrice(ctx, ticker)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.PriceResponse{
		Ticker:    ticker,
		Price:     price,
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}
