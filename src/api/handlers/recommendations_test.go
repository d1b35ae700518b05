package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"investing/src/config"
	"investing/src/models"
	"investing/src/schemas"
	"investing/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticOracle struct {
	prices map[string]float64
}

func (o staticOracle) GetPrice(_ context.Context, ticker string) (float64, error) {
	return o.prices[ticker], nil
}

func recommendationHandler() *Handler {
	allocation := services.NewAllocationService(config.AllocationConfig{
		Tiers: map[string]map[string]float64{
			"tier1": {"VOO": 1.0},
			"tier2": {"VOO": 0.70, "BND": 0.30},
			"tier3": {"VOO": 0.40, "VTI": 0.30, "BND": 0.30},
			"tier4": {"VOO": 0.25, "VTI": 0.25, "VXUS": 0.20, "AGG": 0.30},
		},
	})
	oracle := staticOracle{prices: map[string]float64{
		"VOO": 400, "VTI": 250, "VXUS": 60, "BND": 80, "AGG": 95,
	}}
	return &Handler{
		Recommendations: services.NewRecommendationService(allocation, oracle, nil),
		Market:          oracle,
	}
}

func TestRecommendPortfolio(t *testing.T) {
	h := recommendationHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/recommend",
		strings.NewReader(`{"balance": 1000, "riskProfile": "balanced"}`))
	recorder := httptest.NewRecorder()
	h.RecommendPortfolio(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var recommendation schemas.PortfolioRecommendation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &recommendation))
	assert.Equal(t, "balanced", recommendation.RiskProfile)
	assert.Len(t, recommendation.Allocations, 3)

	total := 0.0
	for _, etf := range recommendation.Allocations {
		total += etf.AllocationAmount
	}
	assert.InDelta(t, 1000, total, 0.01)
}

func TestRecommendPortfolio_DefaultsToBalanced(t *testing.T) {
	h := recommendationHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/recommend",
		strings.NewReader(`{"balance": 1000}`))
	recorder := httptest.NewRecorder()
	h.RecommendPortfolio(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var recommendation schemas.PortfolioRecommendation
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &recommendation))
	assert.Equal(t, "balanced", recommendation.RiskProfile)
}

func TestRecommendPortfolio_UnknownProfile(t *testing.T) {
	h := recommendationHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/recommend",
		strings.NewReader(`{"balance": 1000, "riskProfile": "reckless"}`))
	recorder := httptest.NewRecorder()
	h.RecommendPortfolio(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

type staticUniverse struct {
	scores []models.ETFScore
}

func (u staticUniverse) TopScoringAsset(context.Context) (*models.ETFScore, error) {
	if len(u.scores) == 0 {
		return nil, nil
	}
	return &u.scores[0], nil
}

func (u staticUniverse) GetAll(context.Context) ([]models.ETFScore, error) {
	return u.scores, nil
}

func TestGetETFUniverse(t *testing.T) {
	h := recommendationHandler()
	h.ETFs = staticUniverse{scores: []models.ETFScore{
		{Ticker: "XLK", Sector: "Technology", MomentumScore: 0.18},
		{Ticker: "XLV", Sector: "Health Care", MomentumScore: 0.05},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/market/etfs", nil)
	recorder := httptest.NewRecorder()
	h.GetETFUniverse(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var scores []models.ETFScore
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &scores))
	require.Len(t, scores, 2)
	assert.Equal(t, "XLK", scores[0].Ticker)
}

func TestGetPrice(t *testing.T) {
	h := recommendationHandler()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/market/price/VOO", nil), "ticker", "VOO")
	recorder := httptest.NewRecorder()
	h.GetPrice(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var res schemas.PriceResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, "VOO", res.Ticker)
	assert.Equal(t, 400.0, res.Price)
}
