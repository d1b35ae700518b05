package services_test

import (
	"context"
	"errors"
	"testing"

	"investing/src/models"
	"investing/src/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOracle struct {
	prices map[string]float64
	err    error
	calls  []string
}

func (o *fakeOracle) GetPrice(_ context.Context, ticker string) (float64, error) {
	o.calls = append(o.calls, ticker)
	if o.err != nil {
		return 0, o.err
	}
	price, ok := o.prices[ticker]
	if !ok {
		return 0, errors.New("unknown ticker")
	}
	return price, nil
}

func TestGetRecommendation_PricesEveryAllocation(t *testing.T) {
	ctx := context.Background()
	oracle := &fakeOracle{prices: map[string]float64{"VOO": 400.00, "VTI": 250.00, "BND": 80.00}}
	svc := services.NewRecommendationService(
		services.NewAllocationService(allocationConfig()), oracle, nil)

	recommendation, err := svc.GetRecommendation(ctx, 1000, models.RiskBalanced)
	require.NoError(t, err)

	require.Len(t, recommendation.Allocations, 3)
	assert.Equal(t, "balanced", recommendation.RiskProfile)
	assert.Equal(t, 1000.0, recommendation.TotalBalance)

	byTicker := make(map[string]float64)
	for _, etf := range recommendation.Allocations {
		byTicker[etf.Ticker] = etf.AllocationAmount
	}
	assert.Equal(t, 400.0, byTicker["VOO"])
	assert.Equal(t, 300.0, byTicker["VTI"])
	assert.Equal(t, 300.0, byTicker["BND"])

	for _, etf := range recommendation.Allocations {
		if etf.Ticker == "VOO" {
			assert.True(t, etf.EstimatedShares.Equal(decimal.RequireFromString("1")),
				"400 dollars at 400/share buys exactly one share, got %s", etf.EstimatedShares)
		}
	}
}

func TestGetRecommendation_PriceFailureAbortsAll(t *testing.T) {
	ctx := context.Background()
	oracleErr := errors.New("provider down")
	oracle := &fakeOracle{err: oracleErr}
	svc := services.NewRecommendationService(
		services.NewAllocationService(allocationConfig()), oracle, nil)

	_, err := svc.GetRecommendation(ctx, 1000, models.RiskBalanced)
	require.ErrorIs(t, err, oracleErr)
	assert.Len(t, oracle.calls, 1, "fails on the first unpriceable asset")
}

func TestGetRecommendation_MomentumFeedFlowsThrough(t *testing.T) {
	ctx := context.Background()
	oracle := &fakeOracle{prices: map[string]float64{
		"VOO": 400.00, "VTI": 250.00, "BND": 80.00, "XLK": 180.00,
	}}
	svc := services.NewRecommendationService(
		services.NewAllocationService(allocationConfig()), oracle, sectorWinner("XLK", 0.15))

	recommendation, err := svc.GetRecommendation(ctx, 1000, models.RiskBalanced)
	require.NoError(t, err)

	tickers := make(map[string]bool)
	for _, etf := range recommendation.Allocations {
		tickers[etf.Ticker] = true
	}
	assert.True(t, tickers["XLK"], "momentum winner missing from priced portfolio")
}

func TestGetRecommendation_AllocationErrorShortCircuits(t *testing.T) {
	ctx := context.Background()
	oracle := &fakeOracle{prices: map[string]float64{"VOO": 400.00}}
	svc := services.NewRecommendationService(
		services.NewAllocationService(allocationConfig()), oracle, nil)

	_, err := svc.GetRecommendation(ctx, 1000, models.RiskProfile("reckless"))

	var invalidArgument *services.InvalidArgumentError
	require.ErrorAs(t, err, &invalidArgument)
	assert.Empty(t, oracle.calls, "no prices fetched when the allocation fails")
}
