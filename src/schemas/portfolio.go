package schemas

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation is one (ticker, weight) pair produced by the allocation
// engine. Weights across a recommendation sum to 1.0.
type Allocation struct {
	Ticker string  `json:"ticker"`
	Weight float64 `json:"weight"`
}

type RecommendRequest struct {
	Balance     float64 `json:"balance"`
	RiskProfile string  `json:"riskProfile"`
}

// ETFRecommendation is an allocation enriched with a live price.
type ETFRecommendation struct {
	Ticker           string          `json:"ticker"`
	Weight           float64         `json:"weight"`
	CurrentPrice     float64         `json:"currentPrice"`
	AllocationAmount float64         `json:"allocationAmount"`
	EstimatedShares  decimal.Decimal `json:"estimatedShares"`
}

type PortfolioRecommendation struct {
	RiskProfile  string              `json:"riskProfile"`
	TotalBalance float64             `json:"totalBalance"`
	Timestamp    time.Time           `json:"timestamp"`
	Allocations  []ETFRecommendation `json:"allocations"`
}

type CreateAccountRequest struct {
	Name        string `json:"name"`
	RiskProfile string `json:"riskProfile"`
}

// TradeRequest carries quantity and price as decimals so fractional
// share amounts survive the wire exactly.
type TradeRequest struct {
	Ticker   string          `json:"ticker"`
	Side     string          `json:"side"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type UpdateBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

type PriceResponse struct {
	Ticker    string    `json:"ticker"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}
