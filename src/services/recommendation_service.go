package services

import (
	"context"
	"time"

	"investing/src/models"
	"investing/src/schemas"
	"investing/src/utils"

	"github.com/shopspring/decimal"
)

// PriceOracle supplies current prices. Implemented by the market data
// client; failures propagate verbatim, retries belong to the client.
type PriceOracle interface {
	GetPrice(ctx context.Context, ticker string) (float64, error)
}

// RecommendationService turns allocation weights into concrete dollar
// amounts using live prices. All price and momentum I/O happens here,
// before anything reaches the ledger.
type RecommendationService struct {
	allocation *AllocationService
	market     PriceOracle
	feed       MomentumFeed
}

func NewRecommendationService(allocation *AllocationService, market PriceOracle, feed MomentumFeed) *RecommendationService {
	return &RecommendationService{
		allocation: allocation,
		market:     market,
		feed:       feed,
	}
}

// GetRecommendation prices every allocated ticker and splits the balance
// across them. An unpriceable asset fails the whole recommendation: a
// partial portfolio is worse than none.
func (s *RecommendationService) GetRecommendation(ctx context.Context, balance float64, profile models.RiskProfile) (*schemas.PortfolioRecommendation, error) {
	allocations, err := s.allocation.Recommend(ctx, balance, profile, s.feed)
	if err != nil {
		return nil, err
	}

	enriched := make([]schemas.ETFRecommendation, 0, len(allocations))
	for _, allocation := range allocations {
		price, err := s.market.GetPrice(ctx, allocation.Ticker)
		if err != nil {
			return nil, err
		}

		amount := round2(balance * allocation.Weight)
		estimatedShares := decimal.Zero
		if price > 0 {
			estimatedShares = decimal.NewFromFloat(amount).
				DivRound(decimal.NewFromFloat(price), utils.QuantityScale)
		}

		enriched = append(enriched, schemas.ETFRecommendation{
			Ticker:           allocation.Ticker,
			Weight:           allocation.Weight,
			CurrentPrice:     price,
			AllocationAmount: amount,
			EstimatedShares:  estimatedShares,
		})
	}

	return &schemas.PortfolioRecommendation{
		RiskProfile:  string(profile),
		TotalBalance: balance,
		Timestamp:    time.Now().UTC(),
		Allocations:  enriched,
	}, nil
}
