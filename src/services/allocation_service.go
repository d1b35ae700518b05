package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"investing/src/config"
	"investing/src/models"
	"investing/src/schemas"
	"investing/src/utils"
)

// MomentumFeed supplies the current best-scoring sector asset, or nil
// when no scores exist yet.
type MomentumFeed interface {
	TopScoringAsset(ctx context.Context) (*models.ETFScore, error)
}

// Asset roles inside the base weight maps. The tilt drains the primary
// stock asset first, then the secondary; the risk adjustment shifts
// weight between a stock asset and the bond asset.
const (
	primaryStockTicker   = "VOO"
	secondaryStockTicker = "VTI"
	bondTicker           = "BND"
	aggregateBondTicker  = "AGG"
)

const (
	// Fraction reserved for the momentum winner.
	tiltFraction = 0.30
	// Slack allowed when the sources cannot free the full fraction.
	tiltTolerance = 0.01
	// Entries at or below this weight are dropped from the output.
	minWeight = 0.01
	// Bounds a risk-adjusted weight must stay within, or the whole
	// adjustment is discarded.
	adjustmentFloor = 0.05
	adjustmentCeil  = 0.95
	// Tilt depletion point below which the adjustment source switches
	// to the secondary stock asset.
	depletedStockWeight = 0.10
)

type balanceTier struct {
	lower    float64 // inclusive
	upper    float64 // exclusive
	etfCount int
}

// Ordered balance brackets mapping a balance to a portfolio size.
var balanceTiers = []balanceTier{
	{0, 100, 1},
	{100, 500, 2},
	{500, 2000, 3},
	{2000, math.Inf(1), 4},
}

// AllocationService computes target ETF weightings from a balance, a risk
// profile and, optionally, live momentum rankings. It holds no mutable
// state and is safe to call concurrently.
type AllocationService struct {
	tiers map[string]map[string]float64
}

func NewAllocationService(cfg config.AllocationConfig) *AllocationService {
	return &AllocationService{tiers: cfg.Tiers}
}

// ETFCount maps a balance to the number of ETFs a recommendation spans.
func (s *AllocationService) ETFCount(balance float64) (int, error) {
	if math.IsNaN(balance) {
		return 0, invalidArgument("balance cannot be NaN")
	}
	if balance < 0 {
		return 0, invalidArgument("balance cannot be negative")
	}
	for _, tier := range balanceTiers {
		if balance >= tier.lower && balance < tier.upper {
			return tier.etfCount, nil
		}
	}
	return balanceTiers[len(balanceTiers)-1].etfCount, nil
}

// Recommend returns (ticker, weight) pairs summing to 1.0.
//
// Balances under $100 always get a single-asset allocation: below that
// floor diversification is not worth the fees, so risk profile and
// momentum are ignored. Larger balances start from the configured base
// weights for their tier, are tilted toward the momentum winner when the
// feed reports one with a positive score, and are then shifted between
// the stock and bond assets according to the risk profile.
func (s *AllocationService) Recommend(ctx context.Context, balance float64, profile models.RiskProfile, feed MomentumFeed) ([]schemas.Allocation, error) {
	count, err := s.ETFCount(balance)
	if err != nil {
		return nil, err
	}

	tierKey := fmt.Sprintf("tier%d", count)
	base, ok := s.tiers[tierKey]
	if !ok || len(base) == 0 {
		return nil, &ConfigurationError{Tier: tierKey}
	}

	// Tier-1 override: the capital constraint beats everything else.
	if count == 1 {
		for ticker := range base {
			return []schemas.Allocation{{Ticker: ticker, Weight: 1.0}}, nil
		}
	}

	weights := make(map[string]float64, len(base)+1)
	for ticker, weight := range base {
		weights[ticker] = weight
	}

	tilted := false
	if feed != nil {
		winner, err := feed.TopScoringAsset(ctx)
		if err != nil {
			return nil, err
		}
		// A non-positive top score means the whole sector universe is
		// falling; no winner, no tilt.
		if winner != nil && winner.MomentumScore > 0 {
			tilted = applyMomentumTilt(weights, winner.Ticker)
			if !tilted {
				utils.LoggerFromContext(ctx).WithField("winner", winner.Ticker).
					Debug("momentum tilt skipped: sources cannot free the tilt fraction")
			}
		}
	}

	var delta float64
	switch profile {
	case models.RiskBalanced:
	case models.RiskConservative:
		delta = 0.20
	case models.RiskGrowth:
		delta = -0.15
	default:
		return nil, invalidArgument("unknown risk profile %q", profile)
	}

	if delta != 0 {
		bond := bondTicker
		if _, ok := weights[aggregateBondTicker]; ok {
			bond = aggregateBondTicker
		}
		stock := primaryStockTicker
		if tilted && weights[stock] < depletedStockWeight {
			stock = secondaryStockTicker
		}

		newBond := round2(weights[bond] + delta)
		newStock := round2(weights[stock] - delta)
		if newBond >= adjustmentFloor && newBond <= adjustmentCeil &&
			newStock >= adjustmentFloor && newStock <= adjustmentCeil {
			weights[bond] = newBond
			weights[stock] = newStock
		} else {
			utils.LoggerFromContext(ctx).WithField("riskProfile", profile).
				Debug("risk adjustment skipped: adjusted weights out of bounds")
		}
	}

	allocations := make([]schemas.Allocation, 0, len(weights))
	for ticker, weight := range weights {
		if weight > minWeight {
			allocations = append(allocations, schemas.Allocation{Ticker: ticker, Weight: weight})
		}
	}
	sort.Slice(allocations, func(i, j int) bool {
		if allocations[i].Weight != allocations[j].Weight {
			return allocations[i].Weight > allocations[j].Weight
		}
		return allocations[i].Ticker < allocations[j].Ticker
	})
	return allocations, nil
}

// applyMomentumTilt moves the tilt fraction onto winner, draining the
// primary stock asset first and the secondary only for the remainder.
// When the two sources cannot free the fraction (within tolerance) the
// weights are left untouched and false is returned.
func applyMomentumTilt(weights map[string]float64, winner string) bool {
	sources := []string{primaryStockTicker, secondaryStockTicker}

	available := 0.0
	for _, src := range sources {
		available += weights[src]
	}
	if available < tiltFraction-tiltTolerance {
		return false
	}

	remaining := math.Min(tiltFraction, available)
	freed := remaining
	for _, src := range sources {
		take := math.Min(weights[src], remaining)
		if take > 0 {
			weights[src] = round2(weights[src] - take)
			remaining -= take
		}
	}
	weights[winner] = round2(weights[winner] + freed)
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
