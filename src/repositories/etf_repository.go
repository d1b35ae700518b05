package repositories

import (
	"context"
	"errors"

	"investing/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ETFRepository reads the sector-ETF universe scored by the external
// quantitative pipeline. It is the momentum feed behind allocation
// tilting.
type ETFRepository interface {
	// TopScoringAsset returns the highest-momentum ETF, or nil when the
	// universe has not been populated yet.
	TopScoringAsset(ctx context.Context) (*models.ETFScore, error)
	GetAll(ctx context.Context) ([]models.ETFScore, error)
}

type etfRepo struct {
	db *pgxpool.Pool
}

func NewETFRepository(db *pgxpool.Pool) ETFRepository {
	return &etfRepo{db: db}
}

func (r *etfRepo) TopScoringAsset(ctx context.Context) (*models.ETFScore, error) {
	var s models.ETFScore
	err := r.db.QueryRow(ctx,
		`SELECT ticker, sector, momentum_score, volatility, last_price, last_analyzed
		FROM etf_universe
		ORDER BY momentum_score DESC
		LIMIT 1`,
	).Scan(&s.Ticker, &s.Sector, &s.MomentumScore, &s.Volatility, &s.LastPrice, &s.LastAnalyzed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *etfRepo) GetAll(ctx context.Context) ([]models.ETFScore, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ticker, sector, momentum_score, volatility, last_price, last_analyzed
		FROM etf_universe
		ORDER BY momentum_score DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.ETFScore
	for rows.Next() {
		var s models.ETFScore
		if err := rows.Scan(&s.Ticker, &s.Sector, &s.MomentumScore, &s.Volatility, &s.LastPrice, &s.LastAnalyzed); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
