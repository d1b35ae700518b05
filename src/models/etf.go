package models

import (
	"time"
)

// ETFScore is one row of the sector-ETF universe scored by the external
// quantitative pipeline. This service only reads it: the highest momentum
// score drives the allocation tilt.
type ETFScore struct {
	Ticker        string    `db:"ticker" json:"ticker"`
	Sector        string    `db:"sector" json:"sector"`
	MomentumScore float64   `db:"momentum_score" json:"momentumScore"`
	Volatility    float64   `db:"volatility" json:"volatility"`
	LastPrice     float64   `db:"last_price" json:"lastPrice"`
	LastAnalyzed  time.Time `db:"last_analyzed" json:"lastAnalyzed"`
}
