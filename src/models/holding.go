package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is a non-zero position in one ticker within one account, unique
// per (account, ticker). Quantity is stored at 6 decimal places and is
// strictly positive; a position sold down to zero is deleted, never kept
// as a zero row. AvgCostPerUnit is the weighted average cost basis, which
// only buys recalculate.
type Holding struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	AccountID      uuid.UUID       `db:"account_id" json:"accountId"`
	Ticker         string          `db:"ticker" json:"ticker"`
	Quantity       decimal.Decimal `db:"quantity" json:"quantity"`
	AvgCostPerUnit decimal.Decimal `db:"avg_cost_per_unit" json:"avgCostPerUnit"`
}
