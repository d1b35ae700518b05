package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskGrowth       RiskProfile = "growth"
)

// Valid reports whether the profile is one of the three supported tokens.
func (p RiskProfile) Valid() bool {
	switch p {
	case RiskConservative, RiskBalanced, RiskGrowth:
		return true
	}
	return false
}

// Account owns a cash balance and a risk profile. The balance is only
// mutated by the ledger service: trades and explicit deposits/withdrawals.
type Account struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	RiskProfile RiskProfile     `db:"risk_profile" json:"riskProfile"`
	CashBalance decimal.Decimal `db:"cash_balance" json:"cashBalance"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}
