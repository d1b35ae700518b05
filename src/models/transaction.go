package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionBuy      TransactionType = "BUY"
	TransactionSell     TransactionType = "SELL"
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
)

// Transaction is an immutable audit record. Ticker, Quantity and
// PricePerUnit are nil for cash movements (DEPOSIT/WITHDRAW). Rows are
// append-only and removed only by cascading account deletion.
type Transaction struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	AccountID       uuid.UUID        `db:"account_id" json:"accountId"`
	Ticker          *string          `db:"ticker" json:"ticker,omitempty"`
	TransactionType TransactionType  `db:"transaction_type" json:"transactionType"`
	Quantity        *decimal.Decimal `db:"quantity" json:"quantity,omitempty"`
	PricePerUnit    *decimal.Decimal `db:"price_per_unit" json:"pricePerUnit,omitempty"`
	TotalAmount     decimal.Decimal  `db:"total_amount" json:"totalAmount"`
	TransactionDate time.Time        `db:"transaction_date" json:"transactionDate"`
	CreatedAt       time.Time        `db:"created_at" json:"createdAt"`
}
