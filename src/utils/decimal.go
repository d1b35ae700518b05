package utils

import (
	"github.com/shopspring/decimal"
)

// Stored precisions: currency amounts are cents, share quantities are
// micro-shares. Every intermediate result is rounded to these scales
// before it is persisted or compared, so repeated fractional trades
// accumulate without binary floating-point drift.
const (
	MoneyScale    = 2
	QuantityScale = 6
)

// RoundMoney rounds a currency amount to cent precision.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// RoundQuantity rounds a share quantity to micro-share precision.
func RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityScale)
}
