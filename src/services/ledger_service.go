package services

import (
	"context"
	"errors"
	"fmt"

	"investing/src/models"
	"investing/src/repositories"
	"investing/src/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerService owns every mutation of account balances and holdings.
// A trade is one atomic unit: the account row is locked, funds or shares
// are revalidated under the lock, and the balance update, holding upsert
// or delete, and audit row all commit together or not at all. No network
// I/O happens inside the locked section; prices arrive as arguments.
type LedgerService struct {
	tx           repositories.TxManager
	accounts     repositories.AccountRepository
	holdings     repositories.HoldingRepository
	transactions repositories.TransactionRepository
}

func NewLedgerService(
	tx repositories.TxManager,
	accounts repositories.AccountRepository,
	holdings repositories.HoldingRepository,
	transactions repositories.TransactionRepository,
) *LedgerService {
	return &LedgerService{
		tx:           tx,
		accounts:     accounts,
		holdings:     holdings,
		transactions: transactions,
	}
}

// CreateAccount opens an account with a zero cash balance.
func (s *LedgerService) CreateAccount(ctx context.Context, name string, profile models.RiskProfile) (*models.Account, error) {
	if name == "" {
		return nil, invalidArgument("account name must not be empty")
	}
	if !profile.Valid() {
		return nil, invalidArgument("unknown risk profile %q", profile)
	}

	account := &models.Account{
		Name:        name,
		RiskProfile: profile,
		CashBalance: decimal.Zero,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// DeleteAccount closes an account. Holdings and the transaction log go
// with it via cascading delete.
func (s *LedgerService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

func (s *LedgerService) GetHoldings(ctx context.Context, accountID uuid.UUID) ([]models.Holding, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.holdings.GetByAccountID(ctx, accountID)
}

func (s *LedgerService) GetTransactions(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.transactions.GetByAccountID(ctx, accountID)
}

// UpdateBalance sets the cash balance to newBalance and records the delta
// as a DEPOSIT or WITHDRAW transaction. Setting the balance it already
// has is a no-op and writes no audit row.
func (s *LedgerService) UpdateBalance(ctx context.Context, accountID uuid.UUID, newBalance decimal.Decimal) (*models.Account, error) {
	if newBalance.IsNegative() {
		return nil, invalidArgument("balance cannot be negative")
	}
	newBalance = utils.RoundMoney(newBalance)

	var account *models.Account
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		account, err = s.accounts.GetForUpdate(ctx, tx, accountID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		delta := newBalance.Sub(account.CashBalance)
		if delta.IsZero() {
			return nil
		}

		if err := s.accounts.UpdateBalance(ctx, tx, accountID, newBalance); err != nil {
			return err
		}

		txType := models.TransactionDeposit
		if delta.IsNegative() {
			txType = models.TransactionWithdraw
		}
		record := &models.Transaction{
			AccountID:       accountID,
			TransactionType: txType,
			TotalAmount:     delta.Abs(),
		}
		if err := s.transactions.Create(ctx, record, tx); err != nil {
			return err
		}

		account.CashBalance = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// ExecuteTrade executes one buy or sell against an account.
//
// Buys recalculate the weighted average cost; sells leave it unchanged.
// A sell that exhausts the position deletes the holding row rather than
// leaving a zero-quantity ghost.
func (s *LedgerService) ExecuteTrade(
	ctx context.Context,
	accountID uuid.UUID,
	ticker string,
	side models.TransactionType,
	quantity decimal.Decimal,
	price decimal.Decimal,
) (*models.Transaction, error) {
	if ticker == "" {
		return nil, invalidArgument("ticker must not be empty")
	}
	if side != models.TransactionBuy && side != models.TransactionSell {
		return nil, invalidArgument("side must be BUY or SELL, got %q", side)
	}
	if !quantity.IsPositive() {
		return nil, invalidArgument("quantity must be positive")
	}
	if price.IsNegative() {
		return nil, invalidArgument("price cannot be negative")
	}

	// Normalize to stored precision before any arithmetic.
	quantity = utils.RoundQuantity(quantity)
	if quantity.IsZero() {
		return nil, invalidArgument("quantity rounds to zero at micro-share precision")
	}
	price = utils.RoundMoney(price)
	total := utils.RoundMoney(quantity.Mul(price))

	var record *models.Transaction
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		account, err := s.accounts.GetForUpdate(ctx, tx, accountID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		holding, err := s.holdings.GetByTicker(ctx, tx, accountID, ticker)
		if err != nil {
			return err
		}

		oldQuantity := decimal.Zero
		oldAvgCost := decimal.Zero
		if holding != nil {
			oldQuantity = holding.Quantity
			oldAvgCost = holding.AvgCostPerUnit
		}

		var newBalance, newQuantity, newAvgCost decimal.Decimal
		switch side {
		case models.TransactionBuy:
			if account.CashBalance.LessThan(total) {
				return fmt.Errorf("%w: balance %s, cost %s", ErrInsufficientFunds,
					account.CashBalance.StringFixed(2), total.StringFixed(2))
			}
			newBalance = account.CashBalance.Sub(total)
			newQuantity = oldQuantity.Add(quantity)
			newAvgCost = oldQuantity.Mul(oldAvgCost).
				Add(quantity.Mul(price)).
				DivRound(newQuantity, utils.MoneyScale)

		case models.TransactionSell:
			if oldQuantity.LessThan(quantity) {
				return fmt.Errorf("%w: owned %s, selling %s", ErrInsufficientShares,
					oldQuantity.StringFixed(6), quantity.StringFixed(6))
			}
			newBalance = account.CashBalance.Add(total)
			newQuantity = oldQuantity.Sub(quantity)
			// Cost basis only changes on buys.
			newAvgCost = oldAvgCost
		}

		if err := s.accounts.UpdateBalance(ctx, tx, accountID, newBalance); err != nil {
			return err
		}

		if newQuantity.IsZero() {
			if err := s.holdings.Delete(ctx, tx, accountID, ticker); err != nil {
				return err
			}
		} else {
			updated := &models.Holding{
				AccountID:      accountID,
				Ticker:         ticker,
				Quantity:       newQuantity,
				AvgCostPerUnit: newAvgCost,
			}
			if holding != nil {
				updated.ID = holding.ID
			}
			if err := s.holdings.Upsert(ctx, tx, updated); err != nil {
				return err
			}
		}

		record = &models.Transaction{
			AccountID:       accountID,
			Ticker:          &ticker,
			TransactionType: side,
			Quantity:        &quantity,
			PricePerUnit:    &price,
			TotalAmount:     total,
		}
		return s.transactions.Create(ctx, record, tx)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
