package repositories

import (
	"context"
	"errors"

	"investing/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by lookups that miss. Services translate it
// into their own taxonomy.
var ErrNotFound = errors.New("not found")

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// GetForUpdate locks the account row for the duration of tx,
	// serializing concurrent trades against the same account.
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *models.Account) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO accounts (name, risk_profile, cash_balance)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		account.Name, account.RiskProfile, account.CashBalance,
	).Scan(&account.ID, &account.CreatedAt)
}

func (r *accountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return scanAccount(r.db.QueryRow(ctx,
		`SELECT id, name, risk_profile, cash_balance, created_at FROM accounts WHERE id = $1`, id))
}

func (r *accountRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Account, error) {
	return scanAccount(tx.QueryRow(ctx,
		`SELECT id, name, risk_profile, cash_balance, created_at FROM accounts WHERE id = $1 FOR UPDATE`, id))
}

func (r *accountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance decimal.Decimal) error {
	var row pgx.Row
	query := `UPDATE accounts SET cash_balance = $1 WHERE id = $2 RETURNING id`
	if tx != nil {
		row = tx.QueryRow(ctx, query, balance, id)
	} else {
		row = r.db.QueryRow(ctx, query, balance, id)
	}

	var updated uuid.UUID
	if err := row.Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *accountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Holdings and transactions go with the account via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Name, &a.RiskProfile, &a.CashBalance, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
