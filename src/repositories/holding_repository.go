package repositories

import (
	"context"
	"errors"

	"investing/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldingRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Holding, error)
	// GetByTicker returns nil (no error) when the account holds no
	// position in ticker. Runs inside tx when one is supplied.
	GetByTicker(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, ticker string) (*models.Holding, error)
	Upsert(ctx context.Context, tx pgx.Tx, h *models.Holding) error
	Delete(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, ticker string) error
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

func (r *holdingRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, ticker, quantity, avg_cost_per_unit
		FROM holdings
		WHERE account_id = $1
		ORDER BY ticker`,
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.AccountID, &h.Ticker, &h.Quantity, &h.AvgCostPerUnit); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *holdingRepo) GetByTicker(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, ticker string) (*models.Holding, error) {
	query := `SELECT id, account_id, ticker, quantity, avg_cost_per_unit
		FROM holdings
		WHERE account_id = $1 AND ticker = $2`

	var row pgx.Row
	if tx != nil {
		row = tx.QueryRow(ctx, query, accountID, ticker)
	} else {
		row = r.db.QueryRow(ctx, query, accountID, ticker)
	}

	var h models.Holding
	err := row.Scan(&h.ID, &h.AccountID, &h.Ticker, &h.Quantity, &h.AvgCostPerUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *holdingRepo) Upsert(ctx context.Context, tx pgx.Tx, h *models.Holding) error {
	query := `
		INSERT INTO holdings (account_id, ticker, quantity, avg_cost_per_unit)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id, ticker) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			avg_cost_per_unit = EXCLUDED.avg_cost_per_unit
		RETURNING id`

	if tx != nil {
		return tx.QueryRow(ctx, query, h.AccountID, h.Ticker, h.Quantity, h.AvgCostPerUnit).Scan(&h.ID)
	}
	return r.db.QueryRow(ctx, query, h.AccountID, h.Ticker, h.Quantity, h.AvgCostPerUnit).Scan(&h.ID)
}

func (r *holdingRepo) Delete(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, ticker string) error {
	query := `DELETE FROM holdings WHERE account_id = $1 AND ticker = $2`

	if tx != nil {
		_, err := tx.Exec(ctx, query, accountID, ticker)
		return err
	}
	_, err := r.db.Exec(ctx, query, accountID, ticker)
	return err
}
