package repositories

import (
	"context"

	"investing/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error)
	Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, ticker, transaction_type, quantity, price_per_unit, total_amount, transaction_date, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_date DESC`,
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Ticker, &t.TransactionType, &t.Quantity,
			&t.PricePerUnit, &t.TotalAmount, &t.TransactionDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error {
	query := `
		INSERT INTO transactions (account_id, ticker, transaction_type, quantity, price_per_unit, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, transaction_date, created_at`

	if tx != nil {
		return tx.QueryRow(ctx, query,
			t.AccountID, t.Ticker, t.TransactionType, t.Quantity, t.PricePerUnit, t.TotalAmount,
		).Scan(&t.ID, &t.TransactionDate, &t.CreatedAt)
	}
	return r.db.QueryRow(ctx, query,
		t.AccountID, t.Ticker, t.TransactionType, t.Quantity, t.PricePerUnit, t.TotalAmount,
	).Scan(&t.ID, &t.TransactionDate, &t.CreatedAt)
}
