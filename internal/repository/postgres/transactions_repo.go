package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

func (r *transactionsRepo) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	const q = `
INSERT INTO transactions (id, user_id, amount_cents, category, date)
VALUES ($1,$2,$3,$4,$5)
RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, q,
		tx.ID, tx.UserID, int64(tx.Amount), categoryArg(tx.Category), tx.Date.Time,
	).Scan(&tx.CreatedAt, &tx.UpdatedAt)
	return tx, err
}

func (r *transactionsRepo) GetByID(ctx context.Context, userID, id string) (models.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, user_id, amount_cents, category, date, created_at, updated_at
		   FROM transactions
		  WHERE id=$1 AND user_id=$2`,
		id, userID,
	)
	tx, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Transaction{}, models.ErrNotFound
	}
	return tx, err
}

func (r *transactionsRepo) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, amount_cents, category, date, created_at, updated_at
		   FROM transactions
		  WHERE user_id=$1
		  ORDER BY date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (r *transactionsRepo) Update(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	const q = `
UPDATE transactions
   SET amount_cents=$3, category=$4, date=$5, updated_at=now()
 WHERE id=$1 AND user_id=$2
RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, q,
		tx.ID, tx.UserID, int64(tx.Amount), categoryArg(tx.Category), tx.Date.Time,
	).Scan(&tx.CreatedAt, &tx.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Transaction{}, models.ErrNotFound
	}
	return tx, err
}

func (r *transactionsRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM transactions WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func categoryArg(c *models.Category) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var (
		tx     models.Transaction
		amount int64
		cat    *string
		date   time.Time
	)
	err := row.Scan(&tx.ID, &tx.UserID, &amount, &cat, &date, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	tx.Amount = money.Cents(amount)
	if cat != nil {
		c := models.Category(*cat)
		tx.Category = &c
	}
	tx.Date = models.Date{Time: date}
	return tx, nil
}
