package postgres

import (
	"context"
	"errors"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type budgetsRepo struct{ pool *pgxpool.Pool }

func (r *budgetsRepo) Create(ctx context.Context, b models.Budget) (models.Budget, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	const q = `
INSERT INTO budgets (id, user_id, month, year, amount_cents, spent_cents)
VALUES ($1,$2,$3,$4,$5,0)
RETURNING spent_cents, created_at, updated_at`
	var spent int64
	err := r.pool.QueryRow(ctx, q,
		b.ID, b.UserID, b.Month, b.Year, int64(b.Amount),
	).Scan(&spent, &b.CreatedAt, &b.UpdatedAt)
	if isUniqueViolation(err) {
		return models.Budget{}, models.ErrConflict
	}
	if err != nil {
		return models.Budget{}, err
	}
	b.SpentAmount = money.Cents(spent)
	return b, nil
}

func (r *budgetsRepo) GetByID(ctx context.Context, userID, id string) (models.Budget, error) {
	row := r.pool.QueryRow(ctx,
		selectBudget+` WHERE id=$1 AND user_id=$2`, id, userID)
	b, err := scanBudget(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Budget{}, models.ErrNotFound
	}
	return b, err
}

func (r *budgetsRepo) GetByPeriod(ctx context.Context, userID string, p models.Period) (models.Budget, error) {
	row := r.pool.QueryRow(ctx,
		selectBudget+` WHERE user_id=$1 AND month=$2 AND year=$3`,
		userID, p.Month, p.Year)
	b, err := scanBudget(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Budget{}, models.ErrNoBudget
	}
	return b, err
}

func (r *budgetsRepo) ListByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	rows, err := r.pool.Query(ctx,
		selectBudget+` WHERE user_id=$1 ORDER BY year, month`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *budgetsRepo) Update(ctx context.Context, b models.Budget) (models.Budget, error) {
	const q = `
UPDATE budgets
   SET month=$3, year=$4, amount_cents=$5, updated_at=now()
 WHERE id=$1 AND user_id=$2
RETURNING spent_cents, created_at, updated_at`
	var spent int64
	err := r.pool.QueryRow(ctx, q,
		b.ID, b.UserID, b.Month, b.Year, int64(b.Amount),
	).Scan(&spent, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Budget{}, models.ErrNotFound
	}
	if isUniqueViolation(err) {
		return models.Budget{}, models.ErrConflict
	}
	if err != nil {
		return models.Budget{}, err
	}
	b.SpentAmount = money.Cents(spent)
	return b, nil
}

// AddSpent is the single atomic read-modify-write on the running total;
// the increment happens inside one UPDATE so concurrent deltas serialize
// at the row level and none is lost.
func (r *budgetsRepo) AddSpent(ctx context.Context, userID string, p models.Period, delta money.Cents) (models.Budget, error) {
	const q = `
UPDATE budgets
   SET spent_cents = spent_cents + $4,
       updated_at = now()
 WHERE user_id=$1 AND month=$2 AND year=$3
RETURNING id, user_id, month, year, amount_cents, spent_cents, created_at, updated_at`
	row := r.pool.QueryRow(ctx, q, userID, p.Month, p.Year, int64(delta))
	b, err := scanBudget(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Budget{}, models.ErrNoBudget
	}
	return b, err
}

func (r *budgetsRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM budgets WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

const selectBudget = `
SELECT id, user_id, month, year, amount_cents, spent_cents, created_at, updated_at
  FROM budgets`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var (
		b             models.Budget
		amount, spent int64
	)
	err := row.Scan(&b.ID, &b.UserID, &b.Month, &b.Year, &amount, &spent, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Budget{}, err
	}
	b.Amount = money.Cents(amount)
	b.SpentAmount = money.Cents(spent)
	return b, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
