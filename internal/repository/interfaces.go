package repository

import (
	"context"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
)

// Every method is scoped to a user id; a row owned by another user is
// indistinguishable from an absent row (models.ErrNotFound).

type Transactions interface {
	Create(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	GetByID(ctx context.Context, userID, id string) (models.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	Update(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	Delete(ctx context.Context, userID, id string) error
}

type Budgets interface {
	Create(ctx context.Context, b models.Budget) (models.Budget, error)
	GetByID(ctx context.Context, userID, id string) (models.Budget, error)
	GetByPeriod(ctx context.Context, userID string, p models.Period) (models.Budget, error)
	ListByUser(ctx context.Context, userID string) ([]models.Budget, error)
	Update(ctx context.Context, b models.Budget) (models.Budget, error)
	Delete(ctx context.Context, userID, id string) error

	// AddSpent applies a single atomic increment to the period budget's
	// running total, so concurrent writers never lose updates.
	// Returns models.ErrNoBudget when no budget exists for the period.
	AddSpent(ctx context.Context, userID string, p models.Period, delta money.Cents) (models.Budget, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
