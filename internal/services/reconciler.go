package services

import (
	"context"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	repo "github.com/baharkarakas/budget-tracker-backend/internal/repository"
)

// Reconciler keeps Budget.SpentAmount in sync with transaction writes. Each
// transaction reconciles against the budget covering its own date's period.
// Deltas are applied through the repository's atomic AddSpent, so concurrent
// writers against the same budget never lose an update.
type Reconciler struct {
	budgets repo.Budgets
}

func NewReconciler(b repo.Budgets) *Reconciler { return &Reconciler{budgets: b} }

// Resolve returns the budget covering the period, models.ErrNoBudget when
// none exists. Update and delete paths must resolve before mutating the
// transaction; create treats a missing budget as non-fatal.
func (r *Reconciler) Resolve(ctx context.Context, userID string, p models.Period) (models.Budget, error) {
	return r.budgets.GetByPeriod(ctx, userID, p)
}

// OnCreate adds the new transaction's amount to its period's budget.
func (r *Reconciler) OnCreate(ctx context.Context, tx models.Transaction) (models.Budget, error) {
	return r.budgets.AddSpent(ctx, tx.UserID, tx.Date.Period(), tx.Amount)
}

// OnUpdate rolls the pre-update amount out of the old period's budget and the
// post-update amount into the new one. Within a single period this collapses
// to one delta of (new - old).
func (r *Reconciler) OnUpdate(ctx context.Context, old, updated models.Transaction) (models.Budget, error) {
	oldP, newP := old.Date.Period(), updated.Date.Period()
	if oldP == newP {
		return r.budgets.AddSpent(ctx, updated.UserID, newP, updated.Amount-old.Amount)
	}
	if _, err := r.budgets.AddSpent(ctx, old.UserID, oldP, -old.Amount); err != nil {
		return models.Budget{}, err
	}
	return r.budgets.AddSpent(ctx, updated.UserID, newP, updated.Amount)
}

// OnDelete subtracts the transaction's amount from its period's budget.
func (r *Reconciler) OnDelete(ctx context.Context, tx models.Transaction) (models.Budget, error) {
	return r.budgets.AddSpent(ctx, tx.UserID, tx.Date.Period(), -tx.Amount)
}
