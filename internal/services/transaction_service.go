package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/budget-tracker-backend/internal/metrics"
	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	repo "github.com/baharkarakas/budget-tracker-backend/internal/repository"
	"github.com/baharkarakas/budget-tracker-backend/internal/worker"
)

type TransactionService struct {
	trx repo.Transactions
	rc  *Reconciler
	log repo.AuditLogs
	wp  *worker.Pool
}

func NewTransactionService(t repo.Transactions, rc *Reconciler, l repo.AuditLogs, wp *worker.Pool) *TransactionService {
	return &TransactionService{trx: t, rc: rc, log: l, wp: wp}
}

// TransactionInput carries the mutable fields of a transaction. Nil fields on
// update mean "leave unchanged"; CategorySet distinguishes clearing the
// category from not touching it.
type TransactionInput struct {
	Amount      *money.Cents
	Category    *models.Category
	CategorySet bool
	Date        *models.Date
}

// ----------------- Helpers -----------------

func (s *TransactionService) audit(userID, entityID, action string, det map[string]any) {
	l := models.AuditLog{
		UserID:     userID,
		EntityType: "transaction",
		EntityID:   &entityID,
		Action:     action,
		Details:    det,
	}
	s.wp.Submit(func() { _ = s.log.Create(context.Background(), l) })
}

// ----------------- CREATE -----------------

// Create persists the transaction and reconciles its amount into the budget
// covering the transaction's period. A missing budget does not roll the
// transaction back: the caller gets the persisted transaction together with
// models.ErrNoBudget.
func (s *TransactionService) Create(ctx context.Context, userID string, in TransactionInput) (models.Transaction, models.Budget, error) {
	tx := models.Transaction{
		UserID:   userID,
		Amount:   *in.Amount,
		Category: in.Category,
		Date:     *in.Date,
	}
	tx, err := s.trx.Create(ctx, tx)
	if err != nil {
		return models.Transaction{}, models.Budget{}, err
	}
	metrics.TransactionsTotal.WithLabelValues("create").Inc()
	s.audit(userID, tx.ID, "created", map[string]any{"amount": tx.Amount.String()})

	b, err := s.rc.OnCreate(ctx, tx)
	if errors.Is(err, models.ErrNoBudget) {
		metrics.ReconciliationsTotal.WithLabelValues("no_budget").Inc()
		return tx, models.Budget{}, models.ErrNoBudget
	}
	if err != nil {
		return tx, models.Budget{}, err
	}
	metrics.ReconciliationsTotal.WithLabelValues("applied").Inc()
	return tx, b, nil
}

// ----------------- UPDATE -----------------

// Update requires a resolvable budget for both the transaction's current
// period and (when the date moves) the target period; otherwise the
// transaction is left untouched and models.ErrNoBudget is returned.
func (s *TransactionService) Update(ctx context.Context, userID, id string, in TransactionInput) (models.Transaction, models.Budget, error) {
	old, err := s.trx.GetByID(ctx, userID, id)
	if err != nil {
		return models.Transaction{}, models.Budget{}, err
	}

	updated := old
	if in.Amount != nil {
		updated.Amount = *in.Amount
	}
	if in.CategorySet {
		updated.Category = in.Category
	}
	if in.Date != nil {
		updated.Date = *in.Date
	}

	if _, err := s.rc.Resolve(ctx, userID, old.Date.Period()); err != nil {
		return models.Transaction{}, models.Budget{}, err
	}
	if updated.Date.Period() != old.Date.Period() {
		if _, err := s.rc.Resolve(ctx, userID, updated.Date.Period()); err != nil {
			return models.Transaction{}, models.Budget{}, err
		}
	}

	updated, err = s.trx.Update(ctx, updated)
	if err != nil {
		return models.Transaction{}, models.Budget{}, err
	}
	metrics.TransactionsTotal.WithLabelValues("update").Inc()
	s.audit(userID, id, "updated", map[string]any{"amount": updated.Amount.String()})

	b, err := s.rc.OnUpdate(ctx, old, updated)
	if err != nil {
		return updated, models.Budget{}, err
	}
	metrics.ReconciliationsTotal.WithLabelValues("applied").Inc()
	return updated, b, nil
}

// ----------------- DELETE -----------------

// Delete requires a resolvable budget for the transaction's period; without
// one the transaction is kept and models.ErrNoBudget returned.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) (models.Budget, error) {
	tx, err := s.trx.GetByID(ctx, userID, id)
	if err != nil {
		return models.Budget{}, err
	}
	if _, err := s.rc.Resolve(ctx, userID, tx.Date.Period()); err != nil {
		return models.Budget{}, err
	}

	b, err := s.rc.OnDelete(ctx, tx)
	if err != nil {
		return models.Budget{}, err
	}
	if err := s.trx.Delete(ctx, userID, id); err != nil {
		return models.Budget{}, err
	}
	metrics.TransactionsTotal.WithLabelValues("delete").Inc()
	metrics.ReconciliationsTotal.WithLabelValues("applied").Inc()
	s.audit(userID, id, "deleted", nil)
	return b, nil
}

// ----------------- Queries -----------------

func (s *TransactionService) GetByID(ctx context.Context, userID, id string) (models.Transaction, error) {
	return s.trx.GetByID(ctx, userID, id)
}

func (s *TransactionService) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.trx.ListByUser(ctx, userID)
}
