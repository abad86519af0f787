package services

import (
	"context"
	"errors"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	repo "github.com/baharkarakas/budget-tracker-backend/internal/repository"
	"github.com/baharkarakas/budget-tracker-backend/internal/worker"
)

type BudgetService struct {
	budgets repo.Budgets
	log     repo.AuditLogs
	wp      *worker.Pool
}

func NewBudgetService(b repo.Budgets, l repo.AuditLogs, wp *worker.Pool) *BudgetService {
	return &BudgetService{budgets: b, log: l, wp: wp}
}

// BudgetInput carries the mutable budget fields; nil means "leave unchanged"
// on update.
type BudgetInput struct {
	Month  *int
	Year   *int
	Amount *money.Cents
}

// Summary is the budget-vs-spending view for one period. All fields are zero
// when no budget exists for the period; that is a successful response, not an
// error.
type Summary struct {
	Month           int         `json:"month"`
	Year            int         `json:"year"`
	BudgetAmount    money.Cents `json:"budget_amount"`
	SpentAmount     money.Cents `json:"spent_amount"`
	RemainingAmount money.Cents `json:"remaining_amount"`
}

func (s *BudgetService) audit(userID, entityID, action string, det map[string]any) {
	l := models.AuditLog{
		UserID:     userID,
		EntityType: "budget",
		EntityID:   &entityID,
		Action:     action,
		Details:    det,
	}
	s.wp.Submit(func() { _ = s.log.Create(context.Background(), l) })
}

// Create rejects a second budget for the same (month, year) with
// models.ErrConflict. SpentAmount always starts at zero.
func (s *BudgetService) Create(ctx context.Context, userID string, month, year int, amount money.Cents) (models.Budget, error) {
	b := models.Budget{
		UserID: userID,
		Month:  month,
		Year:   year,
		Amount: amount,
	}
	b, err := s.budgets.Create(ctx, b)
	if err != nil {
		return models.Budget{}, err
	}
	s.audit(userID, b.ID, "created", map[string]any{"period": b.Period().Key()})
	return b, nil
}

func (s *BudgetService) GetByID(ctx context.Context, userID, id string) (models.Budget, error) {
	return s.budgets.GetByID(ctx, userID, id)
}

func (s *BudgetService) ListByUser(ctx context.Context, userID string) ([]models.Budget, error) {
	return s.budgets.ListByUser(ctx, userID)
}

// Update applies a partial edit. It never recomputes SpentAmount from
// transactions; drift repair is the caller's concern.
func (s *BudgetService) Update(ctx context.Context, userID, id string, in BudgetInput) (models.Budget, error) {
	b, err := s.budgets.GetByID(ctx, userID, id)
	if err != nil {
		return models.Budget{}, err
	}
	if in.Month != nil {
		b.Month = *in.Month
	}
	if in.Year != nil {
		b.Year = *in.Year
	}
	if in.Amount != nil {
		b.Amount = *in.Amount
	}
	b, err = s.budgets.Update(ctx, b)
	if err != nil {
		return models.Budget{}, err
	}
	s.audit(userID, id, "updated", map[string]any{"amount": b.Amount.String()})
	return b, nil
}

// Delete removes the budget only; transactions recorded for the period are
// left in place.
func (s *BudgetService) Delete(ctx context.Context, userID, id string) error {
	if err := s.budgets.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.audit(userID, id, "deleted", nil)
	return nil
}

// SummaryFor is total over all periods: a period without a budget yields the
// all-zero summary.
func (s *BudgetService) SummaryFor(ctx context.Context, userID string, p models.Period) (Summary, error) {
	sum := Summary{Month: p.Month, Year: p.Year}
	b, err := s.budgets.GetByPeriod(ctx, userID, p)
	if errors.Is(err, models.ErrNoBudget) {
		return sum, nil
	}
	if err != nil {
		return Summary{}, err
	}
	sum.BudgetAmount = b.Amount
	sum.SpentAmount = b.SpentAmount
	sum.RemainingAmount = b.Remaining()
	return sum, nil
}
