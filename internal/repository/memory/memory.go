// Package memory provides in-memory repository implementations backed by
// mutex-guarded maps. They honor the same ownership and atomicity contracts
// as the postgres repositories and back the service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	repo "github.com/baharkarakas/budget-tracker-backend/internal/repository"
	"github.com/google/uuid"
)

type Repositories struct {
	Transactions repo.Transactions
	Budgets      repo.Budgets
	AuditLogs    repo.AuditLogs
}

func NewRepositories() Repositories {
	return Repositories{
		Transactions: &transactionsRepo{items: map[string]models.Transaction{}},
		Budgets:      &budgetsRepo{items: map[string]models.Budget{}},
		AuditLogs:    &auditLogsRepo{},
	}
}

// ---------- transactions ----------

type transactionsRepo struct {
	mu    sync.Mutex
	items map[string]models.Transaction
}

func (r *transactionsRepo) Create(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	now := time.Now()
	tx.CreatedAt, tx.UpdatedAt = now, now
	r.items[tx.ID] = tx
	return tx, nil
}

func (r *transactionsRepo) GetByID(_ context.Context, userID, id string) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.items[id]
	if !ok || tx.UserID != userID {
		return models.Transaction{}, models.ErrNotFound
	}
	return tx, nil
}

func (r *transactionsRepo) ListByUser(_ context.Context, userID string) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Transaction
	for _, tx := range r.items {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date.Time) })
	return out, nil
}

func (r *transactionsRepo) Update(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[tx.ID]
	if !ok || cur.UserID != tx.UserID {
		return models.Transaction{}, models.ErrNotFound
	}
	tx.CreatedAt = cur.CreatedAt
	tx.UpdatedAt = time.Now()
	r.items[tx.ID] = tx
	return tx, nil
}

func (r *transactionsRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.items[id]
	if !ok || tx.UserID != userID {
		return models.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// ---------- budgets ----------

type budgetsRepo struct {
	mu    sync.Mutex
	items map[string]models.Budget
}

func (r *budgetsRepo) Create(_ context.Context, b models.Budget) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cur := range r.items {
		if cur.UserID == b.UserID && cur.Month == b.Month && cur.Year == b.Year {
			return models.Budget{}, models.ErrConflict
		}
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.SpentAmount = 0
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	r.items[b.ID] = b
	return b, nil
}

func (r *budgetsRepo) GetByID(_ context.Context, userID, id string) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok || b.UserID != userID {
		return models.Budget{}, models.ErrNotFound
	}
	return b, nil
}

func (r *budgetsRepo) GetByPeriod(_ context.Context, userID string, p models.Period) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.findPeriod(userID, p); ok {
		return b, nil
	}
	return models.Budget{}, models.ErrNoBudget
}

func (r *budgetsRepo) ListByUser(_ context.Context, userID string) ([]models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Budget
	for _, b := range r.items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

func (r *budgetsRepo) Update(_ context.Context, b models.Budget) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[b.ID]
	if !ok || cur.UserID != b.UserID {
		return models.Budget{}, models.ErrNotFound
	}
	for _, other := range r.items {
		if other.ID != b.ID && other.UserID == b.UserID &&
			other.Month == b.Month && other.Year == b.Year {
			return models.Budget{}, models.ErrConflict
		}
	}
	b.SpentAmount = cur.SpentAmount
	b.CreatedAt = cur.CreatedAt
	b.UpdatedAt = time.Now()
	r.items[b.ID] = b
	return b, nil
}

// AddSpent increments under the repo mutex, matching the atomicity the
// postgres implementation gets from a single UPDATE.
func (r *budgetsRepo) AddSpent(_ context.Context, userID string, p models.Period, delta money.Cents) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.findPeriod(userID, p)
	if !ok {
		return models.Budget{}, models.ErrNoBudget
	}
	b.SpentAmount += delta
	b.UpdatedAt = time.Now()
	r.items[b.ID] = b
	return b, nil
}

func (r *budgetsRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok || b.UserID != userID {
		return models.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *budgetsRepo) findPeriod(userID string, p models.Period) (models.Budget, bool) {
	for _, b := range r.items {
		if b.UserID == userID && b.Month == p.Month && b.Year == p.Year {
			return b, true
		}
	}
	return models.Budget{}, false
}

// ---------- audit logs ----------

type auditLogsRepo struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func (r *auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()
	r.logs = append(r.logs, l)
	return nil
}
