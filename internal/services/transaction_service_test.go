package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	"github.com/baharkarakas/budget-tracker-backend/internal/repository/memory"
	"github.com/baharkarakas/budget-tracker-backend/internal/worker"
)

func newTestServices(t *testing.T) (*TransactionService, *BudgetService, memory.Repositories) {
	t.Helper()
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	rc := NewReconciler(repos.Budgets)
	ts := NewTransactionService(repos.Transactions, rc, repos.AuditLogs, wp)
	bs := NewBudgetService(repos.Budgets, repos.AuditLogs, wp)
	return ts, bs, repos
}

func cents(v int64) *money.Cents {
	c := money.Cents(v)
	return &c
}

func date(y int, m time.Month, d int) *models.Date {
	v := models.NewDate(y, m, d)
	return &v
}

func txInput(amount int64, y int, m time.Month, d int) TransactionInput {
	return TransactionInput{Amount: cents(amount), Date: date(y, m, d)}
}

func TestCreateReconcilesIntoPeriodBudget(t *testing.T) {
	ts, bs, _ := newTestServices(t)
	ctx := context.Background()
	const user = "u1"

	if _, err := bs.Create(ctx, user, 1, 2024, 10000); err != nil {
		t.Fatal(err)
	}

	tx, b, err := ts.Create(ctx, user, txInput(1550, 2024, time.January, 15))
	if err != nil {
		t.Fatal(err)
	}
	if tx.ID == "" {
		t.Fatal("transaction id missing")
	}
	if b.SpentAmount != 1550 {
		t.Fatalf("spent = %d, want 1550", b.SpentAmount)
	}
	if b.Remaining() != 8450 {
		t.Fatalf("remaining = %d, want 8450", b.Remaining())
	}
}

func TestCreateWithoutBudgetKeepsTransaction(t *testing.T) {
	ts, _, _ := newTestServices(t)
	ctx := context.Background()
	const user = "u1"

	tx, _, err := ts.Create(ctx, user, txInput(500, 2024, time.June, 2))
	if !errors.Is(err, models.ErrNoBudget) {
		t.Fatalf("expected ErrNoBudget, got %v", err)
	}

	got, err := ts.GetByID(ctx, user, tx.ID)
	if err != nil {
		t.Fatalf("transaction should be persisted: %v", err)
	}
	if got.Amount != 500 {
		t.Fatalf("amount = %d, want 500", got.Amount)
	}
}

func TestUpdateAdjustsSpentByDelta(t *testing.T) {
	ts, bs, _ := newTestServices(t)
	ctx := context.Background()
	const user = "u1"

	if _, err := bs.Create(ctx, user, 2, 2024, 20000); err != nil {
		t.Fatal(err)
	}
	tx, _, err := ts.Create(ctx, user, txInput(1000, 2024, time.February, 10))
	if err != nil {
		t.Fatal(err)
	}

	_, b, err := ts.Update(ctx, user, tx.ID, TransactionInput{Amount: cents(2500)})
	if err != nil {
		t.Fatal(err)
	}
	if b.SpentAmount != 2500 {
		t.Fatalf("spent = %d, want 2500", b.SpentAmount)
	}
}

func TestUpdateMovesAmountAcrossPeriods(t *testing.T) {
	ts, bs, repos := newTestServices(t)
	ctx := context.Background()
	const user = "u1"

	if _, err := bs.Create(ctx, user, 1, 2024, 10000); err != nil {
		t.Fatal(err)
	}
	if _, err := bs.Create(ctx, user, 2, 2024, 10000); err != nil {
		t.Fatal(err)
	}
	tx, _, err := ts.Create(ctx, user, txInput(1000, 2024, time.January, 20))
	if err != nil {
		t.Fatal(err)
	}

	_, b, err := ts.Update(ctx, user, tx.ID, TransactionInput{Date: date(2024, time.February, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if b.Month != 2 || b.SpentAmount != 1000 {
		t.Fatalf("target budget got %+v, want month=2 spent=1000", b)
	}

	jan, err := repos.Budgets.GetByPeriod(ctx, user, models.Period{Month: 1, Year: 2024})
	if err != nil {
		t.Fatal(err)
	}
	if jan.SpentAmount != 0 {
		t.Fatalf("source budget spent = %d, want 0", jan.SpentAmount)
	}
}

func TestUpdateWithoutBudgetLeavesTransactionUntouched(t *testing.T) {
	ts, _, _ := newTestServices(t)
	ctx := context.Background()
	const user = "u1"

	tx, _, err := ts.Create(ctx, user, txInput(700, 2024, time.March, 5))
	if !errors.Is(err, models.ErrNoBudget) {
		t.Fatalf("setup: %v", err)
	}

	_, _, err = ts.Update(ctx, user, tx.ID, TransactionInput{Amount: cents(900)})
	if !errors.Is(err, models.ErrNoBudget) {
		t.Fatalf("expected ErrNoBudget, got %v", err)
	}

	got, err := ts.GetByID(ctx, user, tx.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Amount != 700 {
		t.Fatalf("amount = %d, want unchanged 700", got.Amount)
	}
}

func TestDeleteSubtractsAmount(t *testing.T) {
	ts, bs, _ := newTestServices(t)
	ctx := context.Background()
	const user = "u1"

	if _, err := bs.Create(ctx, user, 4, 2024, 5000); err != nil {
		t.Fatal(err)
	}
	tx, _, err := ts.Create(ctx, user, txInput(1200, 2024, time.April, 9))
	if err != nil {
		t.Fatal(err)
	}

	b, err := ts.Delete(ctx, user, tx.ID)
	if err != nil {
		t.Fatal(err)
	}
	if b.SpentAmount != 0 {
		t.Fatalf("spent = %d, want 0", b.SpentAmount)
	}
	if _, err := ts.GetByID(ctx, user, tx.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteWithoutBudgetKeepsTransaction(t *testing.T) {
	ts, _, _ := newTestServices(t)
	ctx := context.Background()
	const user = "u1"

	tx, _, err := ts.Create(ctx, user, txInput(300, 2024, time.May, 1))
	if !errors.Is(err, models.ErrNoBudget) {
		t.Fatalf("setup: %v", err)
	}

	if _, err := ts.Delete(ctx, user, tx.ID); !errors.Is(err, models.ErrNoBudget) {
		t.Fatalf("expected ErrNoBudget, got %v", err)
	}
	if _, err := ts.GetByID(ctx, user, tx.ID); err != nil {
		t.Fatalf("transaction should still exist: %v", err)
	}
}

func TestOwnershipIsNotLeaked(t *testing.T) {
	ts, bs, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := bs.Create(ctx, "owner", 1, 2024, 10000); err != nil {
		t.Fatal(err)
	}
	tx, _, err := ts.Create(ctx, "owner", txInput(100, 2024, time.January, 2))
	if err != nil {
		t.Fatal(err)
	}

	// Another user sees NotFound, never a distinct "forbidden" signal.
	if _, err := ts.GetByID(ctx, "intruder", tx.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, _, err := ts.Update(ctx, "intruder", tx.ID, TransactionInput{Amount: cents(1)}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConcurrentCreatesLoseNoUpdates(t *testing.T) {
	ts, bs, repos := newTestServices(t)
	ctx := context.Background()
	const (
		user = "u1"
		n    = 50
		x    = 250
	)

	if _, err := bs.Create(ctx, user, 7, 2024, 1000000); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := ts.Create(ctx, user, txInput(x, 2024, time.July, 10)); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	b, err := repos.Budgets.GetByPeriod(ctx, user, models.Period{Month: 7, Year: 2024})
	if err != nil {
		t.Fatal(err)
	}
	if b.SpentAmount != n*x {
		t.Fatalf("spent = %d, want %d", b.SpentAmount, n*x)
	}
}
