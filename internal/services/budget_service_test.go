package services

import (
	"context"
	"errors"
	"testing"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
)

func TestNewBudgetStartsAtZero(t *testing.T) {
	_, bs, _ := newTestServices(t)
	ctx := context.Background()

	b, err := bs.Create(ctx, "u1", 3, 2024, 30000)
	if err != nil {
		t.Fatal(err)
	}
	if b.SpentAmount != 0 {
		t.Fatalf("spent = %d, want 0", b.SpentAmount)
	}
	if b.Remaining() != 30000 {
		t.Fatalf("remaining = %d, want full amount", b.Remaining())
	}
}

func TestDuplicatePeriodIsConflict(t *testing.T) {
	_, bs, _ := newTestServices(t)
	ctx := context.Background()

	first, err := bs.Create(ctx, "u1", 3, 2024, 30000)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := bs.Create(ctx, "u1", 3, 2024, 99999); !errors.Is(err, models.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// first budget unmodified
	got, err := bs.GetByID(ctx, "u1", first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Amount != 30000 {
		t.Fatalf("amount = %d, want 30000", got.Amount)
	}

	// same period for a different user is fine
	if _, err := bs.Create(ctx, "u2", 3, 2024, 100); err != nil {
		t.Fatal(err)
	}
}

func TestPartialUpdateKeepsSpent(t *testing.T) {
	ts, bs, _ := newTestServices(t)
	ctx := context.Background()

	b, err := bs.Create(ctx, "u1", 5, 2024, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ts.Create(ctx, "u1", txInput(400, 2024, 5, 6)); err != nil {
		t.Fatal(err)
	}

	got, err := bs.Update(ctx, "u1", b.ID, BudgetInput{Amount: cents(20000)})
	if err != nil {
		t.Fatal(err)
	}
	if got.Amount != 20000 {
		t.Fatalf("amount = %d, want 20000", got.Amount)
	}
	if got.SpentAmount != 400 {
		t.Fatalf("spent = %d, want untouched 400", got.SpentAmount)
	}
}

func TestDeleteBudgetOrphansTransactions(t *testing.T) {
	ts, bs, _ := newTestServices(t)
	ctx := context.Background()

	b, err := bs.Create(ctx, "u1", 6, 2024, 10000)
	if err != nil {
		t.Fatal(err)
	}
	tx, _, err := ts.Create(ctx, "u1", txInput(100, 2024, 6, 1))
	if err != nil {
		t.Fatal(err)
	}

	if err := bs.Delete(ctx, "u1", b.ID); err != nil {
		t.Fatal(err)
	}
	// no cascade: the transaction survives its budget
	if _, err := ts.GetByID(ctx, "u1", tx.ID); err != nil {
		t.Fatalf("transaction should survive budget deletion: %v", err)
	}
}

func TestSummaryForMissingBudgetIsAllZero(t *testing.T) {
	_, bs, _ := newTestServices(t)
	ctx := context.Background()

	sum, err := bs.SummaryFor(ctx, "u1", models.Period{Month: 9, Year: 2030})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Month != 9 || sum.Year != 2030 {
		t.Fatalf("period echo wrong: %+v", sum)
	}
	if sum.BudgetAmount != 0 || sum.SpentAmount != 0 || sum.RemainingAmount != 0 {
		t.Fatalf("expected all-zero summary, got %+v", sum)
	}
}

func TestSummaryReflectsSpending(t *testing.T) {
	ts, bs, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := bs.Create(ctx, "u1", 8, 2024, 50000); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ts.Create(ctx, "u1", txInput(12345, 2024, 8, 15)); err != nil {
		t.Fatal(err)
	}

	sum, err := bs.SummaryFor(ctx, "u1", models.Period{Month: 8, Year: 2024})
	if err != nil {
		t.Fatal(err)
	}
	if sum.BudgetAmount != 50000 || sum.SpentAmount != 12345 || sum.RemainingAmount != 37655 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}
