package services

import (
	"context"
	"testing"
	"time"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	"github.com/baharkarakas/budget-tracker-backend/internal/repository/memory"
)

func seedTransaction(t *testing.T, repos memory.Repositories, user string, amount int64, cat *models.Category, d models.Date) {
	t.Helper()
	_, err := repos.Transactions.Create(context.Background(), models.Transaction{
		UserID:   user,
		Amount:   money.Cents(amount),
		Category: cat,
		Date:     d,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestSpendingByCategoryExcludesNull(t *testing.T) {
	repos := memory.NewRepositories()
	rs := NewReportService(repos.Transactions)
	ctx := context.Background()
	const user = "u1"

	a := models.CategoryFood
	b := models.CategoryTransport
	seedTransaction(t, repos, user, 1000, &a, models.NewDate(2024, time.January, 1))
	seedTransaction(t, repos, user, 550, &a, models.NewDate(2024, time.January, 2))
	seedTransaction(t, repos, user, 200, &b, models.NewDate(2024, time.January, 3))
	seedTransaction(t, repos, user, 9900, nil, models.NewDate(2024, time.January, 4))

	out, err := rs.SpendingByCategory(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 categories, got %d (%+v)", len(out), out)
	}
	totals := map[models.Category]int64{}
	for _, cs := range out {
		totals[cs.Category] = int64(cs.Amount)
	}
	if totals[a] != 1550 {
		t.Fatalf("food total = %d, want 1550", totals[a])
	}
	if totals[b] != 200 {
		t.Fatalf("transport total = %d, want 200", totals[b])
	}
}

func TestSpendingByCategoryEmpty(t *testing.T) {
	repos := memory.NewRepositories()
	rs := NewReportService(repos.Transactions)

	out, err := rs.SpendingByCategory(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %+v", out)
	}
}

func TestMonthlyTotalsSparseAscending(t *testing.T) {
	repos := memory.NewRepositories()
	rs := NewReportService(repos.Transactions)
	const user = "u1"

	seedTransaction(t, repos, user, 1000, nil, models.NewDate(2024, time.January, 15))
	seedTransaction(t, repos, user, 500, nil, models.NewDate(2024, time.January, 20))
	seedTransaction(t, repos, user, 700, nil, models.NewDate(2024, time.March, 1))

	out, err := rs.MonthlyTotals(context.Background(), user)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected sparse series of 2, got %d (%+v)", len(out), out)
	}
	if out[0].Month != "2024-01" || int64(out[0].TotalSpent) != 1500 {
		t.Fatalf("first bucket = %+v, want 2024-01/15.00", out[0])
	}
	if out[1].Month != "2024-03" || int64(out[1].TotalSpent) != 700 {
		t.Fatalf("second bucket = %+v, want 2024-03/7.00", out[1])
	}
}
