package services

import (
	"context"
	"sort"

	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	repo "github.com/baharkarakas/budget-tracker-backend/internal/repository"
)

// ReportService is the read-only aggregation side: it only ever reads the
// transaction store and never touches budgets.
type ReportService struct {
	trx repo.Transactions
}

func NewReportService(t repo.Transactions) *ReportService { return &ReportService{trx: t} }

type CategorySpend struct {
	Category models.Category `json:"category"`
	Amount   money.Cents     `json:"amount"`
}

type MonthlyTotal struct {
	Month      string      `json:"month"`
	TotalSpent money.Cents `json:"total_spent"`
}

// SpendingByCategory sums amounts per non-null category. Categories appear in
// the order they are first seen; uncategorized transactions are excluded.
func (s *ReportService) SpendingByCategory(ctx context.Context, userID string) ([]CategorySpend, error) {
	txs, err := s.trx.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := map[models.Category]int{}
	var out []CategorySpend
	for _, tx := range txs {
		if tx.Category == nil {
			continue
		}
		i, ok := idx[*tx.Category]
		if !ok {
			i = len(out)
			idx[*tx.Category] = i
			out = append(out, CategorySpend{Category: *tx.Category})
		}
		out[i].Amount += tx.Amount
	}
	return out, nil
}

// MonthlyTotals buckets all of the user's transactions by the calendar month
// of their date and returns the buckets ascending by month. Months with no
// transactions produce no entry.
func (s *ReportService) MonthlyTotals(ctx context.Context, userID string) ([]MonthlyTotal, error) {
	txs, err := s.trx.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := map[string]money.Cents{}
	for _, tx := range txs {
		totals[tx.Date.Period().Key()] += tx.Amount
	}

	out := make([]MonthlyTotal, 0, len(totals))
	for k, v := range totals {
		out = append(out, MonthlyTotal{Month: k, TotalSpent: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}
