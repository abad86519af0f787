package models

import (
	"time"

	"github.com/baharkarakas/budget-tracker-backend/internal/money"
)

// Budget is the monthly spending ceiling and running total for one
// (user, month, year) period. SpentAmount is maintained by the reconciler;
// at most one budget exists per period.
type Budget struct {
	ID          string      `json:"id"`
	UserID      string      `json:"-"`
	Month       int         `json:"month"`
	Year        int         `json:"year"`
	Amount      money.Cents `json:"amount"`
	SpentAmount money.Cents `json:"spent_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (b Budget) Period() Period { return Period{Month: b.Month, Year: b.Year} }

// Remaining is the ceiling minus the running total.
func (b Budget) Remaining() money.Cents { return b.Amount - b.SpentAmount }
