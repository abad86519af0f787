package models

import (
	"time"

	"github.com/baharkarakas/budget-tracker-backend/internal/money"
)

// Transaction is a single spending event owned by exactly one user.
type Transaction struct {
	ID        string      `json:"id"`
	UserID    string      `json:"-"`
	Amount    money.Cents `json:"amount"`
	Category  *Category   `json:"category"`
	Date      Date        `json:"date"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
