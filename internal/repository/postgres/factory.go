package postgres

import (
	repo "github.com/baharkarakas/budget-tracker-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Transactions repo.Transactions
	Budgets      repo.Budgets
	AuditLogs    repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Transactions: &transactionsRepo{pool},
		Budgets:      &budgetsRepo{pool},
		AuditLogs:    &auditLogsRepo{pool},
	}
}
