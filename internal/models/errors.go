package models

import "errors"

var (
	// ErrNotFound covers both absent rows and rows owned by another user,
	// so the API never leaks existence across accounts.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a duplicate budget for a (user, month, year) period.
	ErrConflict = errors.New("already exists")

	// ErrNoBudget signals that reconciliation could not resolve a budget for
	// the transaction's period. The target transaction may still exist.
	ErrNoBudget = errors.New("no budget found for this period")
)
