package repository

import (
	"context"

	"github.com/allisson/validacpf/internal/database"
	apperrors "github.com/allisson/validacpf/internal/errors"
)

// MySQLDebtRepository looks up outstanding debts in a MySQL cpf_debts table.
type MySQLDebtRepository struct {
	db database.Querier
}

// NewMySQLDebtRepository creates a MySQL-backed debt repository.
func NewMySQLDebtRepository(db database.Querier) *MySQLDebtRepository {
	return &MySQLDebtRepository{db: db}
}

// HasDebts reports whether at least one debt is registered for the normalized CPF digits.
func (m *MySQLDebtRepository) HasDebts(ctx context.Context, cpf string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM cpf_debts WHERE cpf = ? AND settled_at IS NULL)`

	var exists bool
	if err := m.db.QueryRowContext(ctx, query, cpf).Scan(&exists); err != nil {
		return false, apperrors.Wrap(wrapUnavailable(err), "failed to look up cpf debts")
	}
	return exists, nil
}
