// Package repository implements the read-only debt registry lookup for
// PostgreSQL and MySQL.
package repository

import (
	"context"
	"fmt"

	"github.com/allisson/validacpf/internal/database"
	apperrors "github.com/allisson/validacpf/internal/errors"
)

// PostgreSQLDebtRepository looks up outstanding debts in a PostgreSQL cpf_debts table.
type PostgreSQLDebtRepository struct {
	db database.Querier
}

// NewPostgreSQLDebtRepository creates a PostgreSQL-backed debt repository.
func NewPostgreSQLDebtRepository(db database.Querier) *PostgreSQLDebtRepository {
	return &PostgreSQLDebtRepository{db: db}
}

// HasDebts reports whether at least one debt is registered for the normalized CPF digits.
func (p *PostgreSQLDebtRepository) HasDebts(ctx context.Context, cpf string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM cpf_debts WHERE cpf = $1 AND settled_at IS NULL)`

	var exists bool
	if err := p.db.QueryRowContext(ctx, query, cpf).Scan(&exists); err != nil {
		return false, apperrors.Wrap(wrapUnavailable(err), "failed to look up cpf debts")
	}
	return exists, nil
}

// wrapUnavailable tags driver failures so handlers can tell them apart from bad
// input. The driver error stays in the chain, so callers can still match
// context.Canceled or sql.ErrNoRows.
func wrapUnavailable(err error) error {
	return fmt.Errorf("%w: %w", apperrors.ErrUnavailable, err)
}
