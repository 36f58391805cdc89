package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/credit-service/internal/models"
	"github.com/Dan9191/credit-service/internal/service"
	"github.com/lib/pq"
)

// Compile-time interface satisfaction checks.
var (
	_ service.CustomerStore = (*Repository)(nil)
	_ service.CreditStore   = (*Repository)(nil)
)

// integrityViolation is the SQLSTATE class for constraint violations
// (unique_violation, foreign_key_violation, not_null_violation, ...).
const integrityViolation pq.ErrorClass = "23"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// wrapError adds context to a driver error. Constraint violations become
// CONFLICT domain errors so callers can tell them apart from outages.
func wrapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == integrityViolation {
		return models.NewConflictError(fmt.Sprintf("failed to %s", op), err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
