package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/johnquangdev/transcript-archive/internal/domain/entities"
)

// Postgres SQLSTATE codes treated as transient integrity failures
const (
	pgForeignKeyViolation  = "23503"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// translateError maps store errors onto the domain error kinds.
// Domain errors pass through; anything not integrity related becomes a StoreError.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, entities.ErrNotFound) || errors.Is(err, entities.ErrValidation) ||
		errors.Is(err, entities.ErrIntegrity) || errors.Is(err, entities.ErrStore) {
		return err
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &entities.IntegrityError{Op: op, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgSerializationFailure, pgDeadlockDetected:
			return &entities.IntegrityError{Op: op, Err: err}
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		if liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey ||
			liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked {
			return &entities.IntegrityError{Op: op, Err: err}
		}
	}

	return &entities.StoreError{Op: op, Err: err}
}
