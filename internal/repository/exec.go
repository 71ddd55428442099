package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coopconnect/backend/internal/db"
	"github.com/coopconnect/backend/internal/domain"
)

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// insert executes an INSERT and returns the generated id.
func insert(ctx context.Context, q db.Querier, what, query string, args ...interface{}) (int64, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return 0, domain.ErrDuplicateEntry
		}
		if db.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("db insert %s: %w", what, domain.ErrMissingParent)
		}
		return 0, fmt.Errorf("db insert %s: %w", what, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}
	return id, nil
}

// remove executes a DELETE. A statement matching no row is domain.ErrNotFound,
// so repeating a delete keeps reporting not found.
func remove(ctx context.Context, q db.Querier, what, query string, args ...interface{}) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s failed: %w", what, err)
	}
	return requireAffected(result)
}
