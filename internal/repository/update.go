package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/coopconnect/backend/internal/db"
	"github.com/coopconnect/backend/internal/domain"
)

// updateBuilder collects the SET clause of a partial update. Column names are
// always literals from this package, values are bound.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func setIf[T any](b *updateBuilder, column string, value *T) {
	if value == nil {
		return
	}
	b.sets = append(b.sets, column+" = ?")
	b.args = append(b.args, *value)
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.sets = append(b.sets, column+" = ?")
	b.args = append(b.args, value)
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// exec runs UPDATE table SET ... WHERE where. An empty builder fails with
// domain.ErrNothingToUpdate, zero matched rows with domain.ErrNotFound and an
// unknown foreign key with domain.ErrMissingParent.
func (b *updateBuilder) exec(ctx context.Context, q db.Querier, table, where string, whereArgs ...interface{}) error {
	if b.empty() {
		return domain.ErrNothingToUpdate
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(b.sets, ", "), where)
	args := append(append([]interface{}{}, b.args...), whereArgs...)

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		if db.IsForeignKeyViolation(err) {
			return fmt.Errorf("update %s: %w", table, domain.ErrMissingParent)
		}
		return fmt.Errorf("update %s failed: %w", table, err)
	}

	return requireAffected(result)
}
