package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEntry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: DuplicateEntry, Message: "Duplicate entry"}, want: true},
		{name: "wrapped mysql duplicate", err: fmt.Errorf("insert city: %w", &mysql.MySQLError{Number: DuplicateEntry}), want: true},
		{name: "mysql other", err: &mysql.MySQLError{Number: NoReferencedRow}, want: false},
		{name: "sqlite unique", err: errors.New("constraint failed: UNIQUE constraint failed: city.name (2067)"), want: true},
		{name: "plain", err: errors.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateEntry(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&mysql.MySQLError{Number: NoReferencedRow}))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed (787)")))
	assert.False(t, IsForeignKeyViolation(&mysql.MySQLError{Number: DuplicateEntry}))
	assert.False(t, IsForeignKeyViolation(nil))
}
