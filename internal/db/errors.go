package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	DuplicateEntry       = 1062
	NoReferencedRow      = 1452
	sqliteUniqueFailed   = "UNIQUE constraint failed"
	sqliteForeignKeyFail = "FOREIGN KEY constraint failed"
)

// IsDuplicateEntry reports whether err is a unique key violation. SQLite
// errors are matched by text since the driver does not export typed codes.
func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == DuplicateEntry
	}
	return strings.Contains(err.Error(), sqliteUniqueFailed)
}

// IsForeignKeyViolation reports whether err is a missing parent row on insert or update.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == NoReferencedRow
	}
	return strings.Contains(err.Error(), sqliteForeignKeyFail)
}
