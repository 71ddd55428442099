package migrations

import "embed"

// FS holds the schema migrations applied by golang-migrate.
//
//go:embed *.sql
var FS embed.FS
