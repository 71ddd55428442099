package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// testSchema mirrors migrations/000001_init.up.sql in SQLite dialect.
const testSchema = `
CREATE TABLE city (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	name                TEXT    NOT NULL UNIQUE,
	avg_cost_of_living  REAL    NOT NULL,
	avg_rent            REAL    NOT NULL,
	avg_wage            REAL    NOT NULL CHECK (avg_wage > 0),
	population          INTEGER NOT NULL DEFAULT 0,
	prop_hybrid_workers REAL    NULL
);
CREATE TABLE category (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
INSERT INTO category (name) VALUES ('Student'), ('Employer'), ('Administrator'), ('Parent');
CREATE TABLE user (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT     NOT NULL,
	email           TEXT     NOT NULL UNIQUE,
	phone_number    TEXT     NULL,
	category_id     INTEGER  NOT NULL REFERENCES category (id),
	current_city_id INTEGER  NULL REFERENCES city (id) ON DELETE SET NULL,
	created_at      DATETIME NOT NULL,
	last_login_at   DATETIME NULL
);
CREATE TABLE location (
	zip                TEXT    PRIMARY KEY,
	city_id            INTEGER NOT NULL REFERENCES city (id) ON DELETE CASCADE,
	student_population INTEGER NOT NULL DEFAULT 0,
	safety_rating      REAL    NOT NULL DEFAULT 0
);
CREATE TABLE housing (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	city_id INTEGER NOT NULL REFERENCES city (id) ON DELETE CASCADE,
	zip     TEXT    NOT NULL REFERENCES location (zip),
	address TEXT    NOT NULL,
	rent    REAL    NOT NULL,
	sq_ft   INTEGER NOT NULL
);
CREATE TABLE job_posting (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT    NOT NULL,
	bio          TEXT    NOT NULL,
	compensation REAL    NOT NULL,
	location_id  TEXT    NOT NULL REFERENCES location (zip),
	user_id      INTEGER NOT NULL REFERENCES user (id) ON DELETE CASCADE
);
CREATE TABLE application (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id     INTEGER NOT NULL REFERENCES user (id) ON DELETE CASCADE,
	job_posting_id INTEGER NOT NULL REFERENCES job_posting (id) ON DELETE CASCADE,
	status         TEXT    NOT NULL DEFAULT 'Pending',
	UNIQUE (student_id, job_posting_id)
);
CREATE TABLE sublet (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	housing_id   INTEGER NOT NULL REFERENCES housing (id) ON DELETE CASCADE,
	subletter_id INTEGER NOT NULL REFERENCES user (id) ON DELETE CASCADE,
	start_date   DATE    NOT NULL,
	end_date     DATE    NOT NULL,
	CHECK (end_date >= start_date)
);
CREATE TABLE hospital (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	name    TEXT    NOT NULL,
	city_id INTEGER NOT NULL REFERENCES city (id) ON DELETE CASCADE,
	zip     TEXT    NOT NULL
);
CREATE TABLE airport (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	name    TEXT    NOT NULL,
	city_id INTEGER NOT NULL REFERENCES city (id) ON DELETE CASCADE,
	zip     TEXT    NOT NULL
);
CREATE TABLE performance (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_on   DATE NOT NULL UNIQUE,
	cpu_usage     REAL NOT NULL,
	memory_usage  REAL NOT NULL,
	network_usage REAL NOT NULL,
	disk_usage    REAL NOT NULL
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:?_pragma=foreign_keys(1)&_time_format=sqlite")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.ExecContext(context.Background(), testSchema)
	require.NoError(t, err)

	return conn
}

func newTestRepositories(t *testing.T) (*Repositories, *sqlx.DB) {
	t.Helper()
	conn := newTestDB(t)
	return NewRepositories(conn), conn
}

func ptr[T any](v T) *T {
	return &v
}
