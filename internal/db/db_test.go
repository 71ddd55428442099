package db

import (
	"testing"
	"time"

	"github.com/coopconnect/backend/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := config.Database{
		Net:      "tcp",
		Server:   "db:3306",
		DBName:   "coopconnect",
		User:     "app",
		Password: "secret",
		TimeZone: "UTC",
		Timeout:  2 * time.Second,
	}

	dsn, err := DSN(cfg, false)
	require.NoError(t, err)

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "coopconnect", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
	assert.False(t, parsed.MultiStatements)

	dsn, err = DSN(cfg, true)
	require.NoError(t, err)
	parsed, err = mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, parsed.MultiStatements)
}

func TestDSN_BadTimeZone(t *testing.T) {
	_, err := DSN(config.Database{TimeZone: "Mars/Olympus"}, false)
	assert.Error(t, err)
}
