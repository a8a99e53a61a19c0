package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast/internal/config"
)

func newTestConnection(t *testing.T) *Connection {
	t.Helper()

	conn, err := NewConnection(context.Background(), config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(context.Background(), "CREATE TABLE items (name TEXT)")
	require.NoError(t, err)

	return conn
}

func countItems(t *testing.T, conn *Connection) int {
	t.Helper()

	var count int
	require.NoError(t, conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM items").Scan(&count))
	return count
}

func TestConnection_Builder(t *testing.T) {
	sqlite := &Connection{driver: config.DriverSQLite}
	query, _, err := sqlite.Builder().Select("name").From("items").Where("name = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM items WHERE name = ?", query)

	postgres := &Connection{driver: config.DriverPostgres}
	query, _, err = postgres.Builder().Select("name").From("items").Where("name = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM items WHERE name = $1", query)
}

func TestConnection_RunInTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit quando a função não retorna erro", func(t *testing.T) {
		conn := newTestConnection(t)

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('a')")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, countItems(t, conn))
	})

	t.Run("Rollback quando a função retorna erro", func(t *testing.T) {
		conn := newTestConnection(t)
		errBoom := errors.New("boom")

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "INSERT INTO items (name) VALUES ('a')"); err != nil {
				return err
			}
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 0, countItems(t, conn))
	})
}
