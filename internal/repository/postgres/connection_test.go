package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_HealthCheck(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectPing()

		conn := &Connection{DB: db}
		require.NoError(t, conn.HealthCheck(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		pingErr := errors.New("connection refused")
		mock.ExpectPing().WillReturnError(pingErr)

		conn := &Connection{DB: db}
		err = conn.HealthCheck(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, pingErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not initialized", func(t *testing.T) {
		conn := &Connection{}
		assert.Error(t, conn.HealthCheck(context.Background()))
	})
}
