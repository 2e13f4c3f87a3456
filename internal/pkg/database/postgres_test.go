package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

func setupMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	pool, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	return New(pool, logger.NewNop()), mock
}

func TestRunInTx_Commit(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO relatorios`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.RunInTx(context.Background(), func(q Querier) error {
		_, err := q.ExecContext(context.Background(), "INSERT INTO relatorios (id) VALUES ($1)", "r1")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("falha no meio")
	err := db.RunInTx(context.Background(), func(q Querier) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryContext_PassesThrough(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	var total int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM pessoas").Scan(&total)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "SELECT", operation("\n   select id FROM pessoas"))
	assert.Equal(t, "UPDATE", operation("UPDATE eventos SET ativo = false"))
	assert.Equal(t, "UNKNOWN", operation("   "))
}
