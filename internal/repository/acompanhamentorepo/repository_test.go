package acompanhamentorepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

var scanColumns = []string{
	"id", "pessoa_id", "titulo", "descricao", "categoria", "status", "prioridade",
	"data_inicio", "data_prevista", "data_fim", "responsavel", "resultado", "concluido_em", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*AcompanhamentoRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAcompanhamentoRepository(db, time.Second, logger.NewNop()), mock
}

func TestListFiltered_StatusAndPrioridade(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM acompanhamentos WHERE (status = $1) AND (prioridade = $2) ORDER BY created_at DESC LIMIT $3 OFFSET $4`)).
		WithArgs("pending", "high", 10, 0).
		WillReturnRows(sqlmock.NewRows(scanColumns).
			AddRow(uuid.NewString(), nil, "Visita", nil, nil, "pending", "high", "2026-10-01", nil, nil, nil, nil, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM acompanhamentos WHERE (status = $1) AND (prioridade = $2)`)).
		WithArgs("pending", "high").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows, total, err := repo.ListFiltered(context.Background(),
		domain.AcompanhamentoFilter{Status: "pending", Prioridade: "high"}, domain.NewPageRequest(1, 10))

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].PessoaID)
	require.NotNil(t, rows[0].DataInicio)
	assert.Equal(t, "2026-10-01", *rows[0].DataInicio)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatch_StatusAndConcluidoEm(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.NewString()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE acompanhamentos SET status = $1, concluido_em = $2, updated_at = $3 WHERE id = $4`)).
		WithArgs("in-progress", nil, sqlmock.AnyArg(), id).
		WillReturnRows(sqlmock.NewRows(scanColumns).
			AddRow(id, nil, "Visita", nil, nil, "in-progress", "medium", nil, nil, nil, nil, nil, nil, now, now))

	a, err := repo.Patch(context.Background(), id, domain.AcompanhamentoPatch{
		Status:      domain.Some("in-progress"),
		ConcluidoEm: domain.Null[time.Time](),
	})

	require.NoError(t, err)
	assert.Equal(t, "in-progress", a.Status)
	assert.Nil(t, a.ConcluidoEm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatch_EmptyDateClearsColumn(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.NewString()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE acompanhamentos SET data_prevista = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs(nil, sqlmock.AnyArg(), id).
		WillReturnRows(sqlmock.NewRows(scanColumns).
			AddRow(id, nil, "Visita", nil, nil, "pending", "medium", nil, nil, nil, nil, nil, nil, now, now))

	_, err := repo.Patch(context.Background(), id, domain.AcompanhamentoPatch{DataPrevista: domain.Some("")})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
