package relatoriorepo

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

var scanColumns = []string{"id", "titulo", "descricao", "tipo", "parametros", "usuario_id", "gerado_em", "created_at", "updated_at"}

func TestCreate_DefaultsParametrosToEmptyObject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRelatorioRepository(db, time.Second, logger.NewNop())
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO relatorios (id, titulo, descricao, tipo, parametros, usuario_id, created_at, updated_at)`)).
		WithArgs(sqlmock.AnyArg(), "Relatório de Pessoas", nil, "pessoas", "{}", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(scanColumns).
			AddRow(uuid.NewString(), "Relatório de Pessoas", nil, "pessoas", []byte("{}"), nil, now, now, now))

	rel, err := repo.Create(context.Background(), domain.RelatorioInput{Titulo: "Relatório de Pessoas", Tipo: "pessoas"})

	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(rel.Parametros))
	assert.Nil(t, rel.UsuarioID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPage_NoFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRelatorioRepository(db, time.Second, logger.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM relatorios ORDER BY gerado_em DESC LIMIT $1 OFFSET $2`)).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(scanColumns))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM relatorios`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	rows, total, err := repo.ListPage(context.Background(), domain.NewPageRequest(1, 10))

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
