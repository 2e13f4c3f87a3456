package dashboardrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

func setupMockDB(t *testing.T) (*DashboardRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDashboardRepository(db, time.Second, logger.NewNop()), mock
}

func TestCountPessoasCriadas_UsesWindow(t *testing.T) {
	repo, mock := setupMockDB(t)
	to := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -30)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM pessoas WHERE (ativo = true) AND (created_at >= $1 AND created_at < $2)`)).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountPessoasCriadas(context.Background(), Window{From: from, To: to})

	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAcompanhamentosAbertos(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM acompanhamentos WHERE (status <> $1)`)).
		WithArgs("done").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountAcompanhamentosAbertos(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPessoasPorMes(t *testing.T) {
	repo, mock := setupMockDB(t)
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`to_char\(created_at AT TIME ZONE 'UTC', 'YYYY-MM'\)`).
		WithArgs(from).
		WillReturnRows(sqlmock.NewRows([]string{"mes", "count"}).
			AddRow("2026-07", 4).
			AddRow("2026-10", 2))

	series, err := repo.PessoasPorMes(context.Background(), from)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-07": 4, "2026-10": 2}, series)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConcluidosPorDia_BucketsInUTC(t *testing.T) {
	repo, mock := setupMockDB(t)
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	from := time.Date(2026, 10, 6, 21, 0, 0, 0, saoPaulo)

	mock.ExpectQuery(`to_char\(concluido_em AT TIME ZONE 'UTC', 'YYYY-MM-DD'\)`).
		WithArgs(time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"dia", "count"}).AddRow("2026-10-07", 2))

	series, err := repo.ConcluidosPorDia(context.Background(), from)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-10-07": 2}, series)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCounts(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	current := Window{From: now.AddDate(0, 0, -30), To: now}
	previous := Window{From: now.AddDate(0, 0, -60), To: now.AddDate(0, 0, -30)}

	mock.ExpectQuery(`WITH ORDINALITY`).
		WithArgs(`{"Líderes","Membros"}`, current.From, current.To, previous.From, previous.To).
		WillReturnRows(sqlmock.NewRows([]string{"tag", "total", "novos", "anteriores"}).
			AddRow("Líderes", 5, 1, 0).
			AddRow("Membros", 40, 3, 6))

	out, err := repo.CategoryCounts(context.Background(), []string{"Líderes", "Membros"}, current, previous)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, CategoryCount{Tag: "Membros", Total: 40, Novos: 3, Anteriores: 6}, out[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}
