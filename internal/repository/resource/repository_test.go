package resource

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

type item struct {
	ID    string
	Nome  string
	Ativo bool
}

var itemColumns = []string{"id", "nome", "ativo"}

func itemDefinition(soft bool) Definition[item] {
	def := Definition[item]{
		Table:    "itens",
		Columns:  itemColumns,
		OrderBy:  "created_at DESC",
		NotFound: "Item não encontrado",
		Scan: func(s Scanner) (item, error) {
			var it item
			err := s.Scan(&it.ID, &it.Nome, &it.Ativo)
			return it, err
		},
	}
	if soft {
		def.ActiveColumn = "ativo"
	}
	return def
}

func setupRepo(t *testing.T, soft bool) (*Repository[item], sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(itemDefinition(soft), db, time.Second, logger.NewNop())
	fixed := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	return repo, mock
}

func TestList_SliceAndIndependentCount(t *testing.T) {
	repo, mock := setupRepo(t, true)
	id := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, nome, ativo FROM itens WHERE (ativo = true) AND ($1 = ANY(tags)) ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs("Membros", 2, 2).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(id, "Ana", true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM itens WHERE (ativo = true) AND ($1 = ANY(tags))`)).
		WithArgs("Membros").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	rows, total, err := repo.List(context.Background(), Filter{IsTrue("ativo"), HasTag("Membros")}, domain.PageRequest{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Nome)

	pagination := domain.NewPagination(domain.PageRequest{Page: 2, Limit: 2}, total)
	assert.Equal(t, 2, pagination.Pages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyReturnsEmptySlice(t *testing.T) {
	repo, mock := setupRepo(t, false)

	mock.ExpectQuery(`SELECT id, nome, ativo FROM itens ORDER BY`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(itemColumns))
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	rows, total, err := repo.List(context.Background(), nil, domain.NewPageRequest(1, 10))

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFoundAndMalformed(t *testing.T) {
	repo, mock := setupRepo(t, true)
	id := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nome, ativo FROM itens WHERE id = $1`)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.Equal(t, "Item não encontrado", err.Error())

	_, err = repo.GetByID(context.Background(), "nao-e-uuid")
	assert.IsType(t, &apperror.NotFoundError{}, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_GeneratesIDAndTimestamps(t *testing.T) {
	repo, mock := setupRepo(t, true)
	fixed := repo.now()

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO itens (id, nome, ativo, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id, nome, ativo`)).
		WithArgs(sqlmock.AnyArg(), "Ana", true, fixed, fixed).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(uuid.NewString(), "Ana", true))

	it, err := repo.Insert(context.Background(), NewFields().Set("nome", "Ana").Set("ativo", true))

	require.NoError(t, err)
	assert.Equal(t, "Ana", it.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_ForeignKeyViolationIsValidation(t *testing.T) {
	repo, mock := setupRepo(t, false)

	mock.ExpectQuery(`INSERT INTO itens`).WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Insert(context.Background(), NewFields().Set("nome", "x"))
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestInsert_UniqueViolationStaysDetectable(t *testing.T) {
	repo, mock := setupRepo(t, false)

	mock.ExpectQuery(`INSERT INTO itens`).WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Insert(context.Background(), NewFields().Set("nome", "x"))
	assert.True(t, apperror.IsUniqueViolation(err))
}

func TestUpdate_OnlyPresentColumnsPlusUpdatedAt(t *testing.T) {
	repo, mock := setupRepo(t, true)
	id := uuid.NewString()

	fields := NewFields()
	SetOptional(fields, "nome", domain.Some(""))
	SetOptional(fields, "email", domain.Null[string]())
	SetOptional(fields, "telefone", domain.Optional[string]{})

	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE itens SET nome = $1, email = $2, updated_at = $3 WHERE id = $4 RETURNING id, nome, ativo`)).
		WithArgs("", nil, repo.now(), id).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(id, "", true))

	it, err := repo.Update(context.Background(), id, fields)

	require.NoError(t, err)
	assert.Equal(t, "", it.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := setupRepo(t, true)
	id := uuid.NewString()

	mock.ExpectQuery(`UPDATE itens SET`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), id, NewFields().Set("nome", "B"))
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestDelete_SoftFlipsFlag(t *testing.T) {
	repo, mock := setupRepo(t, true)
	id := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE itens SET ativo = false, updated_at = $1 WHERE id = $2 RETURNING id, nome, ativo`)).
		WithArgs(repo.now(), id).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(id, "Ana", false))

	it, err := repo.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.False(t, it.Ativo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_HardRemovesRow(t *testing.T) {
	repo, mock := setupRepo(t, false)
	id := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM itens WHERE id = $1 RETURNING id, nome, ativo`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(id, "Ana", true))

	it, err := repo.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, it.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByParent_MalformedParentIsEmpty(t *testing.T) {
	repo, mock := setupRepo(t, false)

	rows, err := repo.ListByParent(context.Background(), "pessoa_id", "123")

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterBuild_Renumbers(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	where, args := Filter{}.
		EqIf("status", "").
		EqIf("tipo", "email").
		And(Between("created_at", from, to), IsTrue("ativo")).
		build(1)

	assert.Equal(t, " WHERE (tipo = $1) AND (created_at >= $2 AND created_at < $3) AND (ativo = true)", where)
	assert.Equal(t, []interface{}{"email", from, to}, args)
}
