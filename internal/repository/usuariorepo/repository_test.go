package usuariorepo

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

var scanColumns = []string{"id", "nome", "email", "senha", "perfil", "ativo", "ultimo_acesso", "created_at", "updated_at"}

func setupMockDB(t *testing.T) (*UsuarioRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUsuarioRepository(db, time.Second, logger.NewNop()), mock
}

func TestFindByEmail_Success(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()
	id := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM usuarios WHERE email = $1`)).
		WithArgs("admin@crm.com").
		WillReturnRows(sqlmock.NewRows(scanColumns).
			AddRow(id, "Administrador", "admin@crm.com", "$2a$10$hash", "admin", true, nil, now, now))

	u, err := repo.FindByEmail(context.Background(), "admin@crm.com")

	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, domain.PerfilAdmin, u.Perfil)
	assert.Equal(t, "$2a$10$hash", u.Senha)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`FROM usuarios WHERE email`).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ninguem@crm.com")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestCreate_DuplicateEmailIsConflict(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO usuarios`).WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), domain.Usuario{Nome: "A", Email: "a@crm.com", Senha: "h", Perfil: domain.PerfilUser})

	require.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Equal(t, MsgEmailDuplicado, err.Error())
}

func TestTouchLastAccess(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.NewString()
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE usuarios SET ultimo_acesso = $1 WHERE id = $2`)).
		WithArgs(at, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchLastAccess(context.Background(), id, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
