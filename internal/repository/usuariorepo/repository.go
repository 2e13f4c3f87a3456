package usuariorepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

// MsgEmailDuplicado é devolvido quando o email viola a unicidade de usuarios.email.
const MsgEmailDuplicado = "Email já registrado"

// Definition descreve a tabela usuarios. A senha (hash) é lida para a verificação do login
// mas nunca serializada.
var Definition = resource.Definition[domain.Usuario]{
	Table: "usuarios",
	Columns: []string{
		"id", "nome", "email", "senha", "perfil", "ativo", "ultimo_acesso", "created_at", "updated_at",
	},
	OrderBy:  "created_at DESC",
	NotFound: "Usuário não encontrado",
	Scan: func(s resource.Scanner) (domain.Usuario, error) {
		var u domain.Usuario
		var perfil string
		err := s.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &perfil, &u.Ativo, &u.UltimoAcesso, &u.CreatedAt, &u.UpdatedAt)
		u.Perfil = domain.Perfil(perfil)
		return u, err
	},
}

// UsuarioRepository acessa a tabela usuarios.
type UsuarioRepository struct {
	*resource.Repository[domain.Usuario]
	db        database.Querier
	dbTimeout time.Duration
	logger    logger.Logger
}

// NewUsuarioRepository cria uma nova instância do UsuarioRepository, injetando o DB.
func NewUsuarioRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{
		Repository: resource.New(Definition, db, dbTimeout, log),
		db:         db,
		dbTimeout:  dbTimeout,
		logger:     log,
	}
}

// Create insere um novo usuário. Email duplicado vira ConflictError (409).
func (r *UsuarioRepository) Create(ctx context.Context, u domain.Usuario) (domain.Usuario, error) {
	fields := resource.NewFields().
		Set("nome", u.Nome).
		Set("email", u.Email).
		Set("senha", u.Senha).
		Set("perfil", string(u.Perfil)).
		Set("ativo", true)

	created, err := r.Insert(ctx, fields)
	if apperror.IsUniqueViolation(err) {
		r.logger.Info("Email já registrado.", map[string]interface{}{"email": u.Email})
		return domain.Usuario{}, apperror.NewConflictError(MsgEmailDuplicado)
	}
	return created, err
}

// Patch aplica a atualização parcial. Senha, se presente, já deve vir com hash.
func (r *UsuarioRepository) Patch(ctx context.Context, id string, p domain.UsuarioPatch) (domain.Usuario, error) {
	fields := resource.NewFields()
	resource.SetOptional(fields, "nome", p.Nome)
	resource.SetOptional(fields, "email", p.Email)
	resource.SetOptional(fields, "senha", p.Senha)
	if p.Perfil.Present() {
		fields.Set("perfil", string(p.Perfil.Value))
	}
	resource.SetOptional(fields, "ativo", p.Ativo)

	updated, err := r.Update(ctx, id, fields)
	if apperror.IsUniqueViolation(err) {
		return domain.Usuario{}, apperror.NewConflictError(MsgEmailDuplicado)
	}
	return updated, err
}

// FindByEmail busca um usuário pelo endereço de e-mail.
func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (domain.Usuario, error) {
	r.logger.Debug("Iniciando FindByEmail de usuário no repositório.", map[string]interface{}{"email_attempt": email})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	// 2. Executa a busca
	query := `SELECT id, nome, email, senha, perfil, ativo, ultimo_acesso, created_at, updated_at FROM usuarios WHERE email = $1`
	u, err := Definition.Scan(r.db.QueryRowContext(ctxTimeout, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("Usuário não encontrado no DB por email.", map[string]interface{}{"email": email})
			return domain.Usuario{}, apperror.NewNotFoundError(Definition.NotFound)
		}
		r.logger.Error("Falha ao buscar usuário por email no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("Falha ao buscar usuário por email", err)
	}

	r.logger.Info("Usuário encontrado no repositório por email.", map[string]interface{}{"user_id": u.ID})
	return u, nil
}

// TouchLastAccess carimba ultimo_acesso no login bem-sucedido.
func (r *UsuarioRepository) TouchLastAccess(ctx context.Context, id string, at time.Time) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctxTimeout, `UPDATE usuarios SET ultimo_acesso = $1 WHERE id = $2`, at, id); err != nil {
		r.logger.Error("Falha ao registrar último acesso.", err)
		return apperror.NewDBError("Falha ao registrar último acesso", err)
	}
	return nil
}
