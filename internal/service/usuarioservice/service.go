package usuarioservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
)

// Mensagens devolvidas ao cliente.
const (
	MsgCredenciaisInvalidas = "Email ou senha inválidos"
	MsgLoginSucesso         = "Login realizado com sucesso"
	MsgRegistroSucesso      = "Usuário registrado com sucesso"
	MsgSomenteAdmin         = "Apenas administradores podem alterar perfil ou status"
)

// UsuarioRepository define o contrato que o Serviço de Usuários espera da camada de Persistência.
type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.Usuario, error)
	GetByID(ctx context.Context, id string) (domain.Usuario, error)
	Create(ctx context.Context, u domain.Usuario) (domain.Usuario, error)
	Patch(ctx context.Context, id string, p domain.UsuarioPatch) (domain.Usuario, error)
	TouchLastAccess(ctx context.Context, id string, at time.Time) error
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID, email, perfil string) (string, error)
}

// Service define o serviço de lógica de negócio para a entidade Usuario.
type Service struct {
	repo      UsuarioRepository
	tokenSvc  TokenService
	validator *validation.Validator
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria uma nova instância do Service, injetando o Repositório e o serviço de token.
func NewService(repo UsuarioRepository, tokenSvc TokenService, v *validation.Validator, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		tokenSvc:  tokenSvc,
		validator: v,
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Login autentica um usuário, verifica a senha e gera um JWT.
// Email desconhecido, senha errada e usuário inativo produzem o mesmo 401.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	// 1. Validação Básica
	email := normalizeEmail(req.Email)
	if email == "" || req.Senha == "" {
		return domain.AuthResponse{}, apperror.NewValidationError("Email e senha são obrigatórios")
	}

	// 2. Buscar Usuário pelo Email
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			s.logger.Info("Tentativa de login com email desconhecido.", nil)
			return domain.AuthResponse{}, apperror.NewUnauthorizedError(MsgCredenciaisInvalidas)
		}
		return domain.AuthResponse{}, err
	}
	if !user.Ativo {
		s.logger.Info("Tentativa de login de usuário inativo.", map[string]interface{}{"user_id": user.ID})
		return domain.AuthResponse{}, apperror.NewUnauthorizedError(MsgCredenciaisInvalidas)
	}

	// 3. Comparar Senhas (Hashing)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(req.Senha)); err != nil {
		s.logger.Info("Senha incorreta no login.", map[string]interface{}{"user_id": user.ID})
		return domain.AuthResponse{}, apperror.NewUnauthorizedError(MsgCredenciaisInvalidas)
	}

	// 4. Registrar último acesso
	if err := s.repo.TouchLastAccess(ctx, user.ID, s.now()); err != nil {
		s.logger.Warn("Não foi possível registrar o último acesso.", map[string]interface{}{"user_id": user.ID, "error": err.Error()})
	}

	// 5. Gerar JWT
	return s.authResponse(MsgLoginSucesso, user)
}

// Register registra um novo usuário no sistema, com a senha armazenada como hash bcrypt.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	// 1. Normalização e Validação
	req.Nome = strings.TrimSpace(req.Nome)
	req.Email = normalizeEmail(req.Email)
	if req.Perfil == "" {
		req.Perfil = domain.PerfilUser
	}
	if err := s.validator.Struct(req); err != nil {
		return domain.AuthResponse{}, err
	}

	// 2. Hashing da Senha
	hash, err := hashPassword(req.Senha)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	// 3. Persistência (email duplicado vira 409 no repositório)
	user, err := s.repo.Create(ctx, domain.Usuario{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  hash,
		Perfil: req.Perfil,
		Ativo:  true,
	})
	if err != nil {
		return domain.AuthResponse{}, err
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"user_id": user.ID, "perfil": string(user.Perfil)})
	return s.authResponse(MsgRegistroSucesso, user)
}

// Get busca um usuário pelo id.
func (s *Service) Get(ctx context.Context, id string) (domain.Usuario, error) {
	return s.repo.GetByID(ctx, id)
}

// Update aplica a atualização parcial. Perfil e ativo só podem ser alterados por administradores.
func (s *Service) Update(ctx context.Context, id string, p domain.UsuarioPatch, byAdmin bool) (domain.Usuario, error) {
	if !byAdmin && (p.Perfil.Set || p.Ativo.Set) {
		return domain.Usuario{}, apperror.NewForbiddenError(MsgSomenteAdmin)
	}

	switch {
	case p.Nome.IsNull(), p.Email.IsNull(), p.Senha.IsNull(), p.Perfil.IsNull(), p.Ativo.IsNull():
		return domain.Usuario{}, apperror.NewValidationError("Campos de usuário não podem ser nulos")
	}
	if p.Nome.Present() && strings.TrimSpace(p.Nome.Value) == "" {
		return domain.Usuario{}, apperror.NewValidationError("nome é obrigatório")
	}
	if p.Email.Present() {
		p.Email.Value = normalizeEmail(p.Email.Value)
		if err := s.validator.Var("email", p.Email.Value, "required,email"); err != nil {
			return domain.Usuario{}, err
		}
	}
	if p.Perfil.Present() {
		if err := s.validator.Var("perfil", string(p.Perfil.Value), "oneof=admin user"); err != nil {
			return domain.Usuario{}, err
		}
	}
	if p.Senha.Present() {
		if err := s.validator.Var("senha", p.Senha.Value, "min=6"); err != nil {
			return domain.Usuario{}, err
		}
		hash, err := hashPassword(p.Senha.Value)
		if err != nil {
			return domain.Usuario{}, err
		}
		p.Senha.Value = hash
	}

	u, err := s.repo.Patch(ctx, id, p)
	if err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Usuário atualizado.", map[string]interface{}{"user_id": id})
	return u, nil
}

func (s *Service) authResponse(message string, user domain.Usuario) (domain.AuthResponse, error) {
	tokenString, err := s.tokenSvc.GenerateToken(user.ID, user.Email, string(user.Perfil))
	if err != nil {
		return domain.AuthResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}
	return domain.AuthResponse{Message: message, Token: tokenString, User: user.Resumo()}, nil
}

func hashPassword(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
