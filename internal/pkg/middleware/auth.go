package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// Mensagens distintas para cada falha de autenticação.
const (
	MsgTokenMissing   = "Token não fornecido"
	MsgTokenMalformed = "Token mal formatado"
	MsgTokenInvalid   = "Token inválido"
)

// UserClaims são os dados do usuário extraídos do token e anexados ao contexto.
type UserClaims struct {
	UserID string
	Email  string
	Perfil domain.Perfil
}

// IsAdmin informa se o usuário tem perfil de administrador.
func (c UserClaims) IsAdmin() bool {
	return c.Perfil == domain.PerfilAdmin
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// Auth agrupa os middlewares de autenticação obrigatória e opcional.
type Auth struct {
	tokenSvc TokenService
	logger   logger.Logger
}

// NewAuthMiddleware cria os middlewares de autenticação.
func NewAuthMiddleware(tokenSvc TokenService, log logger.Logger) *Auth {
	return &Auth{tokenSvc: tokenSvc, logger: log}
}

// authenticate percorre Unauthenticated -> TokenInvalid | TokenValid.
// Retorna (claims, nil) quando válido; caso contrário um UnauthorizedError com a mensagem específica.
func (a *Auth) authenticate(r *http.Request) (UserClaims, error) {
	// 1. Extrair o header Authorization: Bearer <token>
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return UserClaims{}, apperror.NewUnauthorizedError(MsgTokenMissing)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return UserClaims{}, apperror.NewUnauthorizedError(MsgTokenMalformed)
	}

	// 2. Validar o token
	claims, err := a.tokenSvc.ValidateToken(parts[1])
	if err != nil {
		a.logger.Debug("Token rejeitado.", map[string]interface{}{"path": r.URL.Path, "reason": err.Error()})
		return UserClaims{}, apperror.NewUnauthorizedError(MsgTokenInvalid)
	}

	return UserClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Perfil: domain.Perfil(claims.Perfil),
	}, nil
}

// RequireAuth rejeita com 401 requisições sem token válido; o handler não é chamado.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.authenticate(r)
		if err != nil {
			httpx.WriteError(w, r, a.logger, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
	})
}

// OptionalAuth anexa a identidade quando o token é válido e segue adiante em qualquer caso.
func (a *Auth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := a.authenticate(r); err == nil {
			r = r.WithContext(WithUserClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

// WithUserClaims devolve um contexto com as claims anexadas.
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}

// GetUserClaimsFromContext extrai as claims anexadas por RequireAuth/OptionalAuth.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// RequirePerfil permite apenas os perfis informados (403 caso contrário). Deve vir depois de RequireAuth.
func (a *Auth) RequirePerfil(perfis ...domain.Perfil) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				httpx.WriteError(w, r, a.logger, apperror.NewUnauthorizedError(MsgTokenMissing))
				return
			}

			for _, p := range perfis {
				if claims.Perfil == p {
					next.ServeHTTP(w, r)
					return
				}
			}

			httpx.WriteError(w, r, a.logger, apperror.NewForbiddenError("Acesso negado. Você não tem a permissão necessária."))
		})
	}
}

// RequireSelfOrAdmin permite o acesso quando o id do recurso é o do próprio usuário ou quando ele é admin.
func (a *Auth) RequireSelfOrAdmin(resourceID func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				httpx.WriteError(w, r, a.logger, apperror.NewUnauthorizedError(MsgTokenMissing))
				return
			}
			if !claims.IsAdmin() && claims.UserID != resourceID(r) {
				httpx.WriteError(w, r, a.logger, apperror.NewForbiddenError("Acesso negado. Você só pode acessar o próprio usuário."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
