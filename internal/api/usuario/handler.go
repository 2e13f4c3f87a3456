package usuario

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/middleware"
)

// UsuarioService define o contrato que o Handler espera da camada de Serviço.
type UsuarioService interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
	Get(ctx context.Context, id string) (domain.Usuario, error)
	Update(ctx context.Context, id string, p domain.UsuarioPatch, byAdmin bool) (domain.Usuario, error)
}

// Handler agrupa os métodos de Handler de login e usuários.
type Handler struct {
	Service UsuarioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc UsuarioService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// LoginHandler lida com POST /api/login.
// @Summary Autentica o usuário
// @Description Devolve o JWT e o resumo do usuário. Credenciais inválidas retornam sempre a mesma mensagem.
// @Tags login
// @Accept json
// @Produce json
// @Param credenciais body domain.LoginRequest true "Email e senha"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	resp, err := h.Service.Login(r.Context(), req)
	httpx.Respond(w, r, h.Logger, resp, err, http.StatusOK)
}

// RegisterHandler lida com POST /api/login/register.
// @Summary Registra um usuário
// @Tags login
// @Accept json
// @Produce json
// @Param usuario body domain.RegisterRequest true "Novo usuário"
// @Success 201 {object} domain.AuthResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /login/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	resp, err := h.Service.Register(r.Context(), req)
	httpx.Respond(w, r, h.Logger, resp, err, http.StatusCreated)
}

// MeHandler lida com GET /api/login/me: o usuário do token.
// @Summary Usuário autenticado
// @Tags login
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Usuario
// @Failure 401 {object} domain.ErrorResponse
// @Router /login/me [get]
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, r, h.Logger, apperror.NewUnauthorizedError(middleware.MsgTokenMissing))
		return
	}
	u, err := h.Service.Get(r.Context(), claims.UserID)
	httpx.Respond(w, r, h.Logger, u, err, http.StatusOK)
}

// GetHandler lida com GET /api/login/{id}.
// @Summary Busca usuário por ID
// @Tags login
// @Produce json
// @Param id path string true "ID do usuário"
// @Success 200 {object} domain.Usuario
// @Failure 404 {object} domain.ErrorResponse
// @Router /login/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	u, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, u, err, http.StatusOK)
}

// UpdateHandler lida com PUT /api/login/{id}. Perfil e ativo só podem ser alterados por administradores.
// @Summary Atualiza usuário
// @Tags login
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param usuario body domain.UsuarioPatch true "Campos a alterar"
// @Success 200 {object} domain.Usuario
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /login/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.UsuarioPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	claims, _ := middleware.GetUserClaimsFromContext(r.Context())
	u, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), patch, claims.IsAdmin())
	httpx.Respond(w, r, h.Logger, u, err, http.StatusOK)
}
