package usuario

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/middleware"
)

type MockUsuarioService struct {
	mock.Mock
}

func (m *MockUsuarioService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

func (m *MockUsuarioService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

func (m *MockUsuarioService) Get(ctx context.Context, id string) (domain.Usuario, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

func (m *MockUsuarioService) Update(ctx context.Context, id string, p domain.UsuarioPatch, byAdmin bool) (domain.Usuario, error) {
	args := m.Called(ctx, id, p, byAdmin)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

func withClaims(r *http.Request, claims middleware.UserClaims) *http.Request {
	return r.WithContext(middleware.WithUserClaims(r.Context(), claims))
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := new(MockUsuarioService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("Login", mock.Anything, domain.LoginRequest{Email: "admin@crm.com", Senha: "errada"}).
		Return(domain.AuthResponse{}, apperror.NewUnauthorizedError("Email ou senha inválidos"))

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"admin@crm.com","senha":"errada"}`))
	rec := httptest.NewRecorder()
	h.LoginHandler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Email ou senha inválidos"}`, rec.Body.String())
}

func TestRegisterHandler_Created(t *testing.T) {
	svc := new(MockUsuarioService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("Register", mock.Anything, mock.Anything).Return(domain.AuthResponse{
		Message: "Usuário registrado com sucesso",
		Token:   "jwt",
		User:    domain.UsuarioResumo{ID: "u1", Nome: "Ana", Email: "ana@crm.com", Perfil: domain.PerfilUser},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/login/register", strings.NewReader(`{"nome":"Ana","email":"ana@crm.com","senha":"segredo"}`))
	rec := httptest.NewRecorder()
	h.RegisterHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
	assert.NotContains(t, rec.Body.String(), "senha")
}

func TestMeHandler_UsesTokenUser(t *testing.T) {
	svc := new(MockUsuarioService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("Get", mock.Anything, "u1").Return(domain.Usuario{ID: "u1", Nome: "Ana", Senha: "$2a$10$hash"}, nil)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/api/login/me", nil), middleware.UserClaims{UserID: "u1"})
	rec := httptest.NewRecorder()
	h.MeHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
	svc.AssertExpectations(t)
}

func TestMeHandler_WithoutClaims(t *testing.T) {
	h := NewHandler(new(MockUsuarioService), logger.NewNop())

	rec := httptest.NewRecorder()
	h.MeHandler(rec, httptest.NewRequest(http.MethodGet, "/api/login/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateHandler_ForwardsAdminFlag(t *testing.T) {
	cases := []struct {
		name   string
		perfil domain.Perfil
		admin  bool
	}{
		{"admin", domain.PerfilAdmin, true},
		{"user", domain.PerfilUser, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockUsuarioService)
			h := NewHandler(svc, logger.NewNop())
			r := chi.NewRouter()
			r.Put("/api/login/{id}", h.UpdateHandler)

			svc.On("Update", mock.Anything, "u2", mock.Anything, tc.admin).Return(domain.Usuario{ID: "u2"}, nil)

			req := httptest.NewRequest(http.MethodPut, "/api/login/u2", strings.NewReader(`{"nome":"Novo"}`))
			req = withClaims(req, middleware.UserClaims{UserID: "u1", Perfil: tc.perfil})
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
