package evento

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
)

type MockEventoService struct {
	mock.Mock
}

func (m *MockEventoService) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Evento], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(domain.Page[domain.Evento]), args.Error(1)
}

func (m *MockEventoService) Get(ctx context.Context, id string) (domain.Evento, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Evento), args.Error(1)
}

func (m *MockEventoService) Create(ctx context.Context, in domain.EventoInput) (domain.Evento, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Evento), args.Error(1)
}

func (m *MockEventoService) Update(ctx context.Context, id string, p domain.EventoPatch) (domain.Evento, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Evento), args.Error(1)
}

func (m *MockEventoService) Delete(ctx context.Context, id string) (domain.Evento, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Evento), args.Error(1)
}

func (m *MockEventoService) Inscricoes(ctx context.Context, eventoID string) (domain.EventoInscricoes, error) {
	args := m.Called(ctx, eventoID)
	return args.Get(0).(domain.EventoInscricoes), args.Error(1)
}

func (m *MockEventoService) ListInscricoes(ctx context.Context, eventoID string) ([]domain.Inscricao, error) {
	args := m.Called(ctx, eventoID)
	return args.Get(0).([]domain.Inscricao), args.Error(1)
}

func (m *MockEventoService) CreateInscricao(ctx context.Context, eventoID string, in domain.InscricaoInput) (domain.Inscricao, error) {
	args := m.Called(ctx, eventoID, in)
	return args.Get(0).(domain.Inscricao), args.Error(1)
}

func (m *MockEventoService) GetInscricao(ctx context.Context, id string) (domain.Inscricao, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Inscricao), args.Error(1)
}

func (m *MockEventoService) UpdateInscricao(ctx context.Context, id string, p domain.InscricaoPatch) (domain.Inscricao, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Inscricao), args.Error(1)
}

func (m *MockEventoService) DeleteInscricao(ctx context.Context, id string) (domain.Inscricao, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Inscricao), args.Error(1)
}

// newRouter monta as rotas na mesma ordem do roteador principal.
func newRouter(svc EventoService) http.Handler {
	h := NewHandler(svc, logger.NewNop())
	r := chi.NewRouter()
	r.Route("/api/eventos", func(r chi.Router) {
		r.Get("/inscricoes/{id}", h.GetInscricaoHandler)
		r.Delete("/inscricoes/{id}", h.DeleteInscricaoHandler)
		r.Get("/{id}/inscricoes", h.InscricoesHandler)
		r.Post("/{id}/inscricoes", h.CreateInscricaoHandler)
		r.Get("/{id}/inscricoes/list", h.ListInscricoesHandler)
		r.Get("/{id}", h.GetHandler)
	})
	return r
}

func TestCreateInscricaoHandler(t *testing.T) {
	svc := new(MockEventoService)
	in := domain.InscricaoInput{Nome: "Carla", Telefone: "11999990000", Endereco: "Rua A", Tipo: "visitor"}
	svc.On("CreateInscricao", mock.Anything, "e1", in).Return(domain.Inscricao{ID: "i1", EventoID: "e1", Tipo: "visitor", Ativo: true}, nil)

	body := `{"nome":"Carla","telefone":"11999990000","endereco":"Rua A","tipo":"visitor"}`
	req := httptest.NewRequest(http.MethodPost, "/api/eventos/e1/inscricoes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateInscricaoHandler_InvalidTipo(t *testing.T) {
	svc := new(MockEventoService)
	svc.On("CreateInscricao", mock.Anything, "e1", mock.Anything).
		Return(domain.Inscricao{}, apperror.NewValidationError("tipo deve ser um de: member visitor"))

	body := `{"nome":"Carla","telefone":"1","endereco":"Rua A","tipo":"guest"}`
	req := httptest.NewRequest(http.MethodPost, "/api/eventos/e1/inscricoes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_InscricaoPathsDoNotHitEvento(t *testing.T) {
	svc := new(MockEventoService)
	svc.On("GetInscricao", mock.Anything, "i1").Return(domain.Inscricao{ID: "i1"}, nil)
	svc.On("ListInscricoes", mock.Anything, "e1").Return([]domain.Inscricao{}, nil)
	svc.On("Inscricoes", mock.Anything, "e1").Return(domain.EventoInscricoes{Inscricoes: []domain.Inscricao{}}, nil)

	for _, target := range []string{"/api/eventos/inscricoes/i1", "/api/eventos/e1/inscricoes/list", "/api/eventos/e1/inscricoes"} {
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDeleteInscricaoHandler(t *testing.T) {
	svc := new(MockEventoService)
	svc.On("DeleteInscricao", mock.Anything, "i1").Return(domain.Inscricao{ID: "i1", Ativo: false}, nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/eventos/inscricoes/i1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inscrição removida com sucesso")
}
