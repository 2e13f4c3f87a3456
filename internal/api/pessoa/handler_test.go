package pessoa

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

type MockPessoaService struct {
	mock.Mock
}

func (m *MockPessoaService) List(ctx context.Context, tag string, page domain.PageRequest) (domain.Page[domain.Pessoa], error) {
	args := m.Called(ctx, tag, page)
	return args.Get(0).(domain.Page[domain.Pessoa]), args.Error(1)
}

func (m *MockPessoaService) ListByTag(ctx context.Context, tag string) ([]domain.Pessoa, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).([]domain.Pessoa), args.Error(1)
}

func (m *MockPessoaService) TagStats(ctx context.Context) ([]domain.TagStat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TagStat), args.Error(1)
}

func (m *MockPessoaService) Get(ctx context.Context, id string) (domain.Pessoa, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func (m *MockPessoaService) Create(ctx context.Context, in domain.PessoaInput) (domain.Pessoa, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func (m *MockPessoaService) Update(ctx context.Context, id string, p domain.PessoaPatch) (domain.Pessoa, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func (m *MockPessoaService) Delete(ctx context.Context, id string) (domain.Pessoa, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func newRouter(svc PessoaService) http.Handler {
	h := NewHandler(svc, logger.NewNop())
	r := chi.NewRouter()
	r.Get("/api/pessoas", h.ListHandler)
	r.Post("/api/pessoas", h.CreateHandler)
	r.Get("/api/pessoas/tag/{tag}", h.ListByTagHandler)
	r.Get("/api/pessoas/{id}", h.GetHandler)
	r.Put("/api/pessoas/{id}", h.UpdateHandler)
	r.Delete("/api/pessoas/{id}", h.DeleteHandler)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListHandler_PassesTagAndPage(t *testing.T) {
	svc := new(MockPessoaService)
	page := domain.NewPage([]domain.Pessoa{{ID: "p1", Nome: "Ana", Tags: []string{}}}, domain.PageRequest{Page: 2, Limit: 5}, 6)
	svc.On("List", mock.Anything, "Membros", domain.PageRequest{Page: 2, Limit: 5}).Return(page, nil)

	rec := serve(newRouter(svc), http.MethodGet, "/api/pessoas?tag=Membros&page=2&limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pagination":{"page":2,"limit":5,"total":6,"pages":2}`)
	svc.AssertExpectations(t)
}

func TestListByTagHandler_DecodesAccents(t *testing.T) {
	svc := new(MockPessoaService)
	svc.On("ListByTag", mock.Anything, "Líderes").Return([]domain.Pessoa{}, nil)

	rec := serve(newRouter(svc), http.MethodGet, "/api/pessoas/tag/L%C3%ADderes", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestCreateHandler(t *testing.T) {
	svc := new(MockPessoaService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in domain.PessoaInput) bool {
		return in.Nome == "Ana" && len(in.Tags) == 1
	})).Return(domain.Pessoa{ID: "p1", Nome: "Ana", Ativo: true, Tags: []string{"Membros"}}, nil)

	rec := serve(newRouter(svc), http.MethodPost, "/api/pessoas", `{"nome":"Ana","tags":["Membros"]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"p1"`)
}

func TestCreateHandler_InvalidJSON(t *testing.T) {
	svc := new(MockPessoaService)

	rec := serve(newRouter(svc), http.MethodPost, "/api/pessoas", `{"nome":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Payload JSON inválido."}`, rec.Body.String())
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateHandler_ValidationError(t *testing.T) {
	svc := new(MockPessoaService)
	svc.On("Create", mock.Anything, mock.Anything).Return(domain.Pessoa{}, apperror.NewValidationError("nome é obrigatório"))

	rec := serve(newRouter(svc), http.MethodPost, "/api/pessoas", `{"email":"ana@email.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"nome é obrigatório"}`, rec.Body.String())
}

func TestGetHandler_NotFound(t *testing.T) {
	svc := new(MockPessoaService)
	svc.On("Get", mock.Anything, "nao-existe").Return(domain.Pessoa{}, apperror.NewNotFoundError("Pessoa não encontrada"))

	rec := serve(newRouter(svc), http.MethodGet, "/api/pessoas/nao-existe", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Pessoa não encontrada"}`, rec.Body.String())
}

func TestDeleteHandler_ReturnsMessageAndRow(t *testing.T) {
	svc := new(MockPessoaService)
	svc.On("Delete", mock.Anything, "p1").Return(domain.Pessoa{ID: "p1", Nome: "Ana", Ativo: false}, nil)

	rec := serve(newRouter(svc), http.MethodDelete, "/api/pessoas/p1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Pessoa deletada com sucesso"`)
	assert.Contains(t, rec.Body.String(), `"ativo":false`)
}
