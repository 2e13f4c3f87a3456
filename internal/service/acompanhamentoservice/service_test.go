package acompanhamentoservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/acompanhamentoservice"
)

// MockAcompanhamentoRepository é uma implementação mock da interface AcompanhamentoRepository
type MockAcompanhamentoRepository struct {
	mock.Mock
}

func (m *MockAcompanhamentoRepository) ListFiltered(ctx context.Context, f domain.AcompanhamentoFilter, page domain.PageRequest) ([]domain.Acompanhamento, int, error) {
	args := m.Called(ctx, f, page)
	return args.Get(0).([]domain.Acompanhamento), args.Int(1), args.Error(2)
}

func (m *MockAcompanhamentoRepository) ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Acompanhamento, error) {
	args := m.Called(ctx, pessoaID)
	return args.Get(0).([]domain.Acompanhamento), args.Error(1)
}

func (m *MockAcompanhamentoRepository) GetByID(ctx context.Context, id string) (domain.Acompanhamento, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Acompanhamento), args.Error(1)
}

func (m *MockAcompanhamentoRepository) Create(ctx context.Context, in domain.AcompanhamentoInput) (domain.Acompanhamento, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Acompanhamento), args.Error(1)
}

func (m *MockAcompanhamentoRepository) Patch(ctx context.Context, id string, p domain.AcompanhamentoPatch) (domain.Acompanhamento, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Acompanhamento), args.Error(1)
}

func (m *MockAcompanhamentoRepository) Delete(ctx context.Context, id string) (domain.Acompanhamento, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Acompanhamento), args.Error(1)
}

func newTestService(repo *MockAcompanhamentoRepository) *acompanhamentoservice.Service {
	return acompanhamentoservice.NewService(repo, validation.New(), logger.NewNop())
}

func TestCreate_AppliesDefaults(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(in domain.AcompanhamentoInput) bool {
		return in.Status == "pending" && in.Prioridade == "medium" && in.ConcluidoEm == nil
	})).Return(domain.Acompanhamento{ID: uuid.NewString(), Titulo: "Visita", Status: "pending", Prioridade: "medium"}, nil)

	a, err := svc.Create(context.Background(), domain.AcompanhamentoInput{Titulo: "Visita"})

	require.NoError(t, err)
	assert.Equal(t, "pending", a.Status)
	assert.Equal(t, "medium", a.Prioridade)
	mockRepo.AssertExpectations(t)
}

func TestCreate_Fail_MissingTitulo(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)

	_, err := svc.Create(context.Background(), domain.AcompanhamentoInput{Prioridade: "high"})

	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "titulo")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DoneStampsConcluidoEm(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(in domain.AcompanhamentoInput) bool {
		return in.ConcluidoEm != nil
	})).Return(domain.Acompanhamento{Status: "done"}, nil)

	_, err := svc.Create(context.Background(), domain.AcompanhamentoInput{Titulo: "Visita", Status: "done"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStatus_ToDoneStamps(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)
	id := uuid.NewString()

	mockRepo.On("GetByID", mock.Anything, id).Return(domain.Acompanhamento{ID: id, Status: "in-progress"}, nil)
	mockRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p domain.AcompanhamentoPatch) bool {
		return p.Status.Value == "done" && p.ConcluidoEm.Present()
	})).Return(domain.Acompanhamento{ID: id, Status: "done"}, nil)

	a, err := svc.UpdateStatus(context.Background(), id, domain.StatusUpdate{Status: "done"})

	require.NoError(t, err)
	assert.Equal(t, "done", a.Status)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStatus_LeavingDoneClears(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)
	id := uuid.NewString()
	done := time.Now()

	mockRepo.On("GetByID", mock.Anything, id).Return(domain.Acompanhamento{ID: id, Status: "done", ConcluidoEm: &done}, nil)
	mockRepo.On("Patch", mock.Anything, id, mock.MatchedBy(func(p domain.AcompanhamentoPatch) bool {
		return p.ConcluidoEm.IsNull()
	})).Return(domain.Acompanhamento{ID: id, Status: "pending"}, nil)

	_, err := svc.UpdateStatus(context.Background(), id, domain.StatusUpdate{Status: "pending"})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)

	_, err := svc.UpdateStatus(context.Background(), uuid.NewString(), domain.StatusUpdate{Status: "archived"})

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_WithoutStatusSkipsLookup(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)
	id := uuid.NewString()

	patch := domain.AcompanhamentoPatch{Resultado: domain.Some("Família visitada")}
	mockRepo.On("Patch", mock.Anything, id, patch).Return(domain.Acompanhamento{ID: id}, nil)

	_, err := svc.Update(context.Background(), id, patch)

	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_StatusOnMissingRowIsNotFound(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)
	id := uuid.NewString()

	mockRepo.On("GetByID", mock.Anything, id).Return(domain.Acompanhamento{}, apperror.NewNotFoundError("Acompanhamento não encontrado"))

	_, err := svc.UpdateStatus(context.Background(), id, domain.StatusUpdate{Status: "done"})

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestList_FiltersByPessoa(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)
	pessoaID := uuid.NewString()
	page := domain.NewPageRequest(1, 10)
	f := domain.AcompanhamentoFilter{PessoaID: pessoaID}

	mockRepo.On("ListFiltered", mock.Anything, f, page).Return([]domain.Acompanhamento{{Titulo: "Visita"}}, 1, nil)

	out, err := svc.List(context.Background(), f, page)

	require.NoError(t, err)
	assert.Equal(t, 1, out.Pagination.Total)
	mockRepo.AssertExpectations(t)
}

func TestList_Fail_MalformedPessoaID(t *testing.T) {
	mockRepo := new(MockAcompanhamentoRepository)
	svc := newTestService(mockRepo)

	_, err := svc.List(context.Background(), domain.AcompanhamentoFilter{PessoaID: "p1"}, domain.NewPageRequest(1, 10))

	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, "pessoa_id deve ser um UUID válido", err.Error())
	mockRepo.AssertNotCalled(t, "ListFiltered", mock.Anything, mock.Anything, mock.Anything)
}
