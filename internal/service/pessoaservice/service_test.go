package pessoaservice_test

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
	"github.com/GustavoEngSoft/CRM-Family/internal/service/pessoaservice"
)

// MockPessoaRepository é uma implementação mock da interface PessoaRepository
type MockPessoaRepository struct {
	mock.Mock
}

func (m *MockPessoaRepository) ListActive(ctx context.Context, tag string, page domain.PageRequest) ([]domain.Pessoa, int, error) {
	args := m.Called(ctx, tag, page)
	return args.Get(0).([]domain.Pessoa), args.Int(1), args.Error(2)
}

func (m *MockPessoaRepository) ListByTag(ctx context.Context, tag string) ([]domain.Pessoa, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).([]domain.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) TagStats(ctx context.Context, tags []string, monthStart time.Time) ([]domain.TagStat, error) {
	args := m.Called(ctx, tags, monthStart)
	return args.Get(0).([]domain.TagStat), args.Error(1)
}

func (m *MockPessoaRepository) GetByID(ctx context.Context, id string) (domain.Pessoa, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) Create(ctx context.Context, in domain.PessoaInput) (domain.Pessoa, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) Patch(ctx context.Context, id string, p domain.PessoaPatch) (domain.Pessoa, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) Delete(ctx context.Context, id string) (domain.Pessoa, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pessoa), args.Error(1)
}

func newTestService(repo *MockPessoaRepository) *pessoaservice.Service {
	return pessoaservice.NewService(repo, validation.New(), logger.NewNop())
}

func strPtr(s string) *string { return &s }

func TestCreate_Success_BlankEmailIgnored(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)

	expectedInput := domain.PessoaInput{Nome: "Ana"}
	created := domain.Pessoa{ID: uuid.NewString(), Nome: "Ana", Tags: []string{}, Ativo: true}
	mockRepo.On("Create", mock.Anything, expectedInput).Return(created, nil)

	p, err := svc.Create(context.Background(), domain.PessoaInput{Nome: "  Ana ", Email: strPtr("")})

	require.NoError(t, err)
	assert.True(t, p.Ativo)
	assert.Empty(t, p.Tags)
	mockRepo.AssertExpectations(t)
}

func TestCreate_Fail_MissingNome(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)

	_, err := svc.Create(context.Background(), domain.PessoaInput{Email: strPtr("ana@email.com")})

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "nome")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_Fail_InvalidEmail(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)

	_, err := svc.Create(context.Background(), domain.PessoaInput{Nome: "Ana", Email: strPtr("nao-e-email")})

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestList_BuildsPagination(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)
	page := domain.NewPageRequest(2, 10)

	rows := []domain.Pessoa{{ID: uuid.NewString(), Nome: "Ana"}}
	mockRepo.On("ListActive", mock.Anything, "Membros", page).Return(rows, 21, nil)

	out, err := svc.List(context.Background(), "Membros", page)

	require.NoError(t, err)
	assert.Equal(t, 3, out.Pagination.Pages)
	assert.Equal(t, 21, out.Pagination.Total)
	assert.LessOrEqual(t, len(out.Data), page.Limit)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_InvalidDateRejected(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)

	_, err := svc.Update(context.Background(), uuid.NewString(), domain.PessoaPatch{DataNascimento: domain.Some("21/05/1990")})

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_EmptyStringIsApplied(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)
	id := uuid.NewString()

	patch := domain.PessoaPatch{Telefone: domain.Some("")}
	mockRepo.On("Patch", mock.Anything, id, patch).Return(domain.Pessoa{ID: id, Nome: "Ana", Telefone: strPtr("")}, nil)

	p, err := svc.Update(context.Background(), id, patch)

	require.NoError(t, err)
	assert.Equal(t, "", *p.Telefone)
	mockRepo.AssertExpectations(t)
}

func TestDelete_SoftDeleteKeepsRowAddressable(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)
	id := uuid.NewString()

	mockRepo.On("Delete", mock.Anything, id).Return(domain.Pessoa{ID: id, Ativo: false}, nil)
	mockRepo.On("GetByID", mock.Anything, id).Return(domain.Pessoa{ID: id, Ativo: false}, nil)

	deleted, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, deleted.Ativo)

	fetched, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, fetched.Ativo)
	mockRepo.AssertExpectations(t)
}

func TestListByTag_RequiresTag(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)

	_, err := svc.ListByTag(context.Background(), " ")

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestTagStats_UsesCategoryTagsAndMonthStart(t *testing.T) {
	mockRepo := new(MockPessoaRepository)
	svc := newTestService(mockRepo)

	stats := []domain.TagStat{{Tag: domain.TagLideres, Total: 2, MonthChange: 1}}
	mockRepo.On("TagStats", mock.Anything, domain.CategoryTags, mock.MatchedBy(func(t time.Time) bool {
		return t.Day() == 1 && t.Hour() == 0 && t.Minute() == 0
	})).Return(stats, nil)

	out, err := svc.TagStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, out)
	mockRepo.AssertExpectations(t)
}
