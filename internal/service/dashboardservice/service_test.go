package dashboardservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/cache"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/dashboardrepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/service/dashboardservice"
)

// MockDashboardRepository é uma implementação mock da interface DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountPessoas(ctx context.Context, ativo bool) (int, error) {
	args := m.Called(ctx, ativo)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountPessoasCriadas(ctx context.Context, w dashboardrepo.Window) (int, error) {
	args := m.Called(ctx, w)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountComunicacoes(ctx context.Context, status string, w dashboardrepo.Window) (int, error) {
	args := m.Called(ctx, status, w)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountAcompanhamentosAbertos(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountAcompanhamentosConcluidos(ctx context.Context, w dashboardrepo.Window) (int, error) {
	args := m.Called(ctx, w)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CategoryCounts(ctx context.Context, tags []string, current, previous dashboardrepo.Window) ([]dashboardrepo.CategoryCount, error) {
	args := m.Called(ctx, tags, current, previous)
	return args.Get(0).([]dashboardrepo.CategoryCount), args.Error(1)
}

func (m *MockDashboardRepository) PessoasPorMes(ctx context.Context, from time.Time) (map[string]int, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockDashboardRepository) ConcluidosPorDia(ctx context.Context, from time.Time) (map[string]int, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockDashboardRepository) PessoasEngajadas(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

var fixedNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func windows() (dashboardrepo.Window, dashboardrepo.Window) {
	current := dashboardrepo.Window{From: fixedNow.AddDate(0, 0, -30), To: fixedNow}
	previous := dashboardrepo.Window{From: fixedNow.AddDate(0, 0, -60), To: current.From}
	return current, previous
}

func newTestService(t *testing.T, repo *MockDashboardRepository) (*dashboardservice.Service, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(mr.Addr())
	require.NoError(t, err)
	svc := dashboardservice.NewService(repo, client, time.Minute, logger.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return svc, mr
}

func TestStats_ComputesDeltas(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc := dashboardservice.NewService(repo, nil, time.Minute, logger.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	current, previous := windows()

	repo.On("CountPessoas", mock.Anything, true).Return(75, nil)
	repo.On("CountPessoas", mock.Anything, false).Return(25, nil)
	repo.On("CountPessoasCriadas", mock.Anything, current).Return(15, nil)
	repo.On("CountPessoasCriadas", mock.Anything, previous).Return(10, nil)
	repo.On("CountComunicacoes", mock.Anything, domain.ComunicacaoSent, current).Return(5, nil)
	repo.On("CountComunicacoes", mock.Anything, domain.ComunicacaoSent, previous).Return(0, nil)
	repo.On("CountAcompanhamentosAbertos", mock.Anything).Return(7, nil)
	repo.On("CountAcompanhamentosConcluidos", mock.Anything, current).Return(0, nil)
	repo.On("CountAcompanhamentosConcluidos", mock.Anything, previous).Return(0, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 75, stats.TotalPessoas)
	assert.Equal(t, 75, stats.PercentualAtivos)
	assert.Equal(t, domain.Metric{Atual: 15, Anterior: 10, Variacao: 5, Percentual: 50}, stats.NovasPessoas)
	assert.Equal(t, 100, stats.ComunicacoesEnviadas.Percentual)
	assert.Equal(t, 0, stats.AcompanhamentosConcluidos.Percentual)
	assert.Equal(t, 7, stats.AcompanhamentosAbertos)
	repo.AssertExpectations(t)
}

func TestCrescimentoMensal_ZeroFillsSixMonths(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc, _ := newTestService(t, repo)

	first := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	repo.On("PessoasPorMes", mock.Anything, first).Return(map[string]int{"2026-07": 4, "2026-10": 2}, nil).Once()

	series, err := svc.CrescimentoMensal(context.Background())

	require.NoError(t, err)
	require.Len(t, series, 6)
	assert.Equal(t, domain.PontoMensal{Mes: "Maio", Label: "Mai/26", Total: 0}, series[0])
	assert.Equal(t, 4, series[2].Total)
	assert.Equal(t, domain.PontoMensal{Mes: "Outubro", Label: "Out/26", Total: 2}, series[5])
}

func TestAcompanhamentosDiarios_TenDays(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc, _ := newTestService(t, repo)

	first := time.Date(2026, time.October, 7, 0, 0, 0, 0, time.UTC)
	repo.On("ConcluidosPorDia", mock.Anything, first).Return(map[string]int{"2026-10-16": 3}, nil)

	series, err := svc.AcompanhamentosDiarios(context.Background())

	require.NoError(t, err)
	require.Len(t, series, 10)
	assert.Equal(t, "07/10", series[0].Label)
	assert.Equal(t, 0, series[0].Total)
	assert.Equal(t, domain.PontoDiario{Dia: "2026-10-16", Label: "16/10", Total: 3}, series[9])
}

func TestAcompanhamentosDiarios_LocalClockUsesUTCDays(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc, _ := newTestService(t, repo)
	// 22:30 em São Paulo já é dia 17 em UTC.
	svc.WithClock(func() time.Time {
		return time.Date(2026, time.October, 16, 22, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	})

	first := time.Date(2026, time.October, 8, 0, 0, 0, 0, time.UTC)
	repo.On("ConcluidosPorDia", mock.Anything, first).Return(map[string]int{"2026-10-17": 1}, nil)

	series, err := svc.AcompanhamentosDiarios(context.Background())

	require.NoError(t, err)
	require.Len(t, series, 10)
	assert.Equal(t, domain.PontoDiario{Dia: "2026-10-17", Label: "17/10", Total: 1}, series[9])
	repo.AssertExpectations(t)
}

func TestCategories_SecondCallServedFromCache(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc, mr := newTestService(t, repo)
	current, previous := windows()

	repo.On("CategoryCounts", mock.Anything, domain.CategoryTags, current, previous).
		Return([]dashboardrepo.CategoryCount{{Tag: domain.TagMembros, Total: 40, Novos: 6, Anteriores: 4}}, nil).Once()

	first, err := svc.Categories(context.Background())
	require.NoError(t, err)
	second, err := svc.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, second[0].Crescimento)
	assert.Equal(t, 50, second[0].Percentual)
	assert.True(t, mr.Exists(dashboardservice.KeyCategories))
	repo.AssertNumberOfCalls(t, "CategoryCounts", 1)
}

func TestAtividade_CacheFailureFallsThrough(t *testing.T) {
	repo := new(MockDashboardRepository)
	svc, mr := newTestService(t, repo)
	current, _ := windows()
	mr.Close()

	repo.On("CountPessoas", mock.Anything, true).Return(40, nil)
	repo.On("PessoasEngajadas", mock.Anything, current.From).Return(10, nil)

	a, err := svc.Atividade(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Atividade{Ativas: 10, Total: 40, Percentual: 25}, a)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Mar/25", dashboardservice.MonthLabel(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jan/00", dashboardservice.MonthLabel(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
