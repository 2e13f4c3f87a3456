package dashboardservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/cache"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/metrics"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/dashboardrepo"
)

const (
	janela           = 30 * 24 * time.Hour
	mesesCrescimento = 6
	diasConcluidos   = 10
)

// Chaves do cache do painel.
const (
	KeyStats       = "dashboard:stats"
	KeyCategories  = "dashboard:categories"
	KeyCrescimento = "dashboard:crescimento-mensal"
	KeyDiarios     = "dashboard:acompanhamentos-diarios"
	KeyAtividade   = "dashboard:atividade"
)

var nomesMeses = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// DashboardRepository define as agregações que o painel consome.
type DashboardRepository interface {
	CountPessoas(ctx context.Context, ativo bool) (int, error)
	CountPessoasCriadas(ctx context.Context, w dashboardrepo.Window) (int, error)
	CountComunicacoes(ctx context.Context, status string, w dashboardrepo.Window) (int, error)
	CountAcompanhamentosAbertos(ctx context.Context) (int, error)
	CountAcompanhamentosConcluidos(ctx context.Context, w dashboardrepo.Window) (int, error)
	CategoryCounts(ctx context.Context, tags []string, current, previous dashboardrepo.Window) ([]dashboardrepo.CategoryCount, error)
	PessoasPorMes(ctx context.Context, from time.Time) (map[string]int, error)
	ConcluidosPorDia(ctx context.Context, from time.Time) (map[string]int, error)
	PessoasEngajadas(ctx context.Context, since time.Time) (int, error)
}

// Service calcula os indicadores do painel com cache de leitura no Redis.
type Service struct {
	repo     DashboardRepository
	cache    cache.Client
	cacheTTL time.Duration
	logger   logger.Logger
	now      func() time.Time
}

// NewService cria o serviço do painel. cacheClient pode ser nil (sem cache).
func NewService(repo DashboardRepository, cacheClient cache.Client, cacheTTL time.Duration, log logger.Logger) *Service {
	return &Service{repo: repo, cache: cacheClient, cacheTTL: cacheTTL, logger: log, now: time.Now}
}

// WithClock substitui o relógio usado nas janelas.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// windows devolve a janela atual (últimos 30 dias) e a anterior ([60,30) dias).
func (s *Service) windows() (dashboardrepo.Window, dashboardrepo.Window) {
	now := s.now()
	current := dashboardrepo.Window{From: now.Add(-janela), To: now}
	previous := dashboardrepo.Window{From: now.Add(-2 * janela), To: current.From}
	return current, previous
}

// Stats devolve os indicadores principais comparados com a janela anterior.
func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return cached(ctx, s, KeyStats, s.loadStats)
}

func (s *Service) loadStats(ctx context.Context) (domain.DashboardStats, error) {
	current, previous := s.windows()

	var (
		out                   domain.DashboardStats
		err                   error
		novas, novasAnt       int
		enviadas, enviadasAnt int
		concl, conclAnt       int
	)

	// 1. Pessoas ativas e inativas
	if out.Ativos, err = s.repo.CountPessoas(ctx, true); err != nil {
		return out, err
	}
	if out.Inativos, err = s.repo.CountPessoas(ctx, false); err != nil {
		return out, err
	}
	out.TotalPessoas = out.Ativos
	out.PercentualAtivos = domain.Percent(out.Ativos, out.Ativos+out.Inativos)

	// 2. Novas pessoas
	if novas, err = s.repo.CountPessoasCriadas(ctx, current); err != nil {
		return out, err
	}
	if novasAnt, err = s.repo.CountPessoasCriadas(ctx, previous); err != nil {
		return out, err
	}
	out.NovasPessoas = domain.NewMetric(novas, novasAnt)

	// 3. Comunicações enviadas
	if enviadas, err = s.repo.CountComunicacoes(ctx, domain.ComunicacaoSent, current); err != nil {
		return out, err
	}
	if enviadasAnt, err = s.repo.CountComunicacoes(ctx, domain.ComunicacaoSent, previous); err != nil {
		return out, err
	}
	out.ComunicacoesEnviadas = domain.NewMetric(enviadas, enviadasAnt)

	// 4. Acompanhamentos
	if out.AcompanhamentosAbertos, err = s.repo.CountAcompanhamentosAbertos(ctx); err != nil {
		return out, err
	}
	if concl, err = s.repo.CountAcompanhamentosConcluidos(ctx, current); err != nil {
		return out, err
	}
	if conclAnt, err = s.repo.CountAcompanhamentosConcluidos(ctx, previous); err != nil {
		return out, err
	}
	out.AcompanhamentosConcluidos = domain.NewMetric(concl, conclAnt)

	return out, nil
}

// Categories devolve o crescimento de cada tag de categoria.
func (s *Service) Categories(ctx context.Context) ([]domain.CategoriaStats, error) {
	return cached(ctx, s, KeyCategories, func(ctx context.Context) ([]domain.CategoriaStats, error) {
		current, previous := s.windows()
		counts, err := s.repo.CategoryCounts(ctx, domain.CategoryTags, current, previous)
		if err != nil {
			return nil, err
		}

		out := make([]domain.CategoriaStats, 0, len(counts))
		for _, c := range counts {
			out = append(out, domain.CategoriaStats{
				Categoria:   c.Tag,
				Total:       c.Total,
				Novos:       c.Novos,
				Anteriores:  c.Anteriores,
				Crescimento: c.Novos - c.Anteriores,
				Percentual:  domain.PercentChange(c.Novos, c.Anteriores),
			})
		}
		return out, nil
	})
}

// CrescimentoMensal devolve os cadastros dos últimos 6 meses, incluindo o corrente, com zeros nos meses vazios.
// Meses e dias são contados em UTC, igual ao agrupamento feito no banco.
func (s *Service) CrescimentoMensal(ctx context.Context) ([]domain.PontoMensal, error) {
	return cached(ctx, s, KeyCrescimento, func(ctx context.Context) ([]domain.PontoMensal, error) {
		now := s.now().UTC()
		first := time.Date(now.Year(), now.Month()-(mesesCrescimento-1), 1, 0, 0, 0, 0, time.UTC)

		byMonth, err := s.repo.PessoasPorMes(ctx, first)
		if err != nil {
			return nil, err
		}

		out := make([]domain.PontoMensal, 0, mesesCrescimento)
		for i := 0; i < mesesCrescimento; i++ {
			m := first.AddDate(0, i, 0)
			out = append(out, domain.PontoMensal{
				Mes:   nomesMeses[m.Month()-1],
				Label: MonthLabel(m),
				Total: byMonth[m.Format("2006-01")],
			})
		}
		return out, nil
	})
}

// AcompanhamentosDiarios devolve os acompanhamentos concluídos em cada um dos últimos 10 dias.
func (s *Service) AcompanhamentosDiarios(ctx context.Context) ([]domain.PontoDiario, error) {
	return cached(ctx, s, KeyDiarios, func(ctx context.Context) ([]domain.PontoDiario, error) {
		now := s.now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		first := today.AddDate(0, 0, -(diasConcluidos - 1))

		byDay, err := s.repo.ConcluidosPorDia(ctx, first)
		if err != nil {
			return nil, err
		}

		out := make([]domain.PontoDiario, 0, diasConcluidos)
		for i := 0; i < diasConcluidos; i++ {
			d := first.AddDate(0, 0, i)
			key := d.Format("2006-01-02")
			out = append(out, domain.PontoDiario{Dia: key, Label: d.Format("02/01"), Total: byDay[key]})
		}
		return out, nil
	})
}

// Atividade mede quantas pessoas ativas tiveram contato ou acompanhamento nos últimos 30 dias.
func (s *Service) Atividade(ctx context.Context) (domain.Atividade, error) {
	return cached(ctx, s, KeyAtividade, func(ctx context.Context) (domain.Atividade, error) {
		current, _ := s.windows()

		total, err := s.repo.CountPessoas(ctx, true)
		if err != nil {
			return domain.Atividade{}, err
		}
		ativas, err := s.repo.PessoasEngajadas(ctx, current.From)
		if err != nil {
			return domain.Atividade{}, err
		}
		return domain.Atividade{Ativas: ativas, Total: total, Percentual: domain.Percent(ativas, total)}, nil
	})
}

// MonthLabel formata o rótulo curto do mês, ex.: "Out/26".
func MonthLabel(t time.Time) string {
	nome := []rune(nomesMeses[t.Month()-1])
	return fmt.Sprintf("%s/%02d", string(nome[:3]), t.Year()%100)
}

// cached aplica cache-aside: uma falha do Redis é registrada e a consulta segue para o banco.
func cached[T any](ctx context.Context, s *Service, key string, load func(context.Context) (T, error)) (T, error) {
	if s.cache != nil {
		var hit T
		err := cache.GetJSON(ctx, s.cache, key, &hit)
		switch {
		case err == nil:
			metrics.CacheHits.WithLabelValues(key).Inc()
			return hit, nil
		case cache.IsMiss(err):
			metrics.CacheMisses.WithLabelValues(key).Inc()
		default:
			metrics.CacheMisses.WithLabelValues(key).Inc()
			s.logger.Warn("Falha ao ler cache do painel, consultando o banco.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}

	val, err := load(ctx)
	if err != nil {
		return val, err
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, val, s.cacheTTL); err != nil {
			s.logger.Warn("Falha ao gravar cache do painel.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
	return val, nil
}
