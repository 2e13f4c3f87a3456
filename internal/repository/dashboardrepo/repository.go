// Package dashboardrepo reúne as consultas de agregação somente leitura do painel.
package dashboardrepo

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/acompanhamentorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/comunicacaorepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/pessoarepo"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

// Window é o intervalo semiaberto [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// CategoryCount é a contagem de uma tag nas duas janelas do painel.
type CategoryCount struct {
	Tag        string
	Total      int
	Novos      int
	Anteriores int
}

// DashboardRepository executa as contagens do painel.
type DashboardRepository struct {
	pessoas         *resource.Repository[domain.Pessoa]
	comunicacoes    *resource.Repository[domain.Comunicacao]
	acompanhamentos *resource.Repository[domain.Acompanhamento]
	db              database.Querier
	dbTimeout       time.Duration
	logger          logger.Logger
}

// NewDashboardRepository cria e retorna uma nova instância do Repositório do Painel.
func NewDashboardRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *DashboardRepository {
	return &DashboardRepository{
		pessoas:         resource.New(pessoarepo.Definition, db, dbTimeout, log),
		comunicacoes:    resource.New(comunicacaorepo.Definition, db, dbTimeout, log),
		acompanhamentos: resource.New(acompanhamentorepo.Definition, db, dbTimeout, log),
		db:              db,
		dbTimeout:       dbTimeout,
		logger:          log,
	}
}

// CountPessoas conta pessoas pelo flag ativo.
func (r *DashboardRepository) CountPessoas(ctx context.Context, ativo bool) (int, error) {
	return r.pessoas.Count(ctx, resource.Filter{resource.Eq("ativo", ativo)})
}

// CountPessoasCriadas conta pessoas ativas criadas na janela.
func (r *DashboardRepository) CountPessoasCriadas(ctx context.Context, w Window) (int, error) {
	return r.pessoas.Count(ctx, resource.Filter{resource.IsTrue("ativo"), resource.Between("created_at", w.From, w.To)})
}

// CountComunicacoes conta comunicações com o status cuja data cai na janela.
func (r *DashboardRepository) CountComunicacoes(ctx context.Context, status string, w Window) (int, error) {
	return r.comunicacoes.Count(ctx, resource.Filter{}.
		EqIf("status", status).
		And(resource.Between("data_comunicacao", w.From, w.To)))
}

// CountAcompanhamentosAbertos conta os acompanhamentos que não estão em done.
func (r *DashboardRepository) CountAcompanhamentosAbertos(ctx context.Context) (int, error) {
	return r.acompanhamentos.Count(ctx, resource.Filter{resource.Where("status <> ?", domain.AcompanhamentoDone)})
}

// CountAcompanhamentosConcluidos conta os acompanhamentos concluídos na janela.
func (r *DashboardRepository) CountAcompanhamentosConcluidos(ctx context.Context, w Window) (int, error) {
	return r.acompanhamentos.Count(ctx, resource.Filter{
		resource.Eq("status", domain.AcompanhamentoDone),
		resource.Between("concluido_em", w.From, w.To),
	})
}

// CategoryCounts conta, para cada tag na ordem dada, as pessoas ativas, as criadas em current e em previous.
func (r *DashboardRepository) CategoryCounts(ctx context.Context, tags []string, current, previous Window) ([]CategoryCount, error) {
	r.logger.Debug("Iniciando CategoryCounts no repositório.", map[string]interface{}{"tags": tags})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	const query = `
        SELECT t.tag,
               COUNT(p.id),
               COUNT(p.id) FILTER (WHERE p.created_at >= $2 AND p.created_at < $3),
               COUNT(p.id) FILTER (WHERE p.created_at >= $4 AND p.created_at < $5)
        FROM unnest($1::text[]) WITH ORDINALITY AS t(tag, ord)
        LEFT JOIN pessoas p ON p.ativo = true AND t.tag = ANY(p.tags)
        GROUP BY t.tag, t.ord
        ORDER BY t.ord`

	rows, err := r.db.QueryContext(ctxTimeout, query, pq.Array(tags), current.From, current.To, previous.From, previous.To)
	if err != nil {
		r.logger.Error("Falha ao executar CategoryCounts.", err)
		return nil, apperror.NewDBError("Falha ao contar categorias", err)
	}
	defer rows.Close()

	out := []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Tag, &c.Total, &c.Novos, &c.Anteriores); err != nil {
			return nil, apperror.NewDBError("Falha ao mapear categorias", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração de categorias", err)
	}
	return out, nil
}

// PessoasPorMes agrupa as pessoas criadas desde from por mês UTC ("YYYY-MM"). Meses sem cadastro não aparecem.
func (r *DashboardRepository) PessoasPorMes(ctx context.Context, from time.Time) (map[string]int, error) {
	const query = `
        SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS mes, COUNT(*)
        FROM pessoas
        WHERE created_at >= $1
        GROUP BY mes
        ORDER BY mes`
	return r.series(ctx, "PessoasPorMes", query, from.UTC())
}

// ConcluidosPorDia agrupa os acompanhamentos concluídos desde from por dia UTC ("YYYY-MM-DD").
func (r *DashboardRepository) ConcluidosPorDia(ctx context.Context, from time.Time) (map[string]int, error) {
	const query = `
        SELECT to_char(concluido_em AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS dia, COUNT(*)
        FROM acompanhamentos
        WHERE status = 'done' AND concluido_em >= $1
        GROUP BY dia
        ORDER BY dia`
	return r.series(ctx, "ConcluidosPorDia", query, from.UTC())
}

// PessoasEngajadas conta as pessoas ativas distintas com comunicação ou acompanhamento movimentado desde since.
func (r *DashboardRepository) PessoasEngajadas(ctx context.Context, since time.Time) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	const query = `
        SELECT COUNT(*)
        FROM pessoas p
        WHERE p.ativo = true
          AND (EXISTS (SELECT 1 FROM comunicacoes c WHERE c.pessoa_id = p.id AND c.data_comunicacao >= $1)
               OR EXISTS (SELECT 1 FROM acompanhamentos a WHERE a.pessoa_id = p.id AND a.updated_at >= $1))`

	var total int
	if err := r.db.QueryRowContext(ctxTimeout, query, since).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar pessoas engajadas.", err)
		return 0, apperror.NewDBError("Falha ao contar pessoas engajadas", err)
	}
	return total, nil
}

func (r *DashboardRepository) series(ctx context.Context, name, query string, args ...interface{}) (map[string]int, error) {
	r.logger.Debug("Iniciando "+name+" no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar "+name+".", err)
		return nil, apperror.NewDBError("Falha ao agrupar série", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			key   string
			total int
		)
		if err := rows.Scan(&key, &total); err != nil {
			return nil, apperror.NewDBError("Falha ao mapear série", err)
		}
		out[key] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração da série", err)
	}
	return out, nil
}
