package acompanhamentorepo

import (
	"context"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

// Definition descreve a tabela acompanhamentos: exclusão física.
var Definition = resource.Definition[domain.Acompanhamento]{
	Table: "acompanhamentos",
	Columns: []string{
		"id", "pessoa_id", "titulo", "descricao", "categoria", "status", "prioridade",
		"to_char(data_inicio, 'YYYY-MM-DD')", "to_char(data_prevista, 'YYYY-MM-DD')", "to_char(data_fim, 'YYYY-MM-DD')",
		"responsavel", "resultado", "concluido_em", "created_at", "updated_at",
	},
	OrderBy:  "created_at DESC",
	NotFound: "Acompanhamento não encontrado",
	Scan: func(s resource.Scanner) (domain.Acompanhamento, error) {
		var a domain.Acompanhamento
		err := s.Scan(&a.ID, &a.PessoaID, &a.Titulo, &a.Descricao, &a.Categoria, &a.Status, &a.Prioridade,
			&a.DataInicio, &a.DataPrevista, &a.DataFim,
			&a.Responsavel, &a.Resultado, &a.ConcluidoEm, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	},
}

// AcompanhamentoRepository acessa a tabela acompanhamentos.
type AcompanhamentoRepository struct {
	*resource.Repository[domain.Acompanhamento]
}

// NewAcompanhamentoRepository cria e retorna uma nova instância do Repositório de Acompanhamentos.
func NewAcompanhamentoRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *AcompanhamentoRepository {
	return &AcompanhamentoRepository{Repository: resource.New(Definition, db, dbTimeout, log)}
}

// WithQuerier devolve uma cópia ligada a outro Querier (transação).
func (r *AcompanhamentoRepository) WithQuerier(q database.Querier) *AcompanhamentoRepository {
	return &AcompanhamentoRepository{Repository: r.Repository.With(q)}
}

func toFilter(f domain.AcompanhamentoFilter) resource.Filter {
	return resource.Filter{}.
		EqIf("status", f.Status).
		EqIf("prioridade", f.Prioridade).
		EqIf("pessoa_id", f.PessoaID)
}

// ListFiltered devolve a página de acompanhamentos com os filtros opcionais.
func (r *AcompanhamentoRepository) ListFiltered(ctx context.Context, f domain.AcompanhamentoFilter, page domain.PageRequest) ([]domain.Acompanhamento, int, error) {
	return r.List(ctx, toFilter(f), page)
}

// ListMatching devolve todos os acompanhamentos do filtro (relatórios).
func (r *AcompanhamentoRepository) ListMatching(ctx context.Context, f domain.AcompanhamentoFilter) ([]domain.Acompanhamento, error) {
	return r.ListAll(ctx, toFilter(f))
}

// ListByPessoa lista os acompanhamentos de uma pessoa.
func (r *AcompanhamentoRepository) ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Acompanhamento, error) {
	return r.ListByParent(ctx, "pessoa_id", pessoaID)
}

// Create insere o acompanhamento com os padrões já aplicados pelo serviço.
func (r *AcompanhamentoRepository) Create(ctx context.Context, in domain.AcompanhamentoInput) (domain.Acompanhamento, error) {
	fields := resource.NewFields().
		Set("pessoa_id", in.PessoaID).
		Set("titulo", in.Titulo).
		Set("descricao", in.Descricao).
		Set("categoria", in.Categoria).
		Set("status", in.Status).
		Set("prioridade", in.Prioridade).
		Set("data_inicio", in.DataInicio).
		Set("data_prevista", in.DataPrevista).
		Set("data_fim", in.DataFim).
		Set("responsavel", in.Responsavel).
		Set("resultado", in.Resultado).
		Set("concluido_em", in.ConcluidoEm)
	return r.Insert(ctx, fields)
}

// Patch aplica a atualização parcial.
func (r *AcompanhamentoRepository) Patch(ctx context.Context, id string, p domain.AcompanhamentoPatch) (domain.Acompanhamento, error) {
	fields := resource.NewFields()
	resource.SetOptional(fields, "pessoa_id", p.PessoaID)
	resource.SetOptional(fields, "titulo", p.Titulo)
	resource.SetOptional(fields, "descricao", p.Descricao)
	resource.SetOptional(fields, "categoria", p.Categoria)
	resource.SetOptional(fields, "status", p.Status)
	resource.SetOptional(fields, "prioridade", p.Prioridade)
	resource.SetOptionalDate(fields, "data_inicio", p.DataInicio)
	resource.SetOptionalDate(fields, "data_prevista", p.DataPrevista)
	resource.SetOptionalDate(fields, "data_fim", p.DataFim)
	resource.SetOptional(fields, "responsavel", p.Responsavel)
	resource.SetOptional(fields, "resultado", p.Resultado)
	resource.SetOptional(fields, "concluido_em", p.ConcluidoEm)
	return r.Update(ctx, id, fields)
}
