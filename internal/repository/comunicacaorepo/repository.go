package comunicacaorepo

import (
	"context"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

// Definition descreve a tabela comunicacoes: exclusão física, ordenada pela data da comunicação.
var Definition = resource.Definition[domain.Comunicacao]{
	Table: "comunicacoes",
	Columns: []string{
		"id", "pessoa_id", "tipo", "assunto", "mensagem", "proxima_acao", "status",
		"data_comunicacao", "created_at", "updated_at",
	},
	OrderBy:  "data_comunicacao DESC",
	NotFound: "Comunicação não encontrada",
	Scan: func(s resource.Scanner) (domain.Comunicacao, error) {
		var c domain.Comunicacao
		err := s.Scan(&c.ID, &c.PessoaID, &c.Tipo, &c.Assunto, &c.Mensagem, &c.ProximaAcao, &c.Status,
			&c.DataComunicacao, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	},
}

// ComunicacaoRepository acessa a tabela comunicacoes.
type ComunicacaoRepository struct {
	*resource.Repository[domain.Comunicacao]
}

// NewComunicacaoRepository cria e retorna uma nova instância do Repositório de Comunicações.
func NewComunicacaoRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *ComunicacaoRepository {
	return &ComunicacaoRepository{Repository: resource.New(Definition, db, dbTimeout, log)}
}

// WithQuerier devolve uma cópia ligada a outro Querier (transação).
func (r *ComunicacaoRepository) WithQuerier(q database.Querier) *ComunicacaoRepository {
	return &ComunicacaoRepository{Repository: r.Repository.With(q)}
}

func toFilter(f domain.ComunicacaoFilter) resource.Filter {
	return resource.Filter{}.EqIf("status", f.Status).EqIf("tipo", f.Tipo)
}

// ListFiltered devolve a página de comunicações com os filtros opcionais de status e tipo.
func (r *ComunicacaoRepository) ListFiltered(ctx context.Context, f domain.ComunicacaoFilter, page domain.PageRequest) ([]domain.Comunicacao, int, error) {
	return r.List(ctx, toFilter(f), page)
}

// ListMatching devolve todas as comunicações do filtro (relatórios).
func (r *ComunicacaoRepository) ListMatching(ctx context.Context, f domain.ComunicacaoFilter) ([]domain.Comunicacao, error) {
	return r.ListAll(ctx, toFilter(f))
}

// ListByPessoa lista as comunicações de uma pessoa, mais recentes primeiro.
func (r *ComunicacaoRepository) ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Comunicacao, error) {
	return r.ListByParent(ctx, "pessoa_id", pessoaID)
}

// Create insere a comunicação. Status e data já vêm preenchidos pelo serviço.
func (r *ComunicacaoRepository) Create(ctx context.Context, in domain.ComunicacaoInput) (domain.Comunicacao, error) {
	fields := resource.NewFields().
		Set("pessoa_id", in.PessoaID).
		Set("tipo", in.Tipo).
		Set("assunto", in.Assunto).
		Set("mensagem", in.Mensagem).
		Set("proxima_acao", in.ProximaAcao).
		Set("status", in.Status)
	if in.DataComunicacao != nil {
		fields.Set("data_comunicacao", *in.DataComunicacao)
	}
	return r.Insert(ctx, fields)
}

// Patch aplica a atualização parcial.
func (r *ComunicacaoRepository) Patch(ctx context.Context, id string, p domain.ComunicacaoPatch) (domain.Comunicacao, error) {
	fields := resource.NewFields()
	resource.SetOptional(fields, "pessoa_id", p.PessoaID)
	resource.SetOptional(fields, "tipo", p.Tipo)
	resource.SetOptional(fields, "assunto", p.Assunto)
	resource.SetOptional(fields, "mensagem", p.Mensagem)
	resource.SetOptional(fields, "proxima_acao", p.ProximaAcao)
	resource.SetOptional(fields, "status", p.Status)
	resource.SetOptional(fields, "data_comunicacao", p.DataComunicacao)
	return r.Update(ctx, id, fields)
}
