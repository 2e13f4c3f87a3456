package pessoarepo

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

var columns = []string{
	"id", "nome", "email", "telefone", "cpf", "endereco", "cidade", "estado", "cep",
	"to_char(data_nascimento, 'YYYY-MM-DD')", "tags", "observacoes", "ativo", "created_at", "updated_at",
}

// Definition descreve a tabela pessoas: exclusão lógica pela coluna ativo.
var Definition = resource.Definition[domain.Pessoa]{
	Table:        "pessoas",
	Columns:      columns,
	OrderBy:      "created_at DESC",
	ActiveColumn: "ativo",
	NotFound:     "Pessoa não encontrada",
	Scan:         scan,
}

func scan(s resource.Scanner) (domain.Pessoa, error) {
	var p domain.Pessoa
	var tags pq.StringArray
	err := s.Scan(
		&p.ID, &p.Nome, &p.Email, &p.Telefone, &p.CPF, &p.Endereco, &p.Cidade, &p.Estado, &p.CEP,
		&p.DataNascimento, &tags, &p.Observacoes, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	p.Tags = []string(tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, err
}

// PessoaRepository acessa a tabela pessoas.
type PessoaRepository struct {
	*resource.Repository[domain.Pessoa]
	db        database.Querier
	dbTimeout time.Duration
	logger    logger.Logger
}

// NewPessoaRepository cria e retorna uma nova instância do Repositório de Pessoas.
func NewPessoaRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *PessoaRepository {
	return &PessoaRepository{
		Repository: resource.New(Definition, db, dbTimeout, log),
		db:         db,
		dbTimeout:  dbTimeout,
		logger:     log,
	}
}

// WithQuerier devolve uma cópia ligada a outro Querier (transação).
func (r *PessoaRepository) WithQuerier(q database.Querier) *PessoaRepository {
	return &PessoaRepository{Repository: r.Repository.With(q), db: q, dbTimeout: r.dbTimeout, logger: r.logger}
}

// ListActive lista pessoas ativas, opcionalmente apenas as que têm a tag.
func (r *PessoaRepository) ListActive(ctx context.Context, tag string, page domain.PageRequest) ([]domain.Pessoa, int, error) {
	filter := resource.Filter{resource.IsTrue("ativo")}
	if tag != "" {
		filter = filter.And(resource.HasTag(tag))
	}
	return r.List(ctx, filter, page)
}

// ListByTag lista todas as pessoas ativas com a tag.
func (r *PessoaRepository) ListByTag(ctx context.Context, tag string) ([]domain.Pessoa, error) {
	return r.ListAll(ctx, resource.Filter{resource.IsTrue("ativo"), resource.HasTag(tag)})
}

// ListFiltered lista pessoas ativas que possuem todas as tags informadas (usado nos relatórios).
func (r *PessoaRepository) ListFiltered(ctx context.Context, tags []string) ([]domain.Pessoa, error) {
	filter := resource.Filter{resource.IsTrue("ativo")}
	for _, t := range tags {
		filter = filter.And(resource.HasTag(t))
	}
	return r.ListAll(ctx, filter)
}

// Create insere a pessoa. Ativo sempre começa verdadeiro.
func (r *PessoaRepository) Create(ctx context.Context, in domain.PessoaInput) (domain.Pessoa, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	fields := resource.NewFields().
		Set("nome", in.Nome).
		Set("email", in.Email).
		Set("telefone", in.Telefone).
		Set("cpf", in.CPF).
		Set("endereco", in.Endereco).
		Set("cidade", in.Cidade).
		Set("estado", in.Estado).
		Set("cep", in.CEP).
		Set("data_nascimento", in.DataNascimento).
		Set("tags", pq.Array(tags)).
		Set("observacoes", in.Observacoes).
		Set("ativo", true)

	return r.Insert(ctx, fields)
}

// Patch aplica a atualização parcial.
func (r *PessoaRepository) Patch(ctx context.Context, id string, p domain.PessoaPatch) (domain.Pessoa, error) {
	fields := resource.NewFields()
	resource.SetOptional(fields, "nome", p.Nome)
	resource.SetOptional(fields, "email", p.Email)
	resource.SetOptional(fields, "telefone", p.Telefone)
	resource.SetOptional(fields, "cpf", p.CPF)
	resource.SetOptional(fields, "endereco", p.Endereco)
	resource.SetOptional(fields, "cidade", p.Cidade)
	resource.SetOptional(fields, "estado", p.Estado)
	resource.SetOptional(fields, "cep", p.CEP)
	resource.SetOptionalDate(fields, "data_nascimento", p.DataNascimento)
	resource.SetOptionalTags(fields, "tags", p.Tags)
	resource.SetOptional(fields, "observacoes", p.Observacoes)
	resource.SetOptional(fields, "ativo", p.Ativo)

	return r.Update(ctx, id, fields)
}

// TagStats conta, para cada tag, as pessoas ativas e quantas foram criadas a partir de monthStart.
func (r *PessoaRepository) TagStats(ctx context.Context, tags []string, monthStart time.Time) ([]domain.TagStat, error) {
	r.logger.Debug("Iniciando TagStats no repositório.", map[string]interface{}{"tags": tags})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.dbTimeout)
	defer cancel()

	const query = `
        SELECT t.tag,
               COUNT(p.id) AS total,
               COUNT(p.id) FILTER (WHERE p.created_at >= $2) AS month_change
        FROM unnest($1::text[]) WITH ORDINALITY AS t(tag, ord)
        LEFT JOIN pessoas p ON p.ativo = true AND t.tag = ANY(p.tags)
        GROUP BY t.tag, t.ord
        ORDER BY t.ord`

	rows, err := r.db.QueryContext(ctxTimeout, query, pq.Array(tags), monthStart)
	if err != nil {
		r.logger.Error("Falha ao executar TagStats.", err)
		return nil, apperror.NewDBError("Falha ao calcular estatísticas de tags", err)
	}
	defer rows.Close()

	stats := []domain.TagStat{}
	for rows.Next() {
		var s domain.TagStat
		if err := rows.Scan(&s.Tag, &s.Total, &s.MonthChange); err != nil {
			r.logger.Error("Falha ao mapear TagStats.", err)
			return nil, apperror.NewDBError("Falha ao mapear estatísticas de tags", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração de estatísticas de tags", err)
	}

	r.logger.Info("TagStats concluído.", map[string]interface{}{"tags": len(stats)})
	return stats, nil
}
