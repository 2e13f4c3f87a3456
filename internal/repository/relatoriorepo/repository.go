package relatoriorepo

import (
	"context"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

// Definition descreve a tabela relatorios: exclusão física, mais recentes primeiro.
var Definition = resource.Definition[domain.Relatorio]{
	Table: "relatorios",
	Columns: []string{
		"id", "titulo", "descricao", "tipo", "parametros", "usuario_id", "gerado_em", "created_at", "updated_at",
	},
	OrderBy:  "gerado_em DESC",
	NotFound: "Relatório não encontrado",
	Scan: func(s resource.Scanner) (domain.Relatorio, error) {
		var rel domain.Relatorio
		var params []byte
		err := s.Scan(&rel.ID, &rel.Titulo, &rel.Descricao, &rel.Tipo, &params, &rel.UsuarioID, &rel.GeradoEm, &rel.CreatedAt, &rel.UpdatedAt)
		if len(params) > 0 {
			rel.Parametros = params
		}
		return rel, err
	},
}

// RelatorioRepository acessa a tabela relatorios.
type RelatorioRepository struct {
	*resource.Repository[domain.Relatorio]
}

// NewRelatorioRepository cria e retorna uma nova instância do Repositório de Relatórios.
func NewRelatorioRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *RelatorioRepository {
	return &RelatorioRepository{Repository: resource.New(Definition, db, dbTimeout, log)}
}

// WithQuerier devolve uma cópia ligada a outro Querier (transação).
func (r *RelatorioRepository) WithQuerier(q database.Querier) *RelatorioRepository {
	return &RelatorioRepository{Repository: r.Repository.With(q)}
}

// ListPage devolve a página de relatórios.
func (r *RelatorioRepository) ListPage(ctx context.Context, page domain.PageRequest) ([]domain.Relatorio, int, error) {
	return r.List(ctx, nil, page)
}

// Create persiste o registro do relatório. Parametros é gravado como jsonb.
func (r *RelatorioRepository) Create(ctx context.Context, in domain.RelatorioInput) (domain.Relatorio, error) {
	params := []byte(in.Parametros)
	if len(params) == 0 {
		params = []byte("{}")
	}

	fields := resource.NewFields().
		Set("titulo", in.Titulo).
		Set("descricao", in.Descricao).
		Set("tipo", in.Tipo).
		Set("parametros", string(params)).
		Set("usuario_id", in.UsuarioID)
	return r.Insert(ctx, fields)
}
