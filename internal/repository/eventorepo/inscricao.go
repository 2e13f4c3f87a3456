package eventorepo

import (
	"context"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

// InscricaoDefinition descreve a tabela inscricoes_eventos: exclusão lógica.
var InscricaoDefinition = resource.Definition[domain.Inscricao]{
	Table: "inscricoes_eventos",
	Columns: []string{
		"id", "evento_id", "nome", "telefone", "endereco", "tipo", "data_inscricao", "ativo", "created_at", "updated_at",
	},
	OrderBy:      "data_inscricao DESC",
	ActiveColumn: "ativo",
	NotFound:     "Inscrição não encontrada",
	Scan: func(s resource.Scanner) (domain.Inscricao, error) {
		var i domain.Inscricao
		err := s.Scan(&i.ID, &i.EventoID, &i.Nome, &i.Telefone, &i.Endereco, &i.Tipo, &i.DataInscricao, &i.Ativo, &i.CreatedAt, &i.UpdatedAt)
		return i, err
	},
}

// InscricaoRepository acessa a tabela inscricoes_eventos.
type InscricaoRepository struct {
	*resource.Repository[domain.Inscricao]
}

// NewInscricaoRepository cria e retorna uma nova instância do Repositório de Inscrições.
func NewInscricaoRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *InscricaoRepository {
	return &InscricaoRepository{Repository: resource.New(InscricaoDefinition, db, dbTimeout, log)}
}

// ListActiveByEvento lista as inscrições ativas do evento.
func (r *InscricaoRepository) ListActiveByEvento(ctx context.Context, eventoID string) ([]domain.Inscricao, error) {
	return r.ListByParent(ctx, "evento_id", eventoID, resource.IsTrue("ativo"))
}

// Create insere a inscrição ativa. data_inscricao fica com o padrão da coluna (now()).
func (r *InscricaoRepository) Create(ctx context.Context, in domain.InscricaoInput) (domain.Inscricao, error) {
	fields := resource.NewFields().
		Set("evento_id", in.EventoID).
		Set("nome", in.Nome).
		Set("telefone", in.Telefone).
		Set("endereco", in.Endereco).
		Set("tipo", in.Tipo).
		Set("ativo", true)
	return r.Insert(ctx, fields)
}

// Patch aplica a atualização parcial.
func (r *InscricaoRepository) Patch(ctx context.Context, id string, p domain.InscricaoPatch) (domain.Inscricao, error) {
	fields := resource.NewFields()
	resource.SetOptional(fields, "nome", p.Nome)
	resource.SetOptional(fields, "telefone", p.Telefone)
	resource.SetOptional(fields, "endereco", p.Endereco)
	resource.SetOptional(fields, "tipo", p.Tipo)
	resource.SetOptional(fields, "ativo", p.Ativo)
	return r.Update(ctx, id, fields)
}
