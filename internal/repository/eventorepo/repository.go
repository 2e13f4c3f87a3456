package eventorepo

import (
	"context"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/repository/resource"
)

// Definition descreve a tabela eventos: exclusão lógica, ordenada pela data do evento.
var Definition = resource.Definition[domain.Evento]{
	Table: "eventos",
	Columns: []string{
		"id", "nome", "to_char(data, 'YYYY-MM-DD')", "to_char(horario, 'HH24:MI')",
		"local", "descricao", "ativo", "created_at", "updated_at",
	},
	OrderBy:      "data DESC",
	ActiveColumn: "ativo",
	NotFound:     "Evento não encontrado",
	Scan: func(s resource.Scanner) (domain.Evento, error) {
		var e domain.Evento
		err := s.Scan(&e.ID, &e.Nome, &e.Data, &e.Horario, &e.Local, &e.Descricao, &e.Ativo, &e.CreatedAt, &e.UpdatedAt)
		return e, err
	},
}

// EventoRepository acessa a tabela eventos.
type EventoRepository struct {
	*resource.Repository[domain.Evento]
}

// NewEventoRepository cria e retorna uma nova instância do Repositório de Eventos.
func NewEventoRepository(db database.Querier, dbTimeout time.Duration, log logger.Logger) *EventoRepository {
	return &EventoRepository{Repository: resource.New(Definition, db, dbTimeout, log)}
}

// ListActive devolve a página de eventos ativos.
func (r *EventoRepository) ListActive(ctx context.Context, page domain.PageRequest) ([]domain.Evento, int, error) {
	return r.List(ctx, resource.Filter{resource.IsTrue("ativo")}, page)
}

// Create insere o evento ativo.
func (r *EventoRepository) Create(ctx context.Context, in domain.EventoInput) (domain.Evento, error) {
	fields := resource.NewFields().
		Set("nome", in.Nome).
		Set("data", in.Data).
		Set("horario", in.Horario).
		Set("local", in.Local).
		Set("descricao", in.Descricao).
		Set("ativo", true)
	return r.Insert(ctx, fields)
}

// Patch aplica a atualização parcial.
func (r *EventoRepository) Patch(ctx context.Context, id string, p domain.EventoPatch) (domain.Evento, error) {
	fields := resource.NewFields()
	resource.SetOptional(fields, "nome", p.Nome)
	resource.SetOptional(fields, "data", p.Data)
	resource.SetOptional(fields, "horario", p.Horario)
	resource.SetOptional(fields, "local", p.Local)
	resource.SetOptional(fields, "descricao", p.Descricao)
	resource.SetOptional(fields, "ativo", p.Ativo)
	return r.Update(ctx, id, fields)
}
