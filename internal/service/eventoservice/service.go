package eventoservice

import (
	"context"
	"strings"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
)

// MsgEventoNaoEncontrado é devolvido quando o evento não existe ou está inativo.
const MsgEventoNaoEncontrado = "Evento não encontrado"

// EventoRepository define o contrato de persistência de eventos.
type EventoRepository interface {
	ListActive(ctx context.Context, page domain.PageRequest) ([]domain.Evento, int, error)
	GetByID(ctx context.Context, id string) (domain.Evento, error)
	Create(ctx context.Context, in domain.EventoInput) (domain.Evento, error)
	Patch(ctx context.Context, id string, p domain.EventoPatch) (domain.Evento, error)
	Delete(ctx context.Context, id string) (domain.Evento, error)
}

// InscricaoRepository define o contrato de persistência das inscrições.
type InscricaoRepository interface {
	ListActiveByEvento(ctx context.Context, eventoID string) ([]domain.Inscricao, error)
	GetByID(ctx context.Context, id string) (domain.Inscricao, error)
	Create(ctx context.Context, in domain.InscricaoInput) (domain.Inscricao, error)
	Patch(ctx context.Context, id string, p domain.InscricaoPatch) (domain.Inscricao, error)
	Delete(ctx context.Context, id string) (domain.Inscricao, error)
}

// Service implementa as regras de eventos e inscrições.
type Service struct {
	eventos    EventoRepository
	inscricoes InscricaoRepository
	validator  *validation.Validator
	logger     logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Eventos.
func NewService(eventos EventoRepository, inscricoes InscricaoRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{eventos: eventos, inscricoes: inscricoes, validator: v, logger: log}
}

// List devolve a página de eventos ativos, mais recentes primeiro.
func (s *Service) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Evento], error) {
	rows, total, err := s.eventos.ListActive(ctx, page)
	if err != nil {
		return domain.Page[domain.Evento]{}, err
	}
	return domain.NewPage(rows, page, total), nil
}

// Get busca um evento pelo id.
func (s *Service) Get(ctx context.Context, id string) (domain.Evento, error) {
	return s.eventos.GetByID(ctx, id)
}

// Create valida e cria o evento.
func (s *Service) Create(ctx context.Context, in domain.EventoInput) (domain.Evento, error) {
	s.logger.Debug("Iniciando criação de evento no serviço.", map[string]interface{}{"nome": in.Nome, "data": in.Data})

	in.Nome = strings.TrimSpace(in.Nome)
	if err := s.validator.Struct(in); err != nil {
		s.logger.Warn("Falha na validação do evento.", map[string]interface{}{"error": err.Error()})
		return domain.Evento{}, err
	}

	ev, err := s.eventos.Create(ctx, in)
	if err != nil {
		return domain.Evento{}, err
	}

	s.logger.Info("Evento criado.", map[string]interface{}{"id": ev.ID})
	return ev, nil
}

// Update aplica a atualização parcial do evento.
func (s *Service) Update(ctx context.Context, id string, p domain.EventoPatch) (domain.Evento, error) {
	switch {
	case p.Nome.IsNull():
		return domain.Evento{}, apperror.NewValidationError("nome não pode ser nulo")
	case p.Data.IsNull():
		return domain.Evento{}, apperror.NewValidationError("data não pode ser nulo")
	case p.Horario.IsNull():
		return domain.Evento{}, apperror.NewValidationError("horario não pode ser nulo")
	case p.Ativo.IsNull():
		return domain.Evento{}, apperror.NewValidationError("ativo não pode ser nulo")
	}
	if p.Data.Present() {
		if err := s.validator.Var("data", p.Data.Value, "datetime=2006-01-02"); err != nil {
			return domain.Evento{}, err
		}
	}
	if p.Horario.Present() {
		if err := s.validator.Var("horario", p.Horario.Value, "datetime=15:04"); err != nil {
			return domain.Evento{}, err
		}
	}

	return s.eventos.Patch(ctx, id, p)
}

// Delete desativa o evento (exclusão lógica).
func (s *Service) Delete(ctx context.Context, id string) (domain.Evento, error) {
	ev, err := s.eventos.Delete(ctx, id)
	if err != nil {
		return domain.Evento{}, err
	}
	s.logger.Info("Evento desativado.", map[string]interface{}{"id": id})
	return ev, nil
}

// Inscricoes monta o agregado do evento: inscrições ativas e totais por tipo.
func (s *Service) Inscricoes(ctx context.Context, eventoID string) (domain.EventoInscricoes, error) {
	ev, err := s.eventos.GetByID(ctx, eventoID)
	if err != nil {
		return domain.EventoInscricoes{}, err
	}

	list, err := s.inscricoes.ListActiveByEvento(ctx, eventoID)
	if err != nil {
		return domain.EventoInscricoes{}, err
	}

	return domain.NewEventoInscricoes(ev, list), nil
}

// ListInscricoes devolve as inscrições ativas do evento.
func (s *Service) ListInscricoes(ctx context.Context, eventoID string) ([]domain.Inscricao, error) {
	return s.inscricoes.ListActiveByEvento(ctx, eventoID)
}

// CreateInscricao inscreve alguém num evento ativo. O tipo é validado antes de qualquer acesso ao banco.
func (s *Service) CreateInscricao(ctx context.Context, eventoID string, in domain.InscricaoInput) (domain.Inscricao, error) {
	s.logger.Debug("Iniciando inscrição em evento no serviço.", map[string]interface{}{"evento_id": eventoID, "tipo": in.Tipo})

	// 1. Validação do payload
	if err := s.validator.Struct(in); err != nil {
		s.logger.Warn("Falha na validação da inscrição.", map[string]interface{}{"evento_id": eventoID, "error": err.Error()})
		return domain.Inscricao{}, err
	}

	// 2. O evento precisa existir e estar ativo
	ev, err := s.eventos.GetByID(ctx, eventoID)
	if err != nil {
		return domain.Inscricao{}, err
	}
	if !ev.Ativo {
		return domain.Inscricao{}, apperror.NewNotFoundError(MsgEventoNaoEncontrado)
	}

	// 3. Persistência
	in.EventoID = ev.ID
	i, err := s.inscricoes.Create(ctx, in)
	if err != nil {
		return domain.Inscricao{}, err
	}

	s.logger.Info("Inscrição registrada.", map[string]interface{}{"id": i.ID, "evento_id": ev.ID, "tipo": i.Tipo})
	return i, nil
}

// GetInscricao busca uma inscrição pelo id.
func (s *Service) GetInscricao(ctx context.Context, id string) (domain.Inscricao, error) {
	return s.inscricoes.GetByID(ctx, id)
}

// UpdateInscricao aplica a atualização parcial, revalidando o tipo.
func (s *Service) UpdateInscricao(ctx context.Context, id string, p domain.InscricaoPatch) (domain.Inscricao, error) {
	switch {
	case p.Nome.IsNull(), p.Telefone.IsNull(), p.Endereco.IsNull():
		return domain.Inscricao{}, apperror.NewValidationError("nome, telefone e endereco não podem ser nulos")
	case p.Ativo.IsNull():
		return domain.Inscricao{}, apperror.NewValidationError("ativo não pode ser nulo")
	}
	if p.Tipo.Set && (p.Tipo.Null || !domain.IsTipoInscricao(p.Tipo.Value)) {
		return domain.Inscricao{}, apperror.NewValidationError("tipo deve ser um de: member visitor")
	}

	return s.inscricoes.Patch(ctx, id, p)
}

// DeleteInscricao desativa a inscrição (exclusão lógica).
func (s *Service) DeleteInscricao(ctx context.Context, id string) (domain.Inscricao, error) {
	i, err := s.inscricoes.Delete(ctx, id)
	if err != nil {
		return domain.Inscricao{}, err
	}
	s.logger.Info("Inscrição desativada.", map[string]interface{}{"id": id})
	return i, nil
}
