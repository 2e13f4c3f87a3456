package comunicacaoservice

import (
	"context"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
)

// ComunicacaoRepository define o contrato que o Serviço de Comunicações espera da camada de Persistência.
type ComunicacaoRepository interface {
	ListFiltered(ctx context.Context, f domain.ComunicacaoFilter, page domain.PageRequest) ([]domain.Comunicacao, int, error)
	ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Comunicacao, error)
	GetByID(ctx context.Context, id string) (domain.Comunicacao, error)
	Create(ctx context.Context, in domain.ComunicacaoInput) (domain.Comunicacao, error)
	Patch(ctx context.Context, id string, p domain.ComunicacaoPatch) (domain.Comunicacao, error)
	Delete(ctx context.Context, id string) (domain.Comunicacao, error)
}

// Service implementa as regras de negócio de Comunicações.
type Service struct {
	repo      ComunicacaoRepository
	validator *validation.Validator
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Comunicações.
func NewService(repo ComunicacaoRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{repo: repo, validator: v, logger: log, now: func() time.Time { return time.Now().UTC() }}
}

// List devolve a página de comunicações, mais recentes primeiro.
func (s *Service) List(ctx context.Context, f domain.ComunicacaoFilter, page domain.PageRequest) (domain.Page[domain.Comunicacao], error) {
	rows, total, err := s.repo.ListFiltered(ctx, f, page)
	if err != nil {
		return domain.Page[domain.Comunicacao]{}, err
	}
	return domain.NewPage(rows, page, total), nil
}

// ListByPessoa devolve o histórico de comunicações da pessoa.
func (s *Service) ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Comunicacao, error) {
	return s.repo.ListByPessoa(ctx, pessoaID)
}

// Get busca uma comunicação pelo id.
func (s *Service) Get(ctx context.Context, id string) (domain.Comunicacao, error) {
	return s.repo.GetByID(ctx, id)
}

// Create valida e registra a comunicação. Status padrão "pending"; data padrão agora.
func (s *Service) Create(ctx context.Context, in domain.ComunicacaoInput) (domain.Comunicacao, error) {
	s.logger.Debug("Iniciando criação de comunicação no serviço.", map[string]interface{}{"pessoa_id": in.PessoaID, "tipo": in.Tipo})

	if err := s.validator.Struct(in); err != nil {
		s.logger.Warn("Falha na validação da comunicação.", map[string]interface{}{"error": err.Error()})
		return domain.Comunicacao{}, err
	}

	if in.Status == "" {
		in.Status = domain.ComunicacaoPending
	}
	if in.DataComunicacao == nil {
		now := s.now()
		in.DataComunicacao = &now
	}

	c, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Comunicacao{}, err
	}

	s.logger.Info("Comunicação registrada.", map[string]interface{}{"id": c.ID, "tipo": c.Tipo, "status": c.Status})
	return c, nil
}

// Update aplica a atualização parcial.
func (s *Service) Update(ctx context.Context, id string, p domain.ComunicacaoPatch) (domain.Comunicacao, error) {
	switch {
	case p.PessoaID.IsNull():
		return domain.Comunicacao{}, apperror.NewValidationError("pessoa_id não pode ser nulo")
	case p.Tipo.IsNull():
		return domain.Comunicacao{}, apperror.NewValidationError("tipo não pode ser nulo")
	case p.Status.IsNull():
		return domain.Comunicacao{}, apperror.NewValidationError("status não pode ser nulo")
	case p.DataComunicacao.IsNull():
		return domain.Comunicacao{}, apperror.NewValidationError("data_comunicacao não pode ser nulo")
	}
	if p.PessoaID.Present() {
		if err := s.validator.Var("pessoa_id", p.PessoaID.Value, "uuid"); err != nil {
			return domain.Comunicacao{}, err
		}
	}
	if p.Tipo.Present() {
		if err := s.validator.Var("tipo", p.Tipo.Value, "oneof=email sms whatsapp call"); err != nil {
			return domain.Comunicacao{}, err
		}
	}

	return s.repo.Patch(ctx, id, p)
}

// Delete remove a comunicação definitivamente e devolve o registro removido.
func (s *Service) Delete(ctx context.Context, id string) (domain.Comunicacao, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Comunicacao{}, err
	}
	s.logger.Info("Comunicação removida.", map[string]interface{}{"id": id})
	return c, nil
}
