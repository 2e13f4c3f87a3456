package acompanhamentoservice

import (
	"context"
	"strings"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
)

// AcompanhamentoRepository define o contrato que o Serviço de Acompanhamentos espera da camada de Persistência.
type AcompanhamentoRepository interface {
	ListFiltered(ctx context.Context, f domain.AcompanhamentoFilter, page domain.PageRequest) ([]domain.Acompanhamento, int, error)
	ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Acompanhamento, error)
	GetByID(ctx context.Context, id string) (domain.Acompanhamento, error)
	Create(ctx context.Context, in domain.AcompanhamentoInput) (domain.Acompanhamento, error)
	Patch(ctx context.Context, id string, p domain.AcompanhamentoPatch) (domain.Acompanhamento, error)
	Delete(ctx context.Context, id string) (domain.Acompanhamento, error)
}

// Service implementa as regras do quadro de acompanhamentos.
type Service struct {
	repo      AcompanhamentoRepository
	validator *validation.Validator
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Acompanhamentos.
func NewService(repo AcompanhamentoRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{repo: repo, validator: v, logger: log, now: func() time.Time { return time.Now().UTC() }}
}

// List devolve a página de acompanhamentos.
func (s *Service) List(ctx context.Context, f domain.AcompanhamentoFilter, page domain.PageRequest) (domain.Page[domain.Acompanhamento], error) {
	if f.PessoaID != "" {
		if err := s.validator.Var("pessoa_id", f.PessoaID, "uuid"); err != nil {
			return domain.Page[domain.Acompanhamento]{}, err
		}
	}

	rows, total, err := s.repo.ListFiltered(ctx, f, page)
	if err != nil {
		return domain.Page[domain.Acompanhamento]{}, err
	}
	return domain.NewPage(rows, page, total), nil
}

// ListByPessoa devolve os acompanhamentos de uma pessoa.
func (s *Service) ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Acompanhamento, error) {
	return s.repo.ListByPessoa(ctx, pessoaID)
}

// Get busca um acompanhamento pelo id.
func (s *Service) Get(ctx context.Context, id string) (domain.Acompanhamento, error) {
	return s.repo.GetByID(ctx, id)
}

// Create valida e cria o acompanhamento com status "pending" e prioridade "medium" por padrão.
func (s *Service) Create(ctx context.Context, in domain.AcompanhamentoInput) (domain.Acompanhamento, error) {
	s.logger.Debug("Iniciando criação de acompanhamento no serviço.", map[string]interface{}{"titulo": in.Titulo})

	// 1. Normalização
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.PessoaID = domain.BlankToNil(in.PessoaID)
	in.DataInicio = domain.BlankToNil(in.DataInicio)
	in.DataPrevista = domain.BlankToNil(in.DataPrevista)
	in.DataFim = domain.BlankToNil(in.DataFim)

	// 2. Validação
	if err := s.validator.Struct(in); err != nil {
		s.logger.Warn("Falha na validação do acompanhamento.", map[string]interface{}{"error": err.Error()})
		return domain.Acompanhamento{}, err
	}

	// 3. Padrões
	if in.Status == "" {
		in.Status = domain.AcompanhamentoPending
	}
	if in.Prioridade == "" {
		in.Prioridade = domain.PrioridadeMedium
	}
	in.ConcluidoEm = nil
	if in.Status == domain.AcompanhamentoDone {
		now := s.now()
		in.ConcluidoEm = &now
	}

	a, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Acompanhamento{}, err
	}

	s.logger.Info("Acompanhamento criado.", map[string]interface{}{"id": a.ID, "status": a.Status})
	return a, nil
}

// Update aplica a atualização parcial (edição completa do cartão).
func (s *Service) Update(ctx context.Context, id string, p domain.AcompanhamentoPatch) (domain.Acompanhamento, error) {
	s.logger.Debug("Iniciando atualização de acompanhamento no serviço.", map[string]interface{}{"id": id})

	if p.PessoaID.Present() && strings.TrimSpace(p.PessoaID.Value) == "" {
		p.PessoaID = domain.Null[string]()
	}
	if err := s.validatePatch(p); err != nil {
		s.logger.Warn("Falha na validação do acompanhamento.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Acompanhamento{}, err
	}

	// concluido_em acompanha as transições de/para done
	p.ConcluidoEm = domain.Optional[time.Time]{}
	if p.Status.Present() {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return domain.Acompanhamento{}, err
		}
		switch {
		case p.Status.Value == domain.AcompanhamentoDone && current.Status != domain.AcompanhamentoDone:
			p.ConcluidoEm = domain.Some(s.now())
		case p.Status.Value != domain.AcompanhamentoDone && current.Status == domain.AcompanhamentoDone:
			p.ConcluidoEm = domain.Null[time.Time]()
		}
	}

	a, err := s.repo.Patch(ctx, id, p)
	if err != nil {
		return domain.Acompanhamento{}, err
	}

	s.logger.Info("Acompanhamento atualizado.", map[string]interface{}{"id": id, "status": a.Status})
	return a, nil
}

// UpdateStatus move o cartão entre colunas do kanban.
func (s *Service) UpdateStatus(ctx context.Context, id string, req domain.StatusUpdate) (domain.Acompanhamento, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Acompanhamento{}, err
	}
	return s.Update(ctx, id, domain.AcompanhamentoPatch{Status: domain.Some(req.Status)})
}

// Delete remove o acompanhamento definitivamente.
func (s *Service) Delete(ctx context.Context, id string) (domain.Acompanhamento, error) {
	a, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Acompanhamento{}, err
	}
	s.logger.Info("Acompanhamento removido.", map[string]interface{}{"id": id})
	return a, nil
}

func (s *Service) validatePatch(p domain.AcompanhamentoPatch) error {
	switch {
	case p.Titulo.IsNull():
		return apperror.NewValidationError("titulo não pode ser nulo")
	case p.Status.IsNull():
		return apperror.NewValidationError("status não pode ser nulo")
	case p.Prioridade.IsNull():
		return apperror.NewValidationError("prioridade não pode ser nulo")
	}

	if p.Titulo.Present() && strings.TrimSpace(p.Titulo.Value) == "" {
		return apperror.NewValidationError("titulo é obrigatório")
	}
	if p.Status.Present() {
		if err := s.validator.Var("status", p.Status.Value, "oneof=pending in-progress done"); err != nil {
			return err
		}
	}
	if p.Prioridade.Present() {
		if err := s.validator.Var("prioridade", p.Prioridade.Value, "oneof=low medium high"); err != nil {
			return err
		}
	}
	if p.PessoaID.Present() && p.PessoaID.Value != "" {
		if err := s.validator.Var("pessoa_id", p.PessoaID.Value, "uuid"); err != nil {
			return err
		}
	}
	for field, date := range map[string]domain.Optional[string]{
		"data_inicio":   p.DataInicio,
		"data_prevista": p.DataPrevista,
		"data_fim":      p.DataFim,
	} {
		if date.Present() && date.Value != "" {
			if err := s.validator.Var(field, date.Value, "datetime=2006-01-02"); err != nil {
				return err
			}
		}
	}
	return nil
}
