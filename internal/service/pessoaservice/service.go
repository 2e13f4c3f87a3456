package pessoaservice

import (
	"context"
	"strings"
	"time"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
)

// PessoaRepository define o contrato que o Serviço de Pessoas espera da camada de Persistência.
type PessoaRepository interface {
	ListActive(ctx context.Context, tag string, page domain.PageRequest) ([]domain.Pessoa, int, error)
	ListByTag(ctx context.Context, tag string) ([]domain.Pessoa, error)
	TagStats(ctx context.Context, tags []string, monthStart time.Time) ([]domain.TagStat, error)
	GetByID(ctx context.Context, id string) (domain.Pessoa, error)
	Create(ctx context.Context, in domain.PessoaInput) (domain.Pessoa, error)
	Patch(ctx context.Context, id string, p domain.PessoaPatch) (domain.Pessoa, error)
	Delete(ctx context.Context, id string) (domain.Pessoa, error)
}

// Service implementa as regras de negócio de Pessoas.
type Service struct {
	repo      PessoaRepository
	validator *validation.Validator
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Pessoas.
func NewService(repo PessoaRepository, v *validation.Validator, log logger.Logger) *Service {
	return &Service{repo: repo, validator: v, logger: log, now: time.Now}
}

// List devolve a página de pessoas ativas, opcionalmente filtrada por tag.
func (s *Service) List(ctx context.Context, tag string, page domain.PageRequest) (domain.Page[domain.Pessoa], error) {
	s.logger.Debug("Iniciando listagem de pessoas no serviço.", map[string]interface{}{"tag": tag, "page": page.Page})

	rows, total, err := s.repo.ListActive(ctx, strings.TrimSpace(tag), page)
	if err != nil {
		return domain.Page[domain.Pessoa]{}, err
	}
	return domain.NewPage(rows, page, total), nil
}

// ListByTag devolve todas as pessoas ativas com a tag.
func (s *Service) ListByTag(ctx context.Context, tag string) ([]domain.Pessoa, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, apperror.NewValidationError("tag é obrigatória")
	}
	return s.repo.ListByTag(ctx, tag)
}

// TagStats calcula, por categoria, o total de ativos e os cadastrados no mês corrente.
func (s *Service) TagStats(ctx context.Context) ([]domain.TagStat, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return s.repo.TagStats(ctx, domain.CategoryTags, monthStart)
}

// Get busca uma pessoa pelo id, ativa ou não.
func (s *Service) Get(ctx context.Context, id string) (domain.Pessoa, error) {
	return s.repo.GetByID(ctx, id)
}

// Create valida e cadastra uma nova pessoa.
func (s *Service) Create(ctx context.Context, in domain.PessoaInput) (domain.Pessoa, error) {
	s.logger.Debug("Iniciando criação de pessoa no serviço.", map[string]interface{}{"nome": in.Nome})

	// 1. Normalização: campos opcionais vazios não são gravados
	in.Nome = strings.TrimSpace(in.Nome)
	in.Email = domain.BlankToNil(in.Email)
	in.DataNascimento = domain.BlankToNil(in.DataNascimento)

	// 2. Validação
	if err := s.validator.Struct(in); err != nil {
		s.logger.Warn("Falha na validação da pessoa.", map[string]interface{}{"error": err.Error()})
		return domain.Pessoa{}, err
	}

	// 3. Persistência
	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return domain.Pessoa{}, err
	}

	s.logger.Info("Pessoa criada com sucesso.", map[string]interface{}{"id": p.ID})
	return p, nil
}

// Update aplica a atualização parcial: somente as chaves enviadas mudam.
func (s *Service) Update(ctx context.Context, id string, p domain.PessoaPatch) (domain.Pessoa, error) {
	s.logger.Debug("Iniciando atualização de pessoa no serviço.", map[string]interface{}{"id": id})

	if p.Nome.IsNull() {
		return domain.Pessoa{}, apperror.NewValidationError("nome não pode ser nulo")
	}
	if p.Email.Present() && p.Email.Value != "" {
		if err := s.validator.Var("email", p.Email.Value, "email"); err != nil {
			return domain.Pessoa{}, err
		}
	}
	if p.DataNascimento.Present() && p.DataNascimento.Value != "" {
		if err := s.validator.Var("data_nascimento", p.DataNascimento.Value, "datetime=2006-01-02"); err != nil {
			return domain.Pessoa{}, err
		}
	}
	if p.Ativo.IsNull() {
		return domain.Pessoa{}, apperror.NewValidationError("ativo não pode ser nulo")
	}

	updated, err := s.repo.Patch(ctx, id, p)
	if err != nil {
		return domain.Pessoa{}, err
	}

	s.logger.Info("Pessoa atualizada com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// Delete desativa a pessoa (exclusão lógica) e devolve o registro atualizado.
func (s *Service) Delete(ctx context.Context, id string) (domain.Pessoa, error) {
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Pessoa{}, err
	}
	s.logger.Info("Pessoa desativada.", map[string]interface{}{"id": id})
	return p, nil
}
