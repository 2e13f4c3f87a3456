package relatorioservice

import (
	"context"
	"strings"

	"github.com/goccy/go-json"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/export"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// DescricaoAutomatica acompanha os relatórios gerados sem descrição.
const DescricaoAutomatica = "Relatório gerado automaticamente"

var titulosPadrao = map[string]string{
	domain.RelatorioPessoas:         "Relatório de Pessoas",
	domain.RelatorioComunicacoes:    "Relatório de Comunicações",
	domain.RelatorioAcompanhamentos: "Relatório de Acompanhamentos",
}

// RelatorioRepository é a persistência dos registros de relatório.
type RelatorioRepository interface {
	ListPage(ctx context.Context, page domain.PageRequest) ([]domain.Relatorio, int, error)
	GetByID(ctx context.Context, id string) (domain.Relatorio, error)
	Create(ctx context.Context, in domain.RelatorioInput) (domain.Relatorio, error)
	Delete(ctx context.Context, id string) (domain.Relatorio, error)
}

// PessoaReader lê as pessoas usadas nos relatórios.
type PessoaReader interface {
	ListByTag(ctx context.Context, tag string) ([]domain.Pessoa, error)
	ListFiltered(ctx context.Context, tags []string) ([]domain.Pessoa, error)
}

// ComunicacaoReader lê as comunicações usadas nos relatórios.
type ComunicacaoReader interface {
	ListMatching(ctx context.Context, f domain.ComunicacaoFilter) ([]domain.Comunicacao, error)
}

// AcompanhamentoReader lê os acompanhamentos usados nos relatórios.
type AcompanhamentoReader interface {
	ListMatching(ctx context.Context, f domain.AcompanhamentoFilter) ([]domain.Acompanhamento, error)
}

// Repositories agrupa os repositórios ligados a um mesmo Querier.
type Repositories struct {
	Pessoas         PessoaReader
	Comunicacoes    ComunicacaoReader
	Acompanhamentos AcompanhamentoReader
	Relatorios      RelatorioRepository
}

// Transactor executa fn com os repositórios ligados a uma única transação.
type Transactor interface {
	InTx(ctx context.Context, fn func(repos Repositories) error) error
}

// Service implementa relatórios: registros, geradores transacionais, projeções e exportação.
type Service struct {
	repos  Repositories
	tx     Transactor
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Relatórios.
func NewService(repos Repositories, tx Transactor, log logger.Logger) *Service {
	return &Service{repos: repos, tx: tx, logger: log}
}

// List devolve a página de relatórios, mais recentes primeiro.
func (s *Service) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Relatorio], error) {
	rows, total, err := s.repos.Relatorios.ListPage(ctx, page)
	if err != nil {
		return domain.Page[domain.Relatorio]{}, err
	}
	return domain.NewPage(rows, page, total), nil
}

// Get busca um relatório pelo id.
func (s *Service) Get(ctx context.Context, id string) (domain.Relatorio, error) {
	return s.repos.Relatorios.GetByID(ctx, id)
}

// Create registra um relatório manualmente. Título e tipo são obrigatórios.
func (s *Service) Create(ctx context.Context, in domain.RelatorioInput) (domain.Relatorio, error) {
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.Tipo = strings.TrimSpace(in.Tipo)
	if in.Titulo == "" || in.Tipo == "" {
		return domain.Relatorio{}, apperror.NewValidationError("Título e tipo são obrigatórios")
	}
	if len(in.Parametros) > 0 && !json.Valid(in.Parametros) {
		return domain.Relatorio{}, apperror.NewValidationError("parametros deve ser um JSON válido")
	}

	rel, err := s.repos.Relatorios.Create(ctx, in)
	if err != nil {
		return domain.Relatorio{}, err
	}

	s.logger.Info("Relatório registrado.", map[string]interface{}{"id": rel.ID, "tipo": rel.Tipo})
	return rel, nil
}

// Delete remove o relatório (exclusão física).
func (s *Service) Delete(ctx context.Context, id string) (domain.Relatorio, error) {
	rel, err := s.repos.Relatorios.Delete(ctx, id)
	if err != nil {
		return domain.Relatorio{}, err
	}
	s.logger.Info("Relatório removido.", map[string]interface{}{"id": id})
	return rel, nil
}

// Generate consulta os dados do tipo pedido e persiste o registro do relatório na mesma transação.
// usuarioID é o dono do relatório quando a requisição estiver autenticada.
func (s *Service) Generate(ctx context.Context, tipo string, req domain.GerarRelatorioRequest, usuarioID *string) (domain.RelatorioGerado, error) {
	s.logger.Debug("Iniciando geração de relatório.", map[string]interface{}{"tipo": tipo})

	// 1. Tipo e parâmetros
	titulo, ok := titulosPadrao[tipo]
	if !ok {
		return domain.RelatorioGerado{}, apperror.NewValidationError("Tipo de relatório inválido: " + tipo)
	}
	if t := strings.TrimSpace(req.Titulo); t != "" {
		titulo = t
	}
	descricao := req.Descricao
	if descricao == nil || strings.TrimSpace(*descricao) == "" {
		d := DescricaoAutomatica
		descricao = &d
	}
	params, err := json.Marshal(req.Filtro)
	if err != nil {
		return domain.RelatorioGerado{}, apperror.NewInternalError("Falha ao serializar filtro do relatório.", err)
	}

	// 2. Consulta e registro em uma única transação
	var out domain.RelatorioGerado
	err = s.tx.InTx(ctx, func(repos Repositories) error {
		data, total, err := fetch(ctx, repos, tipo, req.Filtro)
		if err != nil {
			return err
		}

		rel, err := repos.Relatorios.Create(ctx, domain.RelatorioInput{
			Titulo:     titulo,
			Descricao:  descricao,
			Tipo:       tipo,
			Parametros: params,
			UsuarioID:  usuarioID,
		})
		if err != nil {
			return err
		}

		out = domain.RelatorioGerado{ID: rel.ID, Tipo: tipo, Total: total, Data: data}
		return nil
	})
	if err != nil {
		s.logger.Warn("Falha ao gerar relatório.", map[string]interface{}{"tipo": tipo, "error": err.Error()})
		return domain.RelatorioGerado{}, err
	}

	s.logger.Info("Relatório gerado.", map[string]interface{}{"id": out.ID, "tipo": tipo, "total": out.Total})
	return out, nil
}

func fetch(ctx context.Context, repos Repositories, tipo string, f domain.FiltroRelatorio) (interface{}, int, error) {
	switch tipo {
	case domain.RelatorioPessoas:
		rows, err := repos.Pessoas.ListFiltered(ctx, f.Tags)
		return nonNil(rows), len(rows), err
	case domain.RelatorioComunicacoes:
		rows, err := repos.Comunicacoes.ListMatching(ctx, domain.ComunicacaoFilter{Status: f.Status, Tipo: f.Tipo})
		return nonNil(rows), len(rows), err
	default:
		rows, err := repos.Acompanhamentos.ListMatching(ctx, domain.AcompanhamentoFilter{Status: f.Status, Prioridade: f.Prioridade})
		return nonNil(rows), len(rows), err
	}
}

// Projection devolve uma consulta somente leitura, sem registrar relatório.
func (s *Service) Projection(ctx context.Context, tipo string) (domain.Projecao, error) {
	_, total, data, err := s.project(ctx, tipo)
	if err != nil {
		return domain.Projecao{}, err
	}
	return domain.Projecao{Tipo: tipo, Total: total, Data: data}, nil
}

// Export gera a planilha .xlsx da projeção. Devolve o conteúdo e o nome sugerido do arquivo.
func (s *Service) Export(ctx context.Context, tipo string) ([]byte, string, error) {
	sheet, total, _, err := s.project(ctx, tipo)
	if err != nil {
		return nil, "", err
	}

	raw, err := export.Build(sheet)
	if err != nil {
		return nil, "", apperror.NewInternalError("Falha ao gerar planilha.", err)
	}

	s.logger.Info("Planilha exportada.", map[string]interface{}{"tipo": tipo, "linhas": total})
	return raw, "relatorio-" + tipo + ".xlsx", nil
}

// project monta a projeção em dois formatos: a planilha e os dados JSON.
func (s *Service) project(ctx context.Context, tipo string) (export.Sheet, int, interface{}, error) {
	switch tipo {
	case domain.ProjecaoMembros, domain.ProjecaoVisitantes, domain.ProjecaoObreiros:
		rows, err := s.repos.Pessoas.ListByTag(ctx, tagDaProjecao[tipo])
		if err != nil {
			return export.Sheet{}, 0, nil, err
		}
		return pessoasSheet(tagDaProjecao[tipo], rows), len(rows), nonNil(rows), nil

	case domain.ProjecaoComunicacoes:
		rows, err := s.repos.Comunicacoes.ListMatching(ctx, domain.ComunicacaoFilter{})
		if err != nil {
			return export.Sheet{}, 0, nil, err
		}
		return comunicacoesSheet(rows), len(rows), nonNil(rows), nil

	case domain.ProjecaoAcompanhamentos:
		rows, err := s.repos.Acompanhamentos.ListMatching(ctx, domain.AcompanhamentoFilter{})
		if err != nil {
			return export.Sheet{}, 0, nil, err
		}
		return acompanhamentosSheet(rows), len(rows), nonNil(rows), nil
	}

	return export.Sheet{}, 0, nil, apperror.NewNotFoundError("Relatório não encontrado: " + tipo)
}

var tagDaProjecao = map[string]string{
	domain.ProjecaoMembros:    domain.TagMembros,
	domain.ProjecaoVisitantes: domain.TagVisitantes,
	domain.ProjecaoObreiros:   domain.TagObreiros,
}

func pessoasSheet(nome string, rows []domain.Pessoa) export.Sheet {
	sheet := export.Sheet{
		Name: nome,
		Columns: []export.Column{
			{Header: "Nome", Width: 30}, {Header: "Email", Width: 28}, {Header: "Telefone", Width: 18},
			{Header: "Cidade", Width: 18}, {Header: "Estado", Width: 8}, {Header: "Tags", Width: 30},
			{Header: "Cadastro", Width: 18},
		},
	}
	for _, p := range rows {
		sheet.Rows = append(sheet.Rows, []interface{}{
			p.Nome, p.Email, p.Telefone, p.Cidade, p.Estado, strings.Join(p.Tags, ", "), p.CreatedAt,
		})
	}
	return sheet
}

func comunicacoesSheet(rows []domain.Comunicacao) export.Sheet {
	sheet := export.Sheet{
		Name: "Comunicações",
		Columns: []export.Column{
			{Header: "Pessoa", Width: 38}, {Header: "Tipo", Width: 12}, {Header: "Assunto", Width: 30},
			{Header: "Status", Width: 12}, {Header: "Data", Width: 18}, {Header: "Próxima ação", Width: 30},
		},
	}
	for _, c := range rows {
		sheet.Rows = append(sheet.Rows, []interface{}{
			c.PessoaID, c.Tipo, c.Assunto, c.Status, c.DataComunicacao, c.ProximaAcao,
		})
	}
	return sheet
}

func acompanhamentosSheet(rows []domain.Acompanhamento) export.Sheet {
	sheet := export.Sheet{
		Name: "Acompanhamentos",
		Columns: []export.Column{
			{Header: "Título", Width: 30}, {Header: "Status", Width: 14}, {Header: "Prioridade", Width: 12},
			{Header: "Responsável", Width: 20}, {Header: "Data prevista", Width: 14}, {Header: "Concluído em", Width: 18},
		},
	}
	for _, a := range rows {
		sheet.Rows = append(sheet.Rows, []interface{}{
			a.Titulo, a.Status, a.Prioridade, a.Responsavel, a.DataPrevista, a.ConcluidoEm,
		})
	}
	return sheet
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
