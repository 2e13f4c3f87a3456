package domain

import (
	"time"

	"github.com/goccy/go-json"
)

// Tipos de relatório gerado.
const (
	RelatorioPessoas         = "pessoas"
	RelatorioComunicacoes    = "comunicacoes"
	RelatorioAcompanhamentos = "acompanhamentos"
)

// Projeções somente leitura (não persistem Relatorio).
const (
	ProjecaoMembros         = "membros"
	ProjecaoVisitantes      = "visitantes"
	ProjecaoObreiros        = "obreiros"
	ProjecaoComunicacoes    = "comunicacoes"
	ProjecaoAcompanhamentos = "acompanhamentos"
)

// Relatorio é o registro persistido de um relatório gerado.
type Relatorio struct {
	ID         string          `json:"id"`
	Titulo     string          `json:"titulo" example:"Relatório de Pessoas"`
	Descricao  *string         `json:"descricao"`
	Tipo       string          `json:"tipo" example:"pessoas"`
	Parametros json.RawMessage `json:"parametros" swaggertype:"object"`
	UsuarioID  *string         `json:"usuario_id"`
	GeradoEm   time.Time       `json:"gerado_em"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// RelatorioInput é o payload de criação manual.
type RelatorioInput struct {
	Titulo     string          `json:"titulo" validate:"required"`
	Descricao  *string         `json:"descricao"`
	Tipo       string          `json:"tipo" validate:"required"`
	Parametros json.RawMessage `json:"parametros" swaggertype:"object"`
	UsuarioID  *string         `json:"-"`
}

// FiltroRelatorio cobre os filtros aceitos pelos três geradores.
type FiltroRelatorio struct {
	Tags       []string `json:"tags,omitempty"`
	Status     string   `json:"status,omitempty"`
	Tipo       string   `json:"tipo,omitempty"`
	Prioridade string   `json:"prioridade,omitempty"`
}

// GerarRelatorioRequest é o corpo de POST /relatorios/generate/{tipo}.
type GerarRelatorioRequest struct {
	Titulo    string          `json:"titulo"`
	Descricao *string         `json:"descricao"`
	Filtro    FiltroRelatorio `json:"filtro"`
}

// RelatorioGerado é a resposta de um gerador: id do registro persistido mais os dados.
type RelatorioGerado struct {
	ID    string      `json:"id"`
	Tipo  string      `json:"tipo"`
	Total int         `json:"total"`
	Data  interface{} `json:"data"`
}

// Projecao é a resposta das consultas somente leitura.
type Projecao struct {
	Tipo  string      `json:"tipo"`
	Total int         `json:"total"`
	Data  interface{} `json:"data"`
}
