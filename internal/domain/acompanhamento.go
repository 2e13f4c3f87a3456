package domain

import "time"

// Colunas do quadro kanban.
const (
	AcompanhamentoPending    = "pending"
	AcompanhamentoInProgress = "in-progress"
	AcompanhamentoDone       = "done"
)

// Prioridades.
const (
	PrioridadeLow    = "low"
	PrioridadeMedium = "medium"
	PrioridadeHigh   = "high"
)

// Acompanhamento é uma tarefa (cartão do kanban) ligada, em geral, a uma pessoa.
type Acompanhamento struct {
	ID           string     `json:"id"`
	PessoaID     *string    `json:"pessoa_id"`
	Titulo       string     `json:"titulo" example:"Visitar família Silva"`
	Descricao    *string    `json:"descricao"`
	Categoria    *string    `json:"categoria" example:"visita"`
	Status       string     `json:"status" example:"pending"`
	Prioridade   string     `json:"prioridade" example:"medium"`
	DataInicio   *string    `json:"data_inicio" example:"2026-10-01"`
	DataPrevista *string    `json:"data_prevista"`
	DataFim      *string    `json:"data_fim"`
	Responsavel  *string    `json:"responsavel"`
	Resultado    *string    `json:"resultado"`
	ConcluidoEm  *time.Time `json:"concluido_em"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AcompanhamentoInput é o payload de criação.
type AcompanhamentoInput struct {
	PessoaID     *string `json:"pessoa_id" validate:"omitempty,uuid"`
	Titulo       string  `json:"titulo" validate:"required,max=255"`
	Descricao    *string `json:"descricao"`
	Categoria    *string `json:"categoria"`
	Status       string  `json:"status" validate:"omitempty,oneof=pending in-progress done"`
	Prioridade   string  `json:"prioridade" validate:"omitempty,oneof=low medium high"`
	DataInicio   *string `json:"data_inicio" validate:"omitempty,datetime=2006-01-02"`
	DataPrevista *string `json:"data_prevista" validate:"omitempty,datetime=2006-01-02"`
	DataFim      *string `json:"data_fim" validate:"omitempty,datetime=2006-01-02"`
	Responsavel  *string `json:"responsavel"`
	Resultado    *string `json:"resultado"`

	// Preenchido pelo serviço conforme o status.
	ConcluidoEm *time.Time `json:"-"`
}

// AcompanhamentoPatch é o payload de atualização parcial.
type AcompanhamentoPatch struct {
	PessoaID     Optional[string] `json:"pessoa_id" swaggertype:"string"`
	Titulo       Optional[string] `json:"titulo" swaggertype:"string"`
	Descricao    Optional[string] `json:"descricao" swaggertype:"string"`
	Categoria    Optional[string] `json:"categoria" swaggertype:"string"`
	Status       Optional[string] `json:"status" swaggertype:"string"`
	Prioridade   Optional[string] `json:"prioridade" swaggertype:"string"`
	DataInicio   Optional[string] `json:"data_inicio" swaggertype:"string"`
	DataPrevista Optional[string] `json:"data_prevista" swaggertype:"string"`
	DataFim      Optional[string] `json:"data_fim" swaggertype:"string"`
	Responsavel  Optional[string] `json:"responsavel" swaggertype:"string"`
	Resultado    Optional[string] `json:"resultado" swaggertype:"string"`

	ConcluidoEm Optional[time.Time] `json:"-"`
}

// StatusUpdate é o corpo do PATCH usado pelo arrastar-e-soltar do kanban.
type StatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress done"`
}

// AcompanhamentoFilter restringe a listagem paginada.
type AcompanhamentoFilter struct {
	Status     string
	Prioridade string
	PessoaID   string
}
