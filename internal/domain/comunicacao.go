package domain

import "time"

// Canais de comunicação.
const (
	CanalEmail    = "email"
	CanalSMS      = "sms"
	CanalWhatsApp = "whatsapp"
	CanalLigacao  = "call"
)

// Status usuais de uma comunicação. A coluna aceita qualquer texto.
const (
	ComunicacaoPending   = "pending"
	ComunicacaoSent      = "sent"
	ComunicacaoCancelled = "cancelled"
)

// Comunicacao registra um contato feito (ou planejado) com uma pessoa.
type Comunicacao struct {
	ID              string    `json:"id"`
	PessoaID        string    `json:"pessoa_id"`
	Tipo            string    `json:"tipo" example:"whatsapp"`
	Assunto         *string   `json:"assunto"`
	Mensagem        *string   `json:"mensagem"`
	ProximaAcao     *string   `json:"proxima_acao"`
	Status          string    `json:"status" example:"pending"`
	DataComunicacao time.Time `json:"data_comunicacao"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ComunicacaoInput é o payload de criação.
type ComunicacaoInput struct {
	PessoaID        string     `json:"pessoa_id" validate:"required,uuid"`
	Tipo            string     `json:"tipo" validate:"required,oneof=email sms whatsapp call"`
	Assunto         *string    `json:"assunto"`
	Mensagem        *string    `json:"mensagem"`
	ProximaAcao     *string    `json:"proxima_acao"`
	Status          string     `json:"status"`
	DataComunicacao *time.Time `json:"data_comunicacao"`
}

// ComunicacaoPatch é o payload de atualização parcial.
type ComunicacaoPatch struct {
	PessoaID        Optional[string]    `json:"pessoa_id" swaggertype:"string"`
	Tipo            Optional[string]    `json:"tipo" swaggertype:"string"`
	Assunto         Optional[string]    `json:"assunto" swaggertype:"string"`
	Mensagem        Optional[string]    `json:"mensagem" swaggertype:"string"`
	ProximaAcao     Optional[string]    `json:"proxima_acao" swaggertype:"string"`
	Status          Optional[string]    `json:"status" swaggertype:"string"`
	DataComunicacao Optional[time.Time] `json:"data_comunicacao" swaggertype:"string"`
}

// ComunicacaoFilter restringe a listagem paginada.
type ComunicacaoFilter struct {
	Status string
	Tipo   string
}
