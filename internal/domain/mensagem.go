package domain

// EmailRequest é o corpo de POST /email/enviar.
type EmailRequest struct {
	Para     string  `json:"para" validate:"required,email"`
	Assunto  string  `json:"assunto" validate:"required"`
	Corpo    string  `json:"corpo" validate:"required"`
	PessoaID *string `json:"pessoa_id" validate:"omitempty,uuid"`
}

// WhatsAppRequest é o corpo de POST /whatsapp/enviar.
type WhatsAppRequest struct {
	Telefone string  `json:"telefone" validate:"required"`
	Mensagem string  `json:"mensagem" validate:"required"`
	PessoaID *string `json:"pessoa_id" validate:"omitempty,uuid"`
}

// EnvioResultado é a resposta dos envios. Simulated indica que nenhum provedor foi acionado com sucesso.
type EnvioResultado struct {
	Success   bool        `json:"success"`
	Simulated bool        `json:"simulated"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
}
