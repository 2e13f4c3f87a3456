package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Error string `json:"error" example:"nome é obrigatório"`
}

// MessageResponse acompanha operações de exclusão: mensagem de confirmação mais a linha afetada.
type MessageResponse struct {
	Message string      `json:"message" example:"Pessoa desativada com sucesso"`
	Data    interface{} `json:"data,omitempty"`
}
