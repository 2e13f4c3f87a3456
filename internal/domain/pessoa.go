package domain

import "time"

// Tags de categoria usadas nas estatísticas, relatórios e painel.
const (
	TagLideres     = "Líderes"
	TagObreiros    = "Obreiros"
	TagVoluntarios = "Voluntários"
	TagMembros     = "Membros"
	TagVisitantes  = "Visitantes"
)

// CategoryTags é a ordem em que as categorias aparecem nas estatísticas.
var CategoryTags = []string{TagLideres, TagObreiros, TagVoluntarios, TagMembros, TagVisitantes}

// Pessoa é um membro, visitante ou contato acompanhado pela igreja.
type Pessoa struct {
	ID             string    `json:"id" example:"3f1c2a9e-8f2b-4a47-9d4e-0b6a3c1e9f10"`
	Nome           string    `json:"nome" example:"Ana Souza"`
	Email          *string   `json:"email" example:"ana@email.com"`
	Telefone       *string   `json:"telefone" example:"(11) 98888-7777"`
	CPF            *string   `json:"cpf"`
	Endereco       *string   `json:"endereco"`
	Cidade         *string   `json:"cidade"`
	Estado         *string   `json:"estado"`
	CEP            *string   `json:"cep"`
	DataNascimento *string   `json:"data_nascimento" example:"1990-05-21"`
	Tags           []string  `json:"tags"`
	Observacoes    *string   `json:"observacoes"`
	Ativo          bool      `json:"ativo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PessoaInput é o payload de criação.
type PessoaInput struct {
	Nome           string   `json:"nome" validate:"required,max=255"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Telefone       *string  `json:"telefone"`
	CPF            *string  `json:"cpf"`
	Endereco       *string  `json:"endereco"`
	Cidade         *string  `json:"cidade"`
	Estado         *string  `json:"estado"`
	CEP            *string  `json:"cep"`
	DataNascimento *string  `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Tags           []string `json:"tags"`
	Observacoes    *string  `json:"observacoes"`
}

// PessoaPatch é o payload de atualização parcial: apenas as chaves enviadas são aplicadas.
type PessoaPatch struct {
	Nome           Optional[string]   `json:"nome" swaggertype:"string"`
	Email          Optional[string]   `json:"email" swaggertype:"string"`
	Telefone       Optional[string]   `json:"telefone" swaggertype:"string"`
	CPF            Optional[string]   `json:"cpf" swaggertype:"string"`
	Endereco       Optional[string]   `json:"endereco" swaggertype:"string"`
	Cidade         Optional[string]   `json:"cidade" swaggertype:"string"`
	Estado         Optional[string]   `json:"estado" swaggertype:"string"`
	CEP            Optional[string]   `json:"cep" swaggertype:"string"`
	DataNascimento Optional[string]   `json:"data_nascimento" swaggertype:"string"`
	Tags           Optional[[]string] `json:"tags" swaggertype:"array,string"`
	Observacoes    Optional[string]   `json:"observacoes" swaggertype:"string"`
	Ativo          Optional[bool]     `json:"ativo" swaggertype:"boolean"`
}

// TagStat resume uma categoria: ativos com a tag e quantos entraram no mês corrente.
type TagStat struct {
	Tag         string `json:"tag" example:"Membros"`
	Total       int    `json:"total" example:"120"`
	MonthChange int    `json:"monthChange" example:"4"`
}
