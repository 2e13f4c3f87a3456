package domain

import "time"

// Tipos de inscrição aceitos.
const (
	InscricaoMembro    = "member"
	InscricaoVisitante = "visitor"
)

// Evento é um culto, encontro ou atividade com data marcada.
type Evento struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome" example:"Culto de Jovens"`
	Data      string    `json:"data" example:"2026-11-07"`
	Horario   string    `json:"horario" example:"19:30"`
	Local     *string   `json:"local"`
	Descricao *string   `json:"descricao"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventoInput é o payload de criação.
type EventoInput struct {
	Nome      string  `json:"nome" validate:"required,max=255"`
	Data      string  `json:"data" validate:"required,datetime=2006-01-02"`
	Horario   string  `json:"horario" validate:"required,datetime=15:04"`
	Local     *string `json:"local"`
	Descricao *string `json:"descricao"`
}

// EventoPatch é o payload de atualização parcial.
type EventoPatch struct {
	Nome      Optional[string] `json:"nome" swaggertype:"string"`
	Data      Optional[string] `json:"data" swaggertype:"string"`
	Horario   Optional[string] `json:"horario" swaggertype:"string"`
	Local     Optional[string] `json:"local" swaggertype:"string"`
	Descricao Optional[string] `json:"descricao" swaggertype:"string"`
	Ativo     Optional[bool]   `json:"ativo" swaggertype:"boolean"`
}

// Inscricao é o registro de uma pessoa num evento.
type Inscricao struct {
	ID            string    `json:"id"`
	EventoID      string    `json:"evento_id"`
	Nome          string    `json:"nome"`
	Telefone      string    `json:"telefone"`
	Endereco      string    `json:"endereco"`
	Tipo          string    `json:"tipo" example:"member"`
	DataInscricao time.Time `json:"data_inscricao"`
	Ativo         bool      `json:"ativo"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InscricaoInput é o payload de criação. EventoID vem do caminho da URL.
type InscricaoInput struct {
	EventoID string `json:"-"`
	Nome     string `json:"nome" validate:"required"`
	Telefone string `json:"telefone" validate:"required"`
	Endereco string `json:"endereco" validate:"required"`
	Tipo     string `json:"tipo" validate:"required,oneof=member visitor"`
}

// InscricaoPatch é o payload de atualização parcial.
type InscricaoPatch struct {
	Nome     Optional[string] `json:"nome" swaggertype:"string"`
	Telefone Optional[string] `json:"telefone" swaggertype:"string"`
	Endereco Optional[string] `json:"endereco" swaggertype:"string"`
	Tipo     Optional[string] `json:"tipo" swaggertype:"string"`
	Ativo    Optional[bool]   `json:"ativo" swaggertype:"boolean"`
}

// EventoInscricoes agrega um evento e suas inscrições ativas.
// TotalInscricoes == TotalMembros + TotalVisitantes.
type EventoInscricoes struct {
	Evento          Evento      `json:"evento"`
	Inscricoes      []Inscricao `json:"inscricoes"`
	TotalInscricoes int         `json:"totalInscricoes"`
	TotalMembros    int         `json:"totalMembros"`
	TotalVisitantes int         `json:"totalVisitantes"`
}

// NewEventoInscricoes conta membros e visitantes sobre a mesma lista.
func NewEventoInscricoes(ev Evento, inscricoes []Inscricao) EventoInscricoes {
	if inscricoes == nil {
		inscricoes = []Inscricao{}
	}
	agg := EventoInscricoes{Evento: ev, Inscricoes: inscricoes}
	for _, i := range inscricoes {
		switch i.Tipo {
		case InscricaoMembro:
			agg.TotalMembros++
		case InscricaoVisitante:
			agg.TotalVisitantes++
		}
	}
	agg.TotalInscricoes = agg.TotalMembros + agg.TotalVisitantes
	return agg
}

// IsTipoInscricao informa se tipo é member ou visitor.
func IsTipoInscricao(tipo string) bool {
	return tipo == InscricaoMembro || tipo == InscricaoVisitante
}
