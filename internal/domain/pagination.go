package domain

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage mantém (page-1)*limit longe de overflow de int.
	MaxPage = math.MaxInt32 / MaxLimit
)

// PageRequest é a página pedida pelo cliente, já normalizada.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest aplica os padrões (1, 10) a valores ausentes ou inválidos e limita o tamanho da página.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page > MaxPage {
		page = MaxPage
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset é o deslocamento SQL correspondente à página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination é o bloco de metadados devolvido junto com cada listagem paginada.
type Pagination struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"10"`
	Total int `json:"total" example:"42"`
	Pages int `json:"pages" example:"5"`
}

// NewPagination calcula pages = ceil(total/limit).
func NewPagination(p PageRequest, total int) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}

// Page é o envelope {data, pagination} das listagens.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPage monta o envelope garantindo que data seja [] e não null.
func NewPage[T any](rows []T, p PageRequest, total int) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{Data: rows, Pagination: NewPagination(p, total)}
}
