package resource

import (
	"github.com/lib/pq"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
)

// Fields é um conjunto ordenado coluna -> valor usado em INSERT e UPDATE.
type Fields struct {
	cols []string
	vals []interface{}
}

// NewFields cria um conjunto vazio.
func NewFields() *Fields {
	return &Fields{}
}

// Set define (ou substitui) o valor de uma coluna.
func (f *Fields) Set(column string, value interface{}) *Fields {
	for i, c := range f.cols {
		if c == column {
			f.vals[i] = value
			return f
		}
	}
	f.cols = append(f.cols, column)
	f.vals = append(f.vals, value)
	return f
}

// SetDefault define a coluna somente se ainda não estiver presente.
func (f *Fields) SetDefault(column string, value interface{}) *Fields {
	if f.Has(column) {
		return f
	}
	return f.Set(column, value)
}

// Merge copia as colunas de other.
func (f *Fields) Merge(other *Fields) *Fields {
	if other == nil {
		return f
	}
	for i, c := range other.cols {
		f.Set(c, other.vals[i])
	}
	return f
}

// Has informa se a coluna está presente.
func (f *Fields) Has(column string) bool {
	for _, c := range f.cols {
		if c == column {
			return true
		}
	}
	return false
}

// Get devolve o valor da coluna, se presente.
func (f *Fields) Get(column string) (interface{}, bool) {
	for i, c := range f.cols {
		if c == column {
			return f.vals[i], true
		}
	}
	return nil, false
}

// Len é o número de colunas.
func (f *Fields) Len() int {
	return len(f.cols)
}

// Columns devolve os nomes das colunas (para log).
func (f *Fields) Columns() []string {
	return append([]string(nil), f.cols...)
}

// SetOptional aplica um campo de PATCH: ausente não altera, null grava NULL, valor grava o valor.
func SetOptional[T any](f *Fields, column string, o domain.Optional[T]) {
	if !o.Set {
		return
	}
	if o.Null {
		f.Set(column, nil)
		return
	}
	f.Set(column, o.Value)
}

// SetOptionalDate é como SetOptional para colunas date/time: string vazia vira NULL.
func SetOptionalDate(f *Fields, column string, o domain.Optional[string]) {
	if !o.Set {
		return
	}
	if o.Null || o.Value == "" {
		f.Set(column, nil)
		return
	}
	f.Set(column, o.Value)
}

// SetOptionalTags aplica o array de tags; null vira array vazio.
func SetOptionalTags(f *Fields, column string, o domain.Optional[[]string]) {
	if !o.Set {
		return
	}
	tags := o.Value
	if o.Null || tags == nil {
		tags = []string{}
	}
	f.Set(column, pq.Array(tags))
}
