package domain

import (
	"strings"

	"github.com/goccy/go-json"
)

// Optional distingue, num payload de atualização, "campo ausente" de "campo enviado como null".
// Set é true sempre que a chave aparece no JSON; Null é true quando o valor enviado é null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some constrói um Optional presente com valor.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null constrói um Optional presente com null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON só é chamado quando a chave existe no objeto.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON serializa o valor (ou null).
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Present informa se o campo veio com um valor não nulo.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// IsNull informa se o campo foi enviado explicitamente como null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Null
}

// Ptr devolve nil para null e &Value caso contrário.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

// BlankToNil trata string vazia (ou só espaços) como campo não informado.
func BlankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
