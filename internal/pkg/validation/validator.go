// Package validation valida payloads de entrada com validator/v10 e devolve ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
)

// Validator envolve o validator/v10 com conversão para erros de domínio.
type Validator struct {
	v *validator.Validate
}

// New cria um validador que usa os nomes das tags json nas mensagens.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Struct valida s e retorna um *apperror.ValidationError com todas as falhas.
func (v *Validator) Struct(s interface{}) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// Var valida um valor isolado (usado nos PATCH, onde os campos são Optional).
func (v *Validator) Var(field string, value interface{}, tag string) error {
	if err := v.v.Var(value, tag); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return apperror.NewValidationError(field + " " + friendlyMessage(validationErrs[0]))
		}
		return apperror.NewValidationError(field + " é inválido")
	}
	return nil
}

func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperror.NewValidationError("Payload inválido.")
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, e.Field()+" "+friendlyMessage(e))
	}
	sort.Strings(msgs)

	return apperror.NewValidationError(strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "é obrigatório"
	case "email":
		return "deve ser um email válido"
	case "uuid":
		return "deve ser um UUID válido"
	case "oneof":
		return "deve ser um de: " + e.Param()
	case "min":
		return fmt.Sprintf("deve ter pelo menos %s caracteres", e.Param())
	case "max":
		return fmt.Sprintf("deve ter no máximo %s caracteres", e.Param())
	case "datetime":
		return "deve estar no formato " + layoutHint(e.Param())
	default:
		return "é inválido"
	}
}

func layoutHint(layout string) string {
	switch layout {
	case "2006-01-02":
		return "AAAA-MM-DD"
	case "15:04":
		return "HH:MM"
	default:
		return layout
	}
}
