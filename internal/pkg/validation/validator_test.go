package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
)

func TestStruct_UsesJSONNames(t *testing.T) {
	v := New()

	err := v.Struct(domain.AcompanhamentoInput{Prioridade: "urgente"})
	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "titulo é obrigatório")
	assert.Contains(t, err.Error(), "prioridade deve ser um de: low medium high")
}

func TestStruct_InscricaoTipo(t *testing.T) {
	v := New()

	err := v.Struct(domain.InscricaoInput{Nome: "João", Telefone: "11999", Endereco: "Rua A", Tipo: "guest"})
	require.Error(t, err)
	assert.Equal(t, "tipo deve ser um de: member visitor", err.Error())

	assert.NoError(t, v.Struct(domain.InscricaoInput{Nome: "João", Telefone: "11999", Endereco: "Rua A", Tipo: "visitor"}))
}

func TestStruct_DatesAndOptionalPointers(t *testing.T) {
	v := New()

	bad := "21/05/1990"
	err := v.Struct(domain.PessoaInput{Nome: "Ana", DataNascimento: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_nascimento deve estar no formato AAAA-MM-DD")

	assert.NoError(t, v.Struct(domain.PessoaInput{Nome: "Ana"}))

	err = v.Struct(domain.EventoInput{Nome: "Culto", Data: "2026-11-07", Horario: "7pm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "horario deve estar no formato HH:MM")
}

func TestVar(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("email", "ana@email.com", "email"))
	err := v.Var("email", "ana", "email")
	require.Error(t, err)
	assert.Equal(t, "email deve ser um email válido", err.Error())
}
