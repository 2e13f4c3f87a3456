package domain_test

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
)

func TestNewPageRequest_Defaults(t *testing.T) {
	assert.Equal(t, domain.PageRequest{Page: 1, Limit: 10}, domain.NewPageRequest(0, 0))
	assert.Equal(t, domain.PageRequest{Page: 3, Limit: 25}, domain.NewPageRequest(3, 25))
	assert.Equal(t, domain.PageRequest{Page: 1, Limit: domain.MaxLimit}, domain.NewPageRequest(-2, 5000))
	assert.Equal(t, 20, domain.NewPageRequest(3, 10).Offset())
}

func TestNewPageRequest_HugePageKeepsOffsetPositive(t *testing.T) {
	p := domain.NewPageRequest(math.MaxInt64/50, 100)

	assert.Equal(t, domain.MaxPage, p.Page)
	assert.Positive(t, p.Offset())
	assert.LessOrEqual(t, p.Offset(), math.MaxInt32)
}

func TestNewPagination_PagesIsCeil(t *testing.T) {
	cases := []struct{ total, limit, pages int }{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{42, 5, 9},
	}
	for _, c := range cases {
		p := domain.NewPagination(domain.PageRequest{Page: 1, Limit: c.limit}, c.total)
		assert.Equal(t, c.pages, p.Pages, "total=%d limit=%d", c.total, c.limit)
	}
}

func TestNewPage_NilRowsBecomeEmptyArray(t *testing.T) {
	page := domain.NewPage[domain.Pessoa](nil, domain.NewPageRequest(1, 10), 0)
	raw, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":10,"total":0,"pages":0}}`, string(raw))
}

func TestOptional_DistinguishesAbsentNullAndValue(t *testing.T) {
	var patch domain.PessoaPatch
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"Ana","email":"","telefone":null}`), &patch))

	assert.True(t, patch.Nome.Present())
	assert.Equal(t, "Ana", patch.Nome.Value)

	assert.True(t, patch.Email.Present())
	assert.Equal(t, "", patch.Email.Value)

	assert.False(t, patch.Endereco.Set)
	assert.False(t, patch.Tags.Set)
}

func TestOptional_UnmarshalNull(t *testing.T) {
	var o domain.Optional[string]
	require.NoError(t, o.UnmarshalJSON([]byte("null")))
	assert.True(t, o.Set)
	assert.True(t, o.Null)
	assert.Nil(t, o.Ptr())

	s := domain.Some("x")
	require.NotNil(t, s.Ptr())
	assert.Equal(t, "x", *s.Ptr())
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 100, domain.PercentChange(5, 0))
	assert.Equal(t, 0, domain.PercentChange(0, 0))
	assert.Equal(t, 50, domain.PercentChange(15, 10))
	assert.Equal(t, -33, domain.PercentChange(2, 3))
	assert.Equal(t, -100, domain.PercentChange(0, 4))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, domain.Percent(3, 0))
	assert.Equal(t, 67, domain.Percent(2, 3))
	assert.Equal(t, 100, domain.Percent(5, 5))
}

func TestNewMetric(t *testing.T) {
	m := domain.NewMetric(15, 10)
	assert.Equal(t, domain.Metric{Atual: 15, Anterior: 10, Variacao: 5, Percentual: 50}, m)
}

func TestNewEventoInscricoes_TotalsAddUp(t *testing.T) {
	inscricoes := []domain.Inscricao{
		{Tipo: domain.InscricaoMembro},
		{Tipo: domain.InscricaoVisitante},
		{Tipo: domain.InscricaoMembro},
	}
	agg := domain.NewEventoInscricoes(domain.Evento{ID: "e1"}, inscricoes)

	assert.Equal(t, 2, agg.TotalMembros)
	assert.Equal(t, 1, agg.TotalVisitantes)
	assert.Equal(t, agg.TotalMembros+agg.TotalVisitantes, agg.TotalInscricoes)
	assert.Len(t, agg.Inscricoes, 3)

	empty := domain.NewEventoInscricoes(domain.Evento{ID: "e2"}, nil)
	assert.NotNil(t, empty.Inscricoes)
	assert.Equal(t, 0, empty.TotalInscricoes)
}

func TestUsuario_SenhaNeverSerialized(t *testing.T) {
	raw, err := json.Marshal(domain.Usuario{ID: "u1", Email: "a@b.com", Senha: "$2a$10$hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "senha")
}
