package resource

import (
	"strconv"
	"strings"
	"time"
)

// Condition é um predicado SQL com placeholders "?" que são renumerados para $n na montagem.
type Condition struct {
	sql  string
	args []interface{}
}

// Filter é uma conjunção de condições.
type Filter []Condition

// Where cria uma condição livre. Use "?" para cada argumento.
func Where(sql string, args ...interface{}) Condition {
	return Condition{sql: sql, args: args}
}

// Eq compara uma coluna a um valor.
func Eq(column string, value interface{}) Condition {
	return Where(column+" = ?", value)
}

// IsTrue exige coluna booleana verdadeira (filtro "somente ativos").
func IsTrue(column string) Condition {
	return Where(column + " = true")
}

// HasTag testa pertinência exata (sensível a maiúsculas) no array de tags.
func HasTag(tag string) Condition {
	return Where("? = ANY(tags)", tag)
}

// Since exige column >= t.
func Since(column string, t time.Time) Condition {
	return Where(column+" >= ?", t)
}

// Between exige from <= column < to.
func Between(column string, from, to time.Time) Condition {
	return Where(column+" >= ? AND "+column+" < ?", from, to)
}

// And acrescenta condições, ignorando as vazias.
func (f Filter) And(conds ...Condition) Filter {
	out := append(Filter{}, f...)
	for _, c := range conds {
		if c.sql != "" {
			out = append(out, c)
		}
	}
	return out
}

// EqIf acrescenta Eq somente quando value não é vazio.
func (f Filter) EqIf(column, value string) Filter {
	if value == "" {
		return f
	}
	return f.And(Eq(column, value))
}

// build monta a cláusula WHERE começando em $start e devolve os argumentos na mesma ordem.
func (f Filter) build(start int) (string, []interface{}) {
	if len(f) == 0 {
		return "", nil
	}

	var (
		sb   strings.Builder
		args []interface{}
		n    = start
	)
	sb.WriteString(" WHERE ")
	for i, c := range f {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString("(")
		for _, ch := range c.sql {
			if ch == '?' {
				sb.WriteString("$" + strconv.Itoa(n))
				n++
				continue
			}
			sb.WriteRune(ch)
		}
		sb.WriteString(")")
		args = append(args, c.args...)
	}
	return sb.String(), args
}
