// Package resource implementa o repositório genérico de recursos: listagem paginada com contagem,
// busca por id, criação, atualização parcial e exclusão lógica ou física, configurado por entidade.
package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// Scanner é satisfeito por *sql.Row e *sql.Rows.
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Definition descreve como uma entidade é persistida.
type Definition[T any] struct {
	Table string
	// Columns são as expressões do SELECT/RETURNING, na ordem lida por Scan.
	Columns []string
	// OrderBy é a ordenação por recência (e.g. "created_at DESC").
	OrderBy string
	// ActiveColumn é a coluna da exclusão lógica. Vazia significa exclusão física.
	ActiveColumn string
	// NotFound é a mensagem devolvida quando o id não existe.
	NotFound string
	Scan     func(s Scanner) (T, error)
}

// SoftDelete informa se a entidade usa exclusão lógica.
func (d Definition[T]) SoftDelete() bool {
	return d.ActiveColumn != ""
}

// Repository é o repositório genérico instanciado por entidade.
type Repository[T any] struct {
	def     Definition[T]
	db      database.Querier
	timeout time.Duration
	logger  logger.Logger
	now     func() time.Time
}

// New cria um repositório para a definição informada.
func New[T any](def Definition[T], db database.Querier, timeout time.Duration, log logger.Logger) *Repository[T] {
	return &Repository[T]{
		def:     def,
		db:      db,
		timeout: timeout,
		logger:  log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// With devolve uma cópia que executa no Querier informado (e.g. uma transação).
func (r *Repository[T]) With(q database.Querier) *Repository[T] {
	clone := *r
	clone.db = q
	return &clone
}

// Definition expõe a definição (usada por consultas especiais dos repositórios de entidade).
func (r *Repository[T]) Definition() Definition[T] {
	return r.def
}

func (r *Repository[T]) selectList() string {
	return strings.Join(r.def.Columns, ", ")
}

// List devolve a página pedida e o total de linhas que satisfazem o mesmo filtro.
// Fatia e contagem são consultas independentes.
func (r *Repository[T]) List(ctx context.Context, filter Filter, page domain.PageRequest) ([]T, int, error) {
	r.logger.Debug("Iniciando List no repositório.", map[string]interface{}{"table": r.def.Table, "page": page.Page, "limit": page.Limit})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where, args := filter.build(1)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		r.selectList(), r.def.Table, where, r.def.OrderBy, len(args)+1, len(args)+2)

	pageArgs := append(append([]interface{}{}, args...), page.Limit, page.Offset())
	items, err := r.query(ctxTimeout, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.count(ctxTimeout, where, args)
	if err != nil {
		return nil, 0, err
	}

	r.logger.Info("List concluído.", map[string]interface{}{"table": r.def.Table, "rows": len(items), "total": total})
	return items, total, nil
}

// ListAll devolve todas as linhas do filtro, ordenadas por recência.
func (r *Repository[T]) ListAll(ctx context.Context, filter Filter) ([]T, error) {
	r.logger.Debug("Iniciando ListAll no repositório.", map[string]interface{}{"table": r.def.Table})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where, args := filter.build(1)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s", r.selectList(), r.def.Table, where, r.def.OrderBy)

	return r.query(ctxTimeout, query, args...)
}

// ListByParent lista os filhos de um registro pai (chave estrangeira). Id malformado resulta em lista vazia.
func (r *Repository[T]) ListByParent(ctx context.Context, column, parentID string, extra ...Condition) ([]T, error) {
	if _, err := uuid.Parse(parentID); err != nil {
		return []T{}, nil
	}
	return r.ListAll(ctx, Filter{Eq(column, parentID)}.And(extra...))
}

// Count conta as linhas que satisfazem o filtro.
func (r *Repository[T]) Count(ctx context.Context, filter Filter) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where, args := filter.build(1)
	return r.count(ctxTimeout, where, args)
}

// GetByID busca uma linha pelo id, ativa ou não. Id malformado resulta em NotFound.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	r.logger.Debug("Iniciando GetByID no repositório.", map[string]interface{}{"table": r.def.Table, "id": id})

	if _, err := uuid.Parse(id); err != nil {
		return zero, apperror.NewNotFoundError(r.def.NotFound)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.selectList(), r.def.Table)
	item, err := r.def.Scan(r.db.QueryRowContext(ctxTimeout, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Registro não encontrado.", map[string]interface{}{"table": r.def.Table, "id": id})
		return zero, apperror.NewNotFoundError(r.def.NotFound)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar registro no DB.", err)
		return zero, apperror.NewDBError("Falha ao buscar "+r.def.Table, err)
	}

	return item, nil
}

// Insert cria a linha com id gerado pelo servidor e devolve a linha persistida.
func (r *Repository[T]) Insert(ctx context.Context, fields *Fields) (T, error) {
	var zero T
	r.logger.Debug("Iniciando Insert no repositório.", map[string]interface{}{"table": r.def.Table, "columns": fields.Columns()})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := r.now()
	row := NewFields().
		Set("id", uuid.NewString()).
		Merge(fields).
		SetDefault("created_at", now).
		SetDefault("updated_at", now)

	placeholders := make([]string, row.Len())
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.def.Table, strings.Join(row.cols, ", "), strings.Join(placeholders, ", "), r.selectList())

	item, err := r.def.Scan(r.db.QueryRowContext(ctxTimeout, query, row.vals...))
	if err != nil {
		r.logger.Error("Falha ao inserir registro no DB.", err)
		return zero, r.translateWriteError("Falha ao criar "+r.def.Table, err)
	}

	r.logger.Info("Registro criado com sucesso.", map[string]interface{}{"table": r.def.Table})
	return item, nil
}

// Update aplica somente as colunas presentes em fields e sempre carimba updated_at.
func (r *Repository[T]) Update(ctx context.Context, id string, fields *Fields) (T, error) {
	var zero T
	r.logger.Debug("Iniciando Update no repositório.", map[string]interface{}{"table": r.def.Table, "id": id, "columns": fields.Columns()})

	if _, err := uuid.Parse(id); err != nil {
		return zero, apperror.NewNotFoundError(r.def.NotFound)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	set := NewFields().Merge(fields).Set("updated_at", r.now())

	assignments := make([]string, set.Len())
	for i, col := range set.cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	args := append(append([]interface{}{}, set.vals...), id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		r.def.Table, strings.Join(assignments, ", "), len(args), r.selectList())

	item, err := r.def.Scan(r.db.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Registro não encontrado para atualização.", map[string]interface{}{"table": r.def.Table, "id": id})
		return zero, apperror.NewNotFoundError(r.def.NotFound)
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar registro no DB.", err)
		return zero, r.translateWriteError("Falha ao atualizar "+r.def.Table, err)
	}

	r.logger.Info("Registro atualizado com sucesso.", map[string]interface{}{"table": r.def.Table, "id": id})
	return item, nil
}

// Delete aplica a política da entidade: exclusão lógica (flag = false) ou física.
// Em ambos os casos devolve a linha afetada.
func (r *Repository[T]) Delete(ctx context.Context, id string) (T, error) {
	var zero T
	r.logger.Debug("Iniciando Delete no repositório.", map[string]interface{}{"table": r.def.Table, "id": id, "soft": r.def.SoftDelete()})

	if _, err := uuid.Parse(id); err != nil {
		return zero, apperror.NewNotFoundError(r.def.NotFound)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var (
		query string
		args  []interface{}
	)
	if r.def.SoftDelete() {
		query = fmt.Sprintf("UPDATE %s SET %s = false, updated_at = $1 WHERE id = $2 RETURNING %s",
			r.def.Table, r.def.ActiveColumn, r.selectList())
		args = []interface{}{r.now(), id}
	} else {
		query = fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", r.def.Table, r.selectList())
		args = []interface{}{id}
	}

	item, err := r.def.Scan(r.db.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Registro não encontrado para exclusão.", map[string]interface{}{"table": r.def.Table, "id": id})
		return zero, apperror.NewNotFoundError(r.def.NotFound)
	}
	if err != nil {
		r.logger.Error("Falha ao excluir registro no DB.", err)
		return zero, apperror.NewDBError("Falha ao excluir "+r.def.Table, err)
	}

	r.logger.Info("Registro excluído com sucesso.", map[string]interface{}{"table": r.def.Table, "id": id})
	return item, nil
}

func (r *Repository[T]) query(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar consulta de listagem.", err)
		return nil, apperror.NewDBError("Falha ao listar "+r.def.Table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := r.def.Scan(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear linha na listagem.", err)
			return nil, apperror.NewDBError("Falha ao mapear "+r.def.Table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas.", err)
		return nil, apperror.NewDBError("Erro após iteração de "+r.def.Table, err)
	}
	return items, nil
}

func (r *Repository[T]) count(ctx context.Context, where string, args []interface{}) (int, error) {
	var total int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.def.Table, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar registros.", err)
		return 0, apperror.NewDBError("Falha ao contar "+r.def.Table, err)
	}
	return total, nil
}

// foreignKeyViolation é o SQLSTATE do PostgreSQL para foreign_key_violation.
const foreignKeyViolation = "23503"

// translateWriteError converte referência inexistente em ValidationError e mantém o resto como erro de DB.
func (r *Repository[T]) translateWriteError(msg string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
		return apperror.NewValidationError("Registro relacionado não encontrado.")
	}
	return apperror.NewDBError(msg, err)
}
