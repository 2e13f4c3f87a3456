package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq" // driver "postgres"

	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/metrics"
)

// Querier é o subconjunto de *sql.DB / *sql.Tx usado pelos repositórios.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// DB é o gateway de persistência: envolve o pool *sql.DB, mede e registra cada consulta.
type DB struct {
	pool   *sql.DB
	logger logger.Logger
}

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
func NewPostgresDB(dataSourceName string, log logger.Logger) (*DB, error) {
	// 1. Abrir a Conexão
	pool, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// 2. Testar a Conexão Imediatamente
	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	// 3. Configuração do Connection Pool
	pool.SetMaxOpenConns(25)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(5 * time.Minute)
	pool.SetConnMaxIdleTime(2 * time.Minute)

	log.Info("✅ Pool de Conexões PostgreSQL configurado e pronto.", map[string]interface{}{"max_open_conns": 25})

	return New(pool, log), nil
}

// New envolve um pool já aberto (usado em testes com sqlmock).
func New(pool *sql.DB, log logger.Logger) *DB {
	return &DB{pool: pool, logger: log}
}

// SQL expõe o pool subjacente (migrações, health check).
func (d *DB) SQL() *sql.DB { return d.pool }

// Close fecha o pool.
func (d *DB) Close() error { return d.pool.Close() }

// PingContext verifica se o banco responde.
func (d *DB) PingContext(ctx context.Context) error { return d.pool.PingContext(ctx) }

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.pool.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.pool.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.pool.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

// RunInTx executa fn dentro de uma transação. Commit se fn retornar nil, rollback caso contrário.
func (d *DB) RunInTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := d.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("falha ao iniciar transação: %w", err)
	}

	if err := fn(&txQuerier{tx: tx, db: d}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.logger.Error("Falha no rollback da transação.", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("falha ao confirmar transação: %w", err)
	}
	return nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	op := operation(query)
	elapsed := time.Since(start)
	metrics.RecordDBQuery(op, elapsed, err)
	d.logger.Debug("Consulta executada.", map[string]interface{}{
		"operation":   op,
		"duration_ms": elapsed.Milliseconds(),
		"failed":      err != nil,
	})
}

// operation extrai o verbo SQL (SELECT, INSERT, ...) usado como rótulo de métrica.
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}

// txQuerier aplica a mesma instrumentação dentro de uma transação.
type txQuerier struct {
	tx *sql.Tx
	db *DB
}

func (t *txQuerier) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return rows, err
}

func (t *txQuerier) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(query, start, row.Err())
	return row
}

func (t *txQuerier) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return res, err
}
