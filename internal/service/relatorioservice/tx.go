package relatorioservice

import (
	"context"

	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/database"
)

// TxRunner abre transações (implementado por database.DB).
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q database.Querier) error) error
}

// DBTransactor liga os repositórios à transação aberta pelo TxRunner.
type DBTransactor struct {
	runner TxRunner
	bind   func(q database.Querier) Repositories
}

// NewTransactor cria o Transactor. bind constrói os repositórios sobre o Querier da transação.
func NewTransactor(runner TxRunner, bind func(q database.Querier) Repositories) *DBTransactor {
	return &DBTransactor{runner: runner, bind: bind}
}

// InTx executa fn dentro de uma transação; qualquer erro desfaz tudo.
func (t *DBTransactor) InTx(ctx context.Context, fn func(repos Repositories) error) error {
	return t.runner.RunInTx(ctx, func(q database.Querier) error {
		return fn(t.bind(q))
	})
}
