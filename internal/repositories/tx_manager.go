package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxRepos exposes transaction-scoped repositories to a workflow. Every
// call through these repositories runs on the same database transaction.
type TxRepos interface {
	Carts() CartRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// TxManager runs a function within a single database transaction,
// committing on nil and rolling back on error.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}

// TxBeginner is the subset of *pgxpool.Pool needed to open transactions.
// pgxmock satisfies it as well.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type pgxTxManager struct {
	db TxBeginner
}

func NewTxManager(db TxBeginner) TxManager {
	return &pgxTxManager{db: db}
}

type txRepos struct {
	tx pgx.Tx
}

func (r *txRepos) Carts() CartRepository           { return NewCartRepo(r.tx) }
func (r *txRepos) Orders() OrderRepository         { return NewOrderRepo(r.tx) }
func (r *txRepos) OrderItems() OrderItemRepository { return NewOrderItemRepo(r.tx) }

func (m *pgxTxManager) WithinTx(ctx context.Context, fn func(r TxRepos) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(&txRepos{tx: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}
