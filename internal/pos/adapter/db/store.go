package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/xpkg/logger"
)

// Store implements core.Store over a pgx connection pool.
type Store struct {
	pool  *pgxpool.Pool
	mylog logger.Logger
}

func NewStore(pool *pgxpool.Pool, mylog logger.Logger) *Store {
	return &Store{
		pool:  pool,
		mylog: mylog,
	}
}

// WithTx runs fn inside a single transaction. The transaction is rolled back
// unless fn returns nil and the commit succeeds.
func (s *Store) WithTx(ctx context.Context, fn func(tx core.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		s.mylog.Action("tx_begin_failed").Error("Failed to begin transaction", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&posTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.mylog.Action("tx_commit_failed").Error("Failed to commit transaction", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
