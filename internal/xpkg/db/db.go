package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"smart-pos/internal/xpkg/config"
	xerrors "smart-pos/internal/xpkg/errors"
)

// Start opens a pgx connection pool and verifies it with a ping.
func Start(ctx context.Context, dbCfg *config.Postgres) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrDBConn, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", xerrors.ErrDBConn, err)
	}

	return pool, nil
}
