package db

import (
	"context"
	"fmt"
	"net"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolParams describes the postgres instance the service connects to at boot.
type PoolParams struct {
	Host           string
	Port           string
	Name           string
	TracingEnabled bool
}

func NewDBPool(ctx context.Context, params PoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(fmt.Sprintf(
		"postgres://postgres@%s/%s",
		net.JoinHostPort(params.Host, params.Port), params.Name,
	))
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	return pool, nil
}
