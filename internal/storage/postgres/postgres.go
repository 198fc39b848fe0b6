// Package postgres implements the record store against PostgreSQL. It owns
// the connection pool, creates the schema on first start and seeds the
// default users. Multi-step writes (student insert plus room occupancy
// adjustment) run inside a single transaction.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emrekoc/hostelms/internal/config"
)

// connectTimeout bounds the initial connection attempt so an unreachable
// server fails fast and the facade can fall back to flat-file storage.
const connectTimeout = 5 * time.Second

// Store is the PostgreSQL-backed record store.
type Store struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// Open creates the connection pool, verifies connectivity, bootstraps the
// schema and seeds the default users. Any failure is returned to the caller;
// the facade treats it as "relational backend unavailable".
func Open(cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	poolConfig.MaxConnLifetime = maxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	s := &Store{pool: pool, logger: lgr}

	if err := s.bootstrapSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	if err := s.seedDefaultUsers(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to seed default users: %w", err)
	}

	lgr.Info().Str("dbname", cfg.Database.DBName).Msg("Connected to PostgreSQL database")
	return s, nil
}

// Close closes all pooled connections.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// withTransaction runs fn inside a transaction, rolling back on error or
// panic and committing otherwise.
func (s *Store) withTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// nullIfEmpty maps empty optional strings to NULL so the relational and
// flat-file representations stay observably equivalent.
func nullIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
