package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phylsix/tinyurl/internal/shortener"
)

// uniqueViolation is the PostgreSQL error code raised when an insert hits
// the primary key on short_urls.code.
const uniqueViolation = "23505"

// queryTimeout bounds every round-trip to the database so a slow or
// partitioned backend surfaces as a storage error instead of hanging the
// request.
const queryTimeout = 5 * time.Second

const schema = `
	CREATE TABLE IF NOT EXISTS short_urls (
		code       TEXT PRIMARY KEY,
		target_url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Migrate creates the short_urls table if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating short_urls table: %w", err)
	}

	return nil
}

// PostgresStore is the PostgreSQL implementation of shortener.Repository
// and the source of truth for mappings. The primary key on code is what
// arbitrates concurrent inserts of the same code: exactly one wins, the
// rest observe ErrCodeTaken.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed mapping store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Insert(ctx context.Context, m *shortener.Mapping) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO short_urls (code, target_url, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := p.pool.Exec(ctx, query, string(m.Code), m.TargetURL, m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return shortener.ErrCodeTaken
		}

		return err
	}

	return nil
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT code, target_url, created_at
		FROM short_urls
		WHERE code = $1
	`

	var m shortener.Mapping

	err := p.pool.QueryRow(ctx, query, string(code)).Scan(
		&m.Code,
		&m.TargetURL,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &m, nil
}

// Shutdown closes the underlying connection pool.
func (p *PostgresStore) Shutdown() error {
	p.pool.Close()

	return nil
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
