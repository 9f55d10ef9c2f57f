package remote

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// PostgresStore implements the document store against a single jsonb table,
// for self-hosted deployments that don't front a hosted document database.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStore(ctx context.Context, dsn string, logger internal.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			key        TEXT NOT NULL,
			record     JSONB NOT NULL,
			PRIMARY KEY (collection, key)
		)`); err != nil {
		logger.Errorf("failed to ensure documents table: %v", err)
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (p *PostgresStore) Close() { p.pool.Close() }

func (p *PostgresStore) NewKey() string { return uuid.NewString() }

func (p *PostgresStore) Push(ctx context.Context, collection, key string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO documents (collection, key, record) VALUES ($1, $2, $3)
		ON CONFLICT (collection, key) DO UPDATE SET record = EXCLUDED.record`,
		collection, key, body)
	if err != nil {
		p.logger.Errorf("failed to push %s/%s: %v", collection, key, err)
		return err
	}
	return nil
}

func (p *PostgresStore) Read(ctx context.Context, collection, key string) (json.RawMessage, error) {
	var record []byte
	err := p.pool.QueryRow(ctx,
		`SELECT record FROM documents WHERE collection = $1 AND key = $2`,
		collection, key).Scan(&record)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Errorf("failed to read %s/%s: %v", collection, key, err)
		return nil, err
	}
	return record, nil
}

func (p *PostgresStore) ReadAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT key, record FROM documents WHERE collection = $1`, collection)
	if err != nil {
		p.logger.Errorf("failed to read collection %s: %v", collection, err)
		return nil, err
	}
	defer rows.Close()

	records := map[string]json.RawMessage{}
	for rows.Next() {
		var key string
		var record []byte
		if err := rows.Scan(&key, &record); err != nil {
			p.logger.Errorf("failed to scan document: %v", err)
			return nil, err
		}
		records[key] = record
	}
	return records, rows.Err()
}

func (p *PostgresStore) Delete(ctx context.Context, collection, key string) error {
	_, err := p.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND key = $2`, collection, key)
	if err != nil {
		p.logger.Errorf("failed to delete %s/%s: %v", collection, key, err)
		return err
	}
	return nil
}

func (p *PostgresStore) DeleteAll(ctx context.Context, collection string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1`, collection)
	if err != nil {
		p.logger.Errorf("failed to delete collection %s: %v", collection, err)
		return err
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
