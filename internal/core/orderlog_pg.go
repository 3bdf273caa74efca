package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

const orderLogSchema = `
CREATE TABLE IF NOT EXISTS order_log (
	id          UUID PRIMARY KEY,
	catalog_key TEXT NOT NULL,
	destination TEXT NOT NULL DEFAULT '',
	lines       JSONB NOT NULL,
	total_items INTEGER NOT NULL,
	total       DOUBLE PRECISION NOT NULL,
	has_price   BOOLEAN NOT NULL,
	ip_address  TEXT NOT NULL DEFAULT '',
	user_agent  TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS order_log_created_at_idx ON order_log (created_at DESC);
`

// PgOrderLog stores order records in PostgreSQL.
type PgOrderLog struct {
	db DBTX
}

// NewPgOrderLog creates an order log backed by db.
func NewPgOrderLog(db DBTX) *PgOrderLog {
	return &PgOrderLog{db: db}
}

// EnsureSchema creates the order_log table if it does not exist.
func (p *PgOrderLog) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, orderLogSchema); err != nil {
		return fmt.Errorf("create order_log: %w", err)
	}
	return nil
}

// Record inserts rec.
func (p *PgOrderLog) Record(ctx context.Context, rec OrderRecord) error {
	lines, err := json.Marshal(rec.Lines)
	if err != nil {
		return fmt.Errorf("encode order lines: %w", err)
	}

	_, err = p.db.Exec(ctx, `INSERT INTO order_log
		(id, catalog_key, destination, lines, total_items, total, has_price, ip_address, user_agent, created_at)
		VALUES ($1::uuid, $2, $3, $4::jsonb, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.CatalogKey, rec.Destination, string(lines),
		rec.TotalItems, rec.Total, rec.HasPrice, rec.IPAddress, rec.UserAgent, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order_log: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (p *PgOrderLog) Recent(ctx context.Context, limit int) ([]OrderRecord, error) {
	if limit <= 0 {
		limit = DefaultOrderHistoryLimit
	}

	rows, err := p.db.Query(ctx, `SELECT id::text, catalog_key, destination, lines::text,
		total_items, total, has_price, ip_address, user_agent, created_at
		FROM order_log ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query order_log: %w", err)
	}
	defer rows.Close()

	records := make([]OrderRecord, 0)
	for rows.Next() {
		var (
			rec   OrderRecord
			lines string
		)
		if err := rows.Scan(&rec.ID, &rec.CatalogKey, &rec.Destination, &lines,
			&rec.TotalItems, &rec.Total, &rec.HasPrice, &rec.IPAddress, &rec.UserAgent, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order_log: %w", err)
		}
		if err := json.Unmarshal([]byte(lines), &rec.Lines); err != nil {
			return nil, fmt.Errorf("decode order lines: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
