// Package db provides PostgreSQL-backed render history. The store is
// optional: a nil *History is a no-op, so deployments without a database run
// unchanged.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// History wraps a PostgreSQL connection pool for render activity tracking.
type History struct {
	pool *pgxpool.Pool
}

// RenderRecord is one completed document generation.
type RenderRecord struct {
	ID          uuid.UUID
	Template    string
	CoverLetter bool
	Country     string
	Bytes       int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*History, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &History{pool: pool}, nil
}

// Close closes the connection pool.
func (h *History) Close() {
	if h != nil && h.pool != nil {
		h.pool.Close()
	}
}

// RecordRender stores one render record. Nil-safe: without a database this
// does nothing.
func (h *History) RecordRender(ctx context.Context, rec RenderRecord) error {
	if h == nil || h.pool == nil {
		return nil
	}
	_, err := h.pool.Exec(ctx,
		`INSERT INTO render_history (id, template, cover_letter, country, bytes, duration_ms)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Template, rec.CoverLetter, rec.Country, rec.Bytes, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record render: %w", err)
	}
	return nil
}

// RecentRenders returns the most recent render records, newest first.
func (h *History) RecentRenders(ctx context.Context, limit int) ([]RenderRecord, error) {
	if h == nil || h.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.pool.Query(ctx,
		`SELECT id, template, cover_letter, country, bytes, duration_ms, created_at
		 FROM render_history
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query render history: %w", err)
	}
	defer rows.Close()

	var records []RenderRecord
	for rows.Next() {
		var rec RenderRecord
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.Template, &rec.CoverLetter, &rec.Country, &rec.Bytes, &durationMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan render record: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read render history: %w", err)
	}
	return records, nil
}
