package logs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the part of *pgxpool.Pool the slot uses.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const createSlotTableSQL = `
	CREATE TABLE IF NOT EXISTS storage_slot (
		name       TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PsqlSlot keeps the slot as a row in the storage_slot table.
type PsqlSlot struct {
	name string
	db   PgxPool
}

func NewPsqlSlot(db PgxPool, name string) *PsqlSlot {
	return &PsqlSlot{
		name: name,
		db:   db,
	}
}

// Migrate creates the slot table if missing.
func (s *PsqlSlot) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSlotTableSQL); err != nil {
		return fmt.Errorf("create storage_slot table: %w", err)
	}
	return nil
}

func (s *PsqlSlot) Name() string {
	return s.name
}

func (s *PsqlSlot) Read(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx, `
		SELECT value
		FROM storage_slot
		WHERE name = $1
	`, s.name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("select slot: %w", err)
	}
	return value, nil
}

func (s *PsqlSlot) Write(ctx context.Context, data []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO storage_slot (name, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, s.name, data)
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}
