package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"baby-journal/internal/ports/slots"
)

const schema = `
CREATE TABLE IF NOT EXISTS journal_slots (
	name       TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// SlotStore guarda cada slot como una fila JSONB.
type SlotStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db, now: time.Now}
}

// Migrate crea la tabla si no existe.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *SlotStore) Get(ctx context.Context, name string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data::text FROM journal_slots WHERE name = $1`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, slots.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (s *SlotStore) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal_slots (name, data, updated_at)
		VALUES ($1, $2::jsonb, $3)
		ON CONFLICT (name) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`, name, string(data), s.now().UTC())
	return err
}
