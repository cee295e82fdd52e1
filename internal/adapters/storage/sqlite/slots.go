package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"baby-journal/internal/ports/slots"
)

type SlotStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db, now: time.Now}
}

func (s *SlotStore) Get(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM slots WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, slots.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put reemplaza el slot en una sola sentencia.
func (s *SlotStore) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, name, data, s.now().UTC().Format(time.RFC3339Nano))
	return err
}
