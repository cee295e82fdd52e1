// Package storage elige el adapter de slots a partir de STORE_DSN.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"baby-journal/internal/adapters/storage/memory"
	"baby-journal/internal/adapters/storage/postgres"
	"baby-journal/internal/adapters/storage/sqlite"
	"baby-journal/internal/ports/slots"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Backend nombra el adapter elegido por Open.
func Backend(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "" || dsn == "memory":
		return "memory"
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "postgres"
	default:
		return "sqlite"
	}
}

// Open devuelve el store y lo que hay que cerrar al terminar:
//   - "" o "memory": en memoria;
//   - postgres:// o postgresql://: PostgreSQL (crea la tabla si falta);
//   - "sqlite:<dsn>" o cualquier otra cosa: ruta/DSN de SQLite.
func Open(ctx context.Context, dsn string) (slots.Store, io.Closer, error) {
	dsn = strings.TrimSpace(dsn)
	switch Backend(dsn) {
	case "memory":
		return memory.NewSlotStore(), nopCloser{}, nil

	case "postgres":
		db, err := postgres.Open(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return postgres.NewSlotStore(db), db, nil

	default:
		db, err := sqlite.Open(strings.TrimPrefix(dsn, "sqlite:"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return sqlite.NewSlotStore(db), db, nil
	}
}
