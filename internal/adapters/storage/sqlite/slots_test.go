package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"baby-journal/internal/ports/slots"
)

func TestSlotStore_RoundTrip(t *testing.T) {
	db, err := Open("file::memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	s := NewSlotStore(db)
	s.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	if _, err := s.Get(ctx, "baby_events_v1"); !errors.Is(err, slots.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Put(ctx, "baby_events_v1", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "baby_events_v1", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := s.Get(ctx, "baby_events_v1")
	if err != nil || string(got) != "[]" {
		t.Fatalf("got %q, %v", got, err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&n); err != nil || n != 1 {
		t.Fatalf("expected a single slot row, got %d (%v)", n, err)
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := t.TempDir() + "/journal.db"
	for i := 0; i < 2; i++ {
		db, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		db.Close()
	}
}
