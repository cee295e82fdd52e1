package events

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"baby-journal/internal/domain/events/details"
	"baby-journal/internal/ports/slots"
)

// -------------------------
// Test slot store (in-memory)
// -------------------------

type testSlots struct {
	mu     sync.Mutex
	byName map[string][]byte
	puts   int
	failOn error
}

func newTestSlots() *testSlots {
	return &testSlots{byName: map[string][]byte{}}
}

func (s *testSlots) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byName[name]
	if !ok {
		return nil, slots.ErrNotFound
	}
	return b, nil
}

func (s *testSlots) Put(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn != nil {
		return s.failOn
	}
	s.byName[name] = append([]byte(nil), data...)
	s.puts++
	return nil
}

func newTestService() (*Service, *testSlots) {
	st := newTestSlots()
	svc := NewService(NewSlotRepository(st, ""), nil)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return svc, st
}

var t0 = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

func walk(id string, at time.Time) Event {
	return Event{ID: id, Timestamp: at, Details: details.Walk{}}
}

func diaper(id string, at time.Time, s details.DiaperStatus) Event {
	return Event{ID: id, Timestamp: at, Details: details.Diaper{Status: s}}
}

// -------------------------
// Tests
// -------------------------

func TestAdd_GeneratesIDAndPersists(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()

	got, err := svc.Add(ctx, Event{Timestamp: t0, Note: "  первая  ", Details: details.Bath{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "gen-1" || got.Note != "первая" {
		t.Fatalf("unexpected event: %+v", got)
	}
	if st.puts != 1 {
		t.Fatalf("expected one slot write, got %d", st.puts)
	}

	all, _ := svc.GetAll(ctx)
	if len(all) != 1 || all[0].ID != "gen-1" {
		t.Fatalf("unexpected store: %+v", all)
	}
}

func TestAdd_RejectsDuplicateAndInvalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	if _, err := svc.Add(ctx, walk("a", t0)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(ctx, walk("a", t0.Add(time.Hour))); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	invalid := []Event{
		{ID: "g", Timestamp: t0, Details: details.Growth{}},
		{ID: "n", Details: details.Walk{}},
		{ID: "d", Timestamp: t0},
		{ID: "s", Timestamp: t0, Details: details.Sleep{EndTime: ptr(t0.Add(-time.Minute))}},
		{ID: "f", Timestamp: t0, Details: details.Feeding{Type: "FORMULA"}},
	}
	for _, e := range invalid {
		if _, err := svc.Add(ctx, e); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", e.ID, err)
		}
	}
}

func TestGetAll_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	offsets := []time.Duration{0, 2 * time.Hour, time.Hour}
	for i, id := range []string{"old", "new", "mid"} {
		if _, err := svc.Add(ctx, walk(id, t0.Add(offsets[i]))); err != nil {
			t.Fatal(err)
		}
	}

	all, err := svc.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if all[0].ID != "new" || all[1].ID != "mid" || all[2].ID != "old" {
		t.Fatalf("unexpected order: %s %s %s", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestUpdate_ReplacesOrNoop(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()
	_, _ = svc.Add(ctx, diaper("d", t0, details.DiaperWet))

	ok, err := svc.Update(ctx, diaper("d", t0, details.DiaperDirty))
	if err != nil || !ok {
		t.Fatalf("update existing: %v %v", ok, err)
	}
	got, _ := svc.GetByID(ctx, "d")
	if got.Details != (details.Diaper{Status: details.DiaperDirty}) {
		t.Fatalf("not replaced: %+v", got)
	}

	writes := st.puts
	ok, err = svc.Update(ctx, diaper("missing", t0, details.DiaperWet))
	if err != nil || ok {
		t.Fatalf("update missing: %v %v", ok, err)
	}
	if st.puts != writes {
		t.Fatalf("no-op update should not write")
	}
}

func TestDelete_RemovesOrNoop(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, _ = svc.Add(ctx, walk("a", t0))
	_, _ = svc.Add(ctx, walk("b", t0.Add(time.Hour)))

	if ok, err := svc.Delete(ctx, "a"); err != nil || !ok {
		t.Fatalf("delete existing: %v %v", ok, err)
	}
	if ok, err := svc.Delete(ctx, "a"); err != nil || ok {
		t.Fatalf("delete missing: %v %v", ok, err)
	}
	if _, err := svc.GetByID(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	all, _ := svc.GetAll(ctx)
	if len(all) != 1 || all[0].ID != "b" {
		t.Fatalf("unexpected store: %+v", all)
	}
}

func TestImport_SecondImportAddsNothing(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()
	_, _ = svc.Add(ctx, walk("existing", t0))

	batch := []Event{
		diaper("c1", t0.Add(time.Hour), details.DiaperWet),
		walk("c2", t0.Add(2*time.Hour)),
	}

	first, err := svc.Import(ctx, batch)
	if err != nil {
		t.Fatal(err)
	}
	if first.Added != 2 || first.Message != "Успешно импортировано 2 записей." {
		t.Fatalf("unexpected first result: %+v", first)
	}
	snapshot := string(st.byName[DefaultSlot])

	second, err := svc.Import(ctx, batch)
	if err != nil {
		t.Fatal(err)
	}
	if second.Added != 0 || second.Duplicates != 2 {
		t.Fatalf("unexpected second result: %+v", second)
	}
	if second.Message != "Нет новых данных для импорта (дубликаты обнаружены)." {
		t.Fatalf("unexpected message %q", second.Message)
	}
	if string(st.byName[DefaultSlot]) != snapshot {
		t.Fatalf("store changed on idempotent import")
	}
}

func TestImport_CountsRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	res, err := svc.Import(ctx, []Event{
		walk("ok", t0),
		{ID: "bad", Timestamp: t0.Add(time.Hour), Details: details.Growth{}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Added != 1 || res.Rejected != 1 || res.Duplicates != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestImport_StoreErrorIsReturned(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService()
	st.failOn = errors.New("disk full")

	if _, err := svc.Import(ctx, []Event{walk("a", t0)}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestService_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	svc.newID = nil // cada goroutine trae su id

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := svc.Add(ctx, walk(fmt.Sprintf("w-%02d", i), t0.Add(time.Duration(i)*time.Minute))); err != nil {
				t.Errorf("add %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	all, _ := svc.GetAll(ctx)
	if len(all) != 20 {
		t.Fatalf("lost writes: %d events", len(all))
	}
}

func TestExportJSON_DecodeBackup(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, _ = svc.Add(ctx, walk("a", t0))
	_, _ = svc.Add(ctx, diaper("b", t0.Add(time.Hour), details.DiaperMixed))

	var buf bytes.Buffer
	if err := svc.ExportJSON(ctx, &buf); err != nil {
		t.Fatal(err)
	}
	restored, err := DecodeBackup(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != 2 || restored[0].ID != "b" || restored[1].ID != "a" {
		t.Fatalf("unexpected backup: %+v", restored)
	}

	// Restaurar sobre el mismo store no duplica nada.
	res, err := svc.Import(ctx, restored)
	if err != nil || res.Added != 0 {
		t.Fatalf("restore over itself: %+v %v", res, err)
	}

	if _, err := DecodeBackup(bytes.NewBufferString("{")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSlotRepository_MissingSlotIsEmpty(t *testing.T) {
	repo := NewSlotRepository(newTestSlots(), "custom")
	all, err := repo.Load(context.Background())
	if err != nil || all == nil || len(all) != 0 {
		t.Fatalf("got %v, %v", all, err)
	}
}

func ptr(t time.Time) *time.Time { return &t }
