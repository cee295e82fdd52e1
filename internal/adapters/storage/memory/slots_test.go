package memory

import (
	"context"
	"errors"
	"testing"

	"baby-journal/internal/ports/slots"
)

func TestSlotStore_GetPut(t *testing.T) {
	ctx := context.Background()
	s := NewSlotStore()

	if _, err := s.Get(ctx, "a"); !errors.Is(err, slots.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	data := []byte(`[1]`)
	if err := s.Put(ctx, "a", data); err != nil {
		t.Fatal(err)
	}
	data[1] = '2'

	got, err := s.Get(ctx, "a")
	if err != nil || string(got) != "[1]" {
		t.Fatalf("got %q, %v", got, err)
	}
	got[1] = '3'
	if again, _ := s.Get(ctx, "a"); string(again) != "[1]" {
		t.Fatalf("stored value shared with caller: %q", again)
	}

	if err := s.Put(ctx, "a", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Get(ctx, "a"); string(got) != "[]" {
		t.Fatalf("put did not replace: %q", got)
	}
}
