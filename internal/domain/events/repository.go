package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"baby-journal/internal/ports/slots"
)

// DefaultSlot es el nombre del slot donde vive la colección completa.
const DefaultSlot = "baby_events_v1"

// Repository persiste la colección entera: cada escritura la sobrescribe.
type Repository interface {
	Load(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, all []Event) error
}

// SlotRepository serializa la colección como un arreglo JSON de registros
// dentro de un único slot.
type SlotRepository struct {
	store slots.Store
	name  string
}

func NewSlotRepository(store slots.Store, name string) *SlotRepository {
	if name == "" {
		name = DefaultSlot
	}
	return &SlotRepository{store: store, name: name}
}

func (r *SlotRepository) Load(ctx context.Context) ([]Event, error) {
	raw, err := r.store.Get(ctx, r.name)
	if errors.Is(err, slots.ErrNotFound) {
		return []Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", r.name, err)
	}
	if len(raw) == 0 {
		return []Event{}, nil
	}

	var all []Event
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode slot %s: %w", r.name, err)
	}
	return all, nil
}

func (r *SlotRepository) Save(ctx context.Context, all []Event) error {
	if all == nil {
		all = []Event{}
	}
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", r.name, err)
	}
	if err := r.store.Put(ctx, r.name, raw); err != nil {
		return fmt.Errorf("save slot %s: %w", r.name, err)
	}
	return nil
}
