package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"baby-journal/internal/ports/slots"
)

// DefaultSlot guarda el perfil aparte de los eventos.
const DefaultSlot = "baby_profile_v1"

type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) error
}

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

func (r *SlotRepository) Get(ctx context.Context) (Profile, error) {
	raw, err := r.store.Get(ctx, r.name)
	if errors.Is(err, slots.ErrNotFound) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load slot %s: %w", r.name, err)
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("decode slot %s: %w", r.name, err)
	}
	return p, nil
}

func (r *SlotRepository) Save(ctx context.Context, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.name, raw)
}
