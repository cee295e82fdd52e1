package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"baby-journal/internal/platform/logger"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("event not found")

// Service es el único punto de acceso al store. Cada mutación es un ciclo
// completo leer-modificar-escribir; mu los serializa porque el handler HTTP
// puede invocarlos en paralelo.
type Service struct {
	mu    sync.Mutex
	repo  Repository
	log   logger.Logger
	newID func() string
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		repo:  repo,
		log:   log.With(map[string]any{"component": "events"}),
		newID: uuid.NewString,
	}
}

// GetAll devuelve todos los eventos, del más reciente al más antiguo.
// El orden se impone al leer; el store no garantiza ninguno.
func (s *Service) GetAll(ctx context.Context) ([]Event, error) {
	s.mu.Lock()
	all, err := s.repo.Load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	SortNewestFirst(all)
	return all, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.Load(ctx)
	if err != nil {
		return Event{}, err
	}
	for _, e := range all {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrNotFound
}

// Add inserta un evento. Si no trae id se genera uno aleatorio.
func (s *Service) Add(ctx context.Context, e Event) (Event, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		e.ID = s.newID()
	}
	e.Note = strings.TrimSpace(e.Note)
	if err := e.Validate(); err != nil {
		return Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.Load(ctx)
	if err != nil {
		return Event{}, err
	}
	for _, cur := range all {
		if cur.ID == e.ID {
			return Event{}, fmt.Errorf("%w: %s", ErrAlreadyExists, e.ID)
		}
	}

	if err := s.repo.Save(ctx, append(all, e)); err != nil {
		return Event{}, err
	}
	s.log.Debug("event added", map[string]any{"id": e.ID, "kind": string(e.Kind())})
	return e, nil
}

// Update reemplaza el evento con el mismo id. Si no existe no hace nada y
// devuelve false.
func (s *Service) Update(ctx context.Context, e Event) (bool, error) {
	e.ID = strings.TrimSpace(e.ID)
	e.Note = strings.TrimSpace(e.Note)
	if err := e.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	found := false
	for i := range all {
		if all[i].ID == e.ID {
			all[i] = e
			found = true
		}
	}
	if !found {
		return false, nil
	}
	if err := s.repo.Save(ctx, all); err != nil {
		return false, err
	}
	return true, nil
}

// Delete elimina por id; ausente es un no-op que devuelve false.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	kept := all[:0]
	for _, e := range all {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Import fusiona candidatos (pull remoto, CSV, respaldo JSON) con el store.
// Los candidatos inválidos se cuentan como rechazados; los duplicados se
// excluyen en silencio y solo se informan como conteo.
func (s *Service) Import(ctx context.Context, candidates []Event) (ImportResult, error) {
	valid := make([]Event, 0, len(candidates))
	rejected := 0
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			rejected++
			s.log.Warn("import candidate rejected", map[string]any{"id": c.ID, "error": err.Error()})
			continue
		}
		valid = append(valid, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Load(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	fresh := Reconcile(current, valid)
	res := ImportResult{
		Added:      len(fresh),
		Duplicates: len(valid) - len(fresh),
		Rejected:   rejected,
		Message:    importMessage(len(fresh)),
	}
	if len(fresh) == 0 {
		return res, nil
	}

	if err := s.repo.Save(ctx, append(current, fresh...)); err != nil {
		return ImportResult{}, err
	}
	s.log.Info("events imported", map[string]any{
		"added":      res.Added,
		"duplicates": res.Duplicates,
		"rejected":   res.Rejected,
	})
	return res, nil
}

// ExportJSON escribe el respaldo completo (arreglo JSON indentado).
func (s *Service) ExportJSON(ctx context.Context, w io.Writer) error {
	all, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}

// DecodeBackup lee un respaldo JSON producido por ExportJSON.
func DecodeBackup(r io.Reader) ([]Event, error) {
	var all []Event
	if err := json.NewDecoder(r).Decode(&all); err != nil {
		return nil, fmt.Errorf("%w: backup: %v", ErrInvalidInput, err)
	}
	return all, nil
}

// SortNewestFirst ordena por timestamp descendente; empata por id para que
// el resultado sea determinista.
func SortNewestFirst(all []Event) {
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].Timestamp.After(all[j].Timestamp)
		}
		return all[i].ID < all[j].ID
	})
}

// SortOldestFirst es el orden cronológico que usan los exportadores.
func SortOldestFirst(all []Event) {
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].Timestamp.Before(all[j].Timestamp)
		}
		return all[i].ID < all[j].ID
	})
}
