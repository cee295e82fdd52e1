package remote

import (
	"context"
	"fmt"

	"baby-journal/internal/codec/relational"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/platform/logger"
)

// EventStore es lo que el bridge necesita del servicio de eventos.
type EventStore interface {
	GetAll(ctx context.Context) ([]events.Event, error)
	Import(ctx context.Context, candidates []events.Event) (events.ImportResult, error)
}

type PushResult struct {
	Events  int    `json:"events"`
	Rows    int    `json:"rows"`
	Message string `json:"message"`
}

type PullResult struct {
	events.ImportResult
	Fetched int `json:"fetched"`
	Skipped int `json:"skipped"`
}

type CheckResult struct {
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"statusCode"`
	Endpoint   string `json:"endpoint"`
}

// Bridge combina el store local con la tabla remota. No serializa
// operaciones: se asume una sincronización a la vez.
type Bridge struct {
	client *Client
	cfgErr error
	store  EventStore
	log    logger.Logger
}

// NewBridge no falla con una configuración vacía o inválida: el error se
// devuelve en cada operación para que la API pueda arrancar sin remoto.
func NewBridge(cfg Config, store EventStore, log logger.Logger) *Bridge {
	if log == nil {
		log = logger.Discard()
	}
	client, err := NewClient(cfg)
	return &Bridge{
		client: client,
		cfgErr: err,
		store:  store,
		log:    log.With(map[string]any{"component": "remote"}),
	}
}

func (b *Bridge) Configured() bool { return b.cfgErr == nil }

// Push aplana todos los eventos y los envía en una sola petición. Si el
// servidor responde no-2xx, falla todo el push.
func (b *Bridge) Push(ctx context.Context) (PushResult, error) {
	if b.cfgErr != nil {
		return PushResult{}, b.cfgErr
	}
	all, err := b.store.GetAll(ctx)
	if err != nil {
		return PushResult{}, fmt.Errorf("push: load events: %w", err)
	}
	events.SortOldestFirst(all)
	rows := relational.FlattenAll(all)

	res := PushResult{Events: len(all), Rows: len(rows)}
	if len(rows) == 0 {
		res.Message = "Нет данных для отправки."
		return res, nil
	}
	if err := b.client.InsertRows(ctx, rows); err != nil {
		b.log.Warn("push failed", map[string]any{"rows": len(rows), "error": err.Error()})
		return PushResult{}, err
	}
	res.Message = fmt.Sprintf("Отправлено %d записей.", len(rows))
	b.log.Info("push done", map[string]any{"events": res.Events, "rows": res.Rows})
	return res, nil
}

// Pull lee las filas remotas, las reconstruye y las fusiona con el store
// mediante la reconciliación normal. Nunca reemplaza datos locales.
func (b *Bridge) Pull(ctx context.Context) (PullResult, error) {
	if b.cfgErr != nil {
		return PullResult{}, b.cfgErr
	}
	rows, err := b.client.FetchRows(ctx)
	if err != nil {
		b.log.Warn("pull failed", map[string]any{"error": err.Error()})
		return PullResult{}, err
	}

	candidates, bad := relational.ReconstructAll(rows)
	for _, e := range bad {
		b.log.Warn("remote row skipped", map[string]any{"error": e.Error()})
	}

	imported, err := b.store.Import(ctx, candidates)
	if err != nil {
		return PullResult{}, fmt.Errorf("pull: import: %w", err)
	}
	b.log.Info("pull done", map[string]any{"fetched": len(rows), "added": imported.Added})
	return PullResult{ImportResult: imported, Fetched: len(rows), Skipped: len(bad)}, nil
}

// Check comprueba que el endpoint responde.
func (b *Bridge) Check(ctx context.Context) (CheckResult, error) {
	if b.cfgErr != nil {
		return CheckResult{}, b.cfgErr
	}
	status, err := b.client.Ping(ctx)
	res := CheckResult{StatusCode: status, Endpoint: b.client.endpoint}
	if err != nil {
		return res, err
	}
	res.Reachable = true
	return res, nil
}
