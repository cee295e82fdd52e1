package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"baby-journal/internal/adapters/storage/memory"
	"baby-journal/internal/codec/relational"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/events/details"

	"github.com/go-chi/chi/v5"
)

func newTestStore() *events.Service {
	return events.NewService(events.NewSlotRepository(memory.NewSlotStore(), ""), nil)
}

func f(v float64) *float64 { return &v }

var t0 = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

func TestPush_SendsAllRowsInOneRequest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	_, _ = store.Add(ctx, events.Event{ID: "w1", Timestamp: t0, Details: details.Walk{}})
	_, _ = store.Add(ctx, events.Event{ID: "g1", Timestamp: t0.Add(time.Hour), Details: details.Growth{WeightKg: f(4.2), HeightCm: f(55)}})

	var (
		mu      sync.Mutex
		calls   int32
		got     []relational.Row
		rawBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodPost {
			t.Errorf("method=%s", r.Method)
		}
		if r.Header.Get("Prefer") != "resolution=merge-duplicates" {
			t.Errorf("Prefer=%q", r.Header.Get("Prefer"))
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("Authorization=%q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type=%q", r.Header.Get("Content-Type"))
		}
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		rawBody = string(b)
		_ = json.Unmarshal(b, &got)
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	b := NewBridge(Config{Endpoint: srv.URL, Token: " secret "}, store, nil)
	res, err := b.Push(ctx)
	if err != nil {
		t.Fatal(err)
	}
	mu.Lock()
	defer mu.Unlock()
	if atomic.LoadInt32(&calls) != 1 || res.Events != 2 || res.Rows != 3 || res.Message != "Отправлено 3 записей." {
		t.Fatalf("unexpected result: %+v (calls=%d)", res, calls)
	}
	if len(got) != 3 || got[0].EventType != "WALK" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if !strings.Contains(rawBody, `"value_text":null`) {
		t.Fatalf("optional columns must be sent as null: %s", rawBody)
	}
}

func TestPush_EmptyStoreSkipsRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	res, err := NewBridge(Config{Endpoint: srv.URL}, newTestStore(), nil).Push(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&calls) != 0 || res.Rows != 0 || res.Message != "Нет данных для отправки." {
		t.Fatalf("unexpected: %+v calls=%d", res, calls)
	}
}

func TestPush_StatusErrorKeepsBody(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	_, _ = store.Add(ctx, events.Event{ID: "w1", Timestamp: t0, Details: details.Walk{}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"JWT expired"}`))
	}))
	defer srv.Close()

	_, err := NewBridge(Config{Endpoint: srv.URL}, store, nil).Push(ctx)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %T %v", err, err)
	}
	if se.StatusCode != http.StatusUnauthorized || !strings.Contains(se.Body, "JWT expired") || IsNetwork(err) {
		t.Fatalf("unexpected error: %+v", se)
	}
}

func TestPull_MergesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	body := `[
		{"id": 1, "event_datetime": "2024-01-10T08:00:00.000Z", "event_name": "Прогулка", "event_type": "WALK",
		 "value_text": null, "value_numeric": null, "start_datetime": "2024-01-10T08:00:00.000Z", "end_datetime": null, "comment": "парк"},
		{"id": 2, "event_datetime": "2024-01-11T08:00:00.000Z", "event_name": "Прогулка", "event_type": "WALK",
		 "value_text": null, "value_numeric": null, "start_datetime": "2024-01-11T08:00:00.000Z", "end_datetime": null, "comment": null},
		{"id": 3, "event_datetime": "ayer", "event_name": "Прогулка", "event_type": "WALK"}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.Method != http.MethodGet || q.Get("select") != "*" || q.Get("order") != "event_datetime.desc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	b := NewBridge(Config{Endpoint: srv.URL}, store, nil)

	first, err := b.Pull(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first.Fetched != 3 || first.Skipped != 1 || first.Added != 2 {
		t.Fatalf("unexpected first pull: %+v", first)
	}

	second, err := b.Pull(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if second.Added != 0 || second.Duplicates != 2 {
		t.Fatalf("unexpected second pull: %+v", second)
	}

	all, _ := store.GetAll(ctx)
	if len(all) != 2 || all[1].Note != "парк" {
		t.Fatalf("unexpected store: %+v", all)
	}
}

func TestPull_RowsWithoutIDStayDistinct(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	body := `[
		{"event_datetime": "2024-01-01T10:00:00Z", "event_name": "ГВ", "event_type": "FEEDING", "start_datetime": "2024-01-01T10:00:00Z"},
		{"event_datetime": "2024-01-01T10:00:00Z", "event_name": "ГВ", "event_type": "FEEDING", "start_datetime": "2024-01-01T10:00:00Z"}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	b := NewBridge(Config{Endpoint: srv.URL}, store, nil)
	res, err := b.Pull(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Added != 2 {
		t.Fatalf("unexpected pull: %+v", res)
	}

	all, _ := store.GetAll(ctx)
	if len(all) != 2 || all[0].ID == all[1].ID {
		t.Fatalf("expected two events with distinct ids, got %+v", all)
	}

	if ok, err := store.Delete(ctx, all[0].ID); err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if rest, _ := store.GetAll(ctx); len(rest) != 1 {
		t.Fatalf("deleting one event removed %d", 2-len(rest))
	}

	// El evento que queda comparte hora y tipo con las dos filas.
	again, err := b.Pull(ctx)
	if err != nil || again.Added != 0 || again.Duplicates != 2 {
		t.Fatalf("unexpected second pull: %+v %v", again, err)
	}
}

func TestPull_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewBridge(Config{Endpoint: url, Timeout: time.Second}, newTestStore(), nil).Pull(context.Background())
	if !IsNetwork(err) {
		t.Fatalf("expected network error, got %T %v", err, err)
	}
}

func TestCheck(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusMethodNotAllowed)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method=%s", r.Method)
		}
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	b := NewBridge(Config{Endpoint: srv.URL}, newTestStore(), nil)

	res, err := b.Check(context.Background())
	if err != nil || !res.Reachable || res.StatusCode != http.StatusMethodNotAllowed || res.Endpoint != srv.URL {
		t.Fatalf("unexpected: %+v %v", res, err)
	}

	status.Store(http.StatusNotFound)
	res, err = b.Check(context.Background())
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound || res.Reachable {
		t.Fatalf("expected status error, got %+v %v", res, err)
	}
}

func TestNotConfigured(t *testing.T) {
	for _, cfg := range []Config{{}, {Endpoint: "  "}, {Endpoint: "ftp://example.com/x"}} {
		b := NewBridge(cfg, newTestStore(), nil)
		if b.Configured() {
			t.Fatalf("%+v: should not be configured", cfg)
		}
		if _, err := b.Push(context.Background()); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("%+v: expected ErrNotConfigured, got %v", cfg, err)
		}
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	cases := []struct {
		name     string
		cfg      Config
		wantCode int
		wantKind string
	}{
		{"not configured", Config{}, http.StatusServiceUnavailable, "config"},
		{"upstream status", Config{Endpoint: srv.URL}, http.StatusBadGateway, "status"},
	}
	for _, tc := range cases {
		r := chi.NewRouter()
		RegisterRoutes(r, NewBridge(tc.cfg, newTestStore(), nil))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sync/check", nil))
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: status=%d", tc.name, rec.Code)
		}
		var body errorResponse
		_ = json.NewDecoder(rec.Body).Decode(&body)
		if body.Kind != tc.wantKind {
			t.Fatalf("%s: kind=%q", tc.name, body.Kind)
		}
	}
}
