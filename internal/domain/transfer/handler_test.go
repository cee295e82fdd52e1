package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"baby-journal/internal/adapters/storage/memory"
	"baby-journal/internal/codec/tabular"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/events/details"
	"baby-journal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (http.Handler, *events.Service) {
	t.Helper()
	svc := events.NewService(events.NewSlotRepository(memory.NewSlotStore(), ""), nil)
	h := NewHandler(svc, tabular.NewImporter(time.UTC, nil), nil, nil)
	h.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r, svc
}

const sampleCSV = "Дата;Событие;Тип;Значение;Комментарий\n" +
	"2024-01-10 08:00;Прогулка;;;парк\n" +
	"2024-01-10 09:00;Подгузник;Мокрый;;\n" +
	"нет даты;Прогулка;;;\n"

func TestImportCSV_IsIdempotent(t *testing.T) {
	r, svc := newTestRouter(t)

	post := func() csvImportResponse {
		req := httptest.NewRequest(http.MethodPost, "/import/csv", strings.NewReader(sampleCSV))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
		}
		var res csvImportResponse
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatal(err)
		}
		return res
	}

	first := post()
	if first.Parsed != 2 || first.Added != 2 {
		t.Fatalf("unexpected first import: %+v", first)
	}
	second := post()
	if second.Added != 0 || second.Duplicates != 2 {
		t.Fatalf("unexpected second import: %+v", second)
	}

	all, err := svc.GetAll(context.Background())
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 stored events, got %d (%v)", len(all), err)
	}
}

func TestExportCSVAndSQL(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/import/csv", strings.NewReader(sampleCSV))
	r.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/csv", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="baby_journal_2024-03-01.csv"` {
		t.Fatalf("unexpected disposition: %q", got)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "Дата,Событие") {
		t.Fatalf("unexpected csv:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/sql", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "INSERT INTO baby_events") || strings.Count(body, "'Прогулка'") != 1 {
		t.Fatalf("unexpected dump:\n%s", body)
	}
}

func TestExportSQL_Empty(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/sql", nil))
	if rec.Body.String() != "-- No events to export\n" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

// brokenWriter simula un cliente que cortó la conexión a mitad de la descarga.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

type warnLogger struct {
	msgs *[]string
}

func (l warnLogger) With(map[string]any) logger.Logger  { return l }
func (l warnLogger) Debug(string, map[string]any)       {}
func (l warnLogger) Info(string, map[string]any)        {}
func (l warnLogger) Warn(msg string, _ map[string]any)  { *l.msgs = append(*l.msgs, msg) }
func (l warnLogger) Error(msg string, _ map[string]any) { *l.msgs = append(*l.msgs, msg) }

func TestExport_WriteErrorsAreLogged(t *testing.T) {
	svc := events.NewService(events.NewSlotRepository(memory.NewSlotStore(), ""), nil)
	_, _ = svc.Add(context.Background(), events.Event{ID: "w", Timestamp: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), Details: details.Walk{}})

	var msgs []string
	h := NewHandler(svc, tabular.NewImporter(time.UTC, nil), nil, warnLogger{msgs: &msgs})

	h.exportCSV(brokenWriter{httptest.NewRecorder()}, httptest.NewRequest(http.MethodGet, "/export/csv", nil))
	h.exportSQL(brokenWriter{httptest.NewRecorder()}, httptest.NewRequest(http.MethodGet, "/export/sql", nil))

	if len(msgs) != 2 || msgs[0] != "csv export interrupted" || msgs[1] != "sql export interrupted" {
		t.Fatalf("unexpected log: %v", msgs)
	}
}
