package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"baby-journal/internal/domain/events/details"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes limita los cuerpos de alta e importación.
const maxBodyBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(svc))
		er.Post("/", createEventHandler(svc))
		er.Get("/{eventID}", getEventHandler(svc))
		er.Put("/{eventID}", updateEventHandler(svc))
		er.Delete("/{eventID}", deleteEventHandler(svc))
	})

	r.Post("/import/json", importJSONHandler(svc))
	r.Get("/export/json", exportJSONHandler(svc))
}

// listFilter son los filtros opcionales de GET /events.
type listFilter struct {
	Kinds []details.Kind
	From  *time.Time
	To    *time.Time
	Limit int
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Devuelve los eventos del diario, del más reciente al más antiguo. Permite filtrar por tipos y rango de fechas.
// @Tags events
// @Produce json
// @Param types query string false "Lista CSV de tipos (ej: SLEEP,FEEDING)"
// @Param from query string false "Timestamp mínimo (RFC3339)"
// @Param to query string false "Timestamp máximo (RFC3339)"
// @Param limit query int false "Máximo de eventos a devolver; 0 = todos"
// @Success 200 {array} record
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		all, err := svc.GetAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, filter.apply(all))
	}
}

// getEventHandler godoc
// @Summary Obtener evento
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} record
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// createEventHandler godoc
// @Summary Registrar evento
// @Description Agrega un evento. Si no trae id se genera uno. `type` selecciona la variante y sus campos.
// @Tags events
// @Accept json
// @Produce json
// @Param payload body record true "Evento"
// @Success 201 {object} record
// @Failure 400 {string} string "invalid json / evento inválido"
// @Failure 409 {string} string "event already exists"
// @Router /events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e Event
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&e); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}

		created, err := svc.Add(r.Context(), e)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// updateEventHandler godoc
// @Summary Reemplazar evento
// @Description Reemplaza por completo el evento con el id de la ruta (no hay actualización parcial).
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param payload body record true "Evento completo"
// @Success 200 {object} record
// @Failure 400 {string} string "invalid json / evento inválido"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [put]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e Event
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&e); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
		// El id de la ruta manda.
		e.ID = chi.URLParam(r, "eventID")

		ok, err := svc.Update(r.Context(), e)
		if err != nil {
			writeError(w, err)
			return
		}
		if !ok {
			http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// deleteEventHandler godoc
// @Summary Eliminar evento
// @Tags events
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := svc.Delete(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			writeError(w, err)
			return
		}
		if !ok {
			http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// importJSONHandler godoc
// @Summary Importar respaldo JSON
// @Description Fusiona un arreglo de eventos con el diario. Los duplicados (mismo id, o mismo timestamp y tipo) se omiten y se informan como conteo.
// @Tags transfer
// @Accept json
// @Produce json
// @Param payload body []record true "Eventos"
// @Success 200 {object} ImportResult
// @Failure 400 {string} string "invalid json"
// @Router /import/json [post]
func importJSONHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := DecodeBackup(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := svc.Import(r.Context(), candidates)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// exportJSONHandler godoc
// @Summary Exportar respaldo JSON
// @Tags transfer
// @Produce json
// @Success 200 {array} record
// @Router /export/json [get]
func exportJSONHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.GetAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		name := fmt.Sprintf("baby_journal_%s.json", time.Now().UTC().Format("2006-01-02"))
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		writeJSON(w, http.StatusOK, all)
	}
}

func parseListFilter(r *http.Request) (listFilter, error) {
	var filter listFilter
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			k := details.Kind(strings.ToUpper(strings.TrimSpace(p)))
			if k == "" {
				continue
			}
			if !k.Valid() {
				return listFilter{}, fmt.Errorf("unknown event type %q", p)
			}
			filter.Kinds = append(filter.Kinds, k)
		}
	}

	// from/to RFC3339
	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return listFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return listFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return listFilter{}, errors.New("limit must be a non-negative integer")
		}
		filter.Limit = n
	}
	return filter, nil
}

// apply conserva el orden de entrada.
func (f listFilter) apply(all []Event) []Event {
	out := make([]Event, 0, len(all))
	for _, e := range all {
		if len(f.Kinds) > 0 && !containsKind(f.Kinds, e.Kind()) {
			continue
		}
		if f.From != nil && e.Timestamp.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Timestamp.After(*f.To) {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

func containsKind(kinds []details.Kind, k details.Kind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrAlreadyExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en los handlers de cada módulo para no crear un
// paquete de helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
