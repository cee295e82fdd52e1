// Package transfer expone por HTTP los formatos de intercambio masivo: CSV
// de hoja de cálculo (entrada y salida) y volcado SQL.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"baby-journal/internal/codec/tabular"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/platform/logger"
	"baby-journal/internal/sqldump"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	events   *events.Service
	importer *tabular.Importer
	dump     *sqldump.Renderer
	log      logger.Logger
	now      func() time.Time
}

func NewHandler(svc *events.Service, importer *tabular.Importer, dump *sqldump.Renderer, log logger.Logger) *Handler {
	if dump == nil {
		dump = sqldump.NewRenderer("")
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		events:   svc,
		importer: importer,
		dump:     dump,
		log:      log.With(map[string]any{"component": "transfer"}),
		now:      time.Now,
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/import/csv", h.importCSV)
	r.Get("/export/csv", h.exportCSV)
	r.Get("/export/sql", h.exportSQL)
}

type csvImportResponse struct {
	events.ImportResult
	Parsed int `json:"parsed"`
}

// importCSV godoc
// @Summary Importar CSV
// @Description Acepta el archivo completo como cuerpo (UTF-8, UTF-16 con BOM o Windows-1251). Delimitador ; tab o coma.
// @Tags transfer
// @Accept text/csv
// @Produce json
// @Success 200 {object} csvImportResponse
// @Failure 400 {string} string "archivo ilegible"
// @Router /import/csv [post]
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	parsed, err := h.importer.ParseReader(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		http.Error(w, "unreadable file: "+err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.events.Import(r.Context(), parsed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, csvImportResponse{ImportResult: res, Parsed: len(parsed)})
}

// exportCSV godoc
// @Summary Exportar CSV
// @Tags transfer
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Router /export/csv [get]
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	all, err := h.events.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", h.attachment("csv"))
	// Con el cuerpo ya empezado solo queda registrar el fallo.
	if err := tabular.Export(w, all); err != nil {
		h.log.Warn("csv export interrupted", map[string]any{"events": len(all), "error": err.Error()})
	}
}

// exportSQL godoc
// @Summary Volcado SQL
// @Description Un único INSERT multi-fila para la tabla relacional.
// @Tags transfer
// @Produce text/plain
// @Success 200 {string} string "SQL"
// @Router /export/sql [get]
func (h *Handler) exportSQL(w http.ResponseWriter, r *http.Request) {
	all, err := h.events.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", h.attachment("sql"))
	if err := h.dump.WriteTo(w, all); err != nil {
		h.log.Warn("sql export interrupted", map[string]any{"events": len(all), "error": err.Error()})
	}
}

func (h *Handler) attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="baby_journal_%s.%s"`, h.now().UTC().Format("2006-01-02"), ext)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, events.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
