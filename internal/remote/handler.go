package remote

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, b *Bridge) {
	r.Route("/sync", func(sr chi.Router) {
		sr.Post("/push", pushHandler(b))
		sr.Post("/pull", pullHandler(b))
		sr.Get("/check", checkHandler(b))
	})
}

type errorResponse struct {
	Error          string `json:"error"`
	Kind           string `json:"kind"` // network | status | config
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
}

// pushHandler godoc
// @Summary Enviar diario al remoto
// @Description Aplana todos los eventos y los envía en un solo POST con merge de duplicados.
// @Tags sync
// @Produce json
// @Success 200 {object} PushResult
// @Failure 502 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /sync/push [post]
func pushHandler(b *Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := b.Push(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// pullHandler godoc
// @Summary Traer eventos del remoto
// @Description Reconstruye las filas remotas y las fusiona con el diario local (sin reemplazar nada).
// @Tags sync
// @Produce json
// @Success 200 {object} PullResult
// @Failure 502 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /sync/pull [post]
func pullHandler(b *Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := b.Pull(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// checkHandler godoc
// @Summary Probar conexión
// @Tags sync
// @Produce json
// @Success 200 {object} CheckResult
// @Failure 502 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /sync/check [get]
func checkHandler(b *Bridge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := b.Check(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// writeError distingue "no hay red" de "el servidor respondió mal" para que
// el cliente sepa qué revisar.
func writeError(w http.ResponseWriter, err error) {
	var ne *NetworkError
	var se *StatusError
	switch {
	case errors.Is(err, ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Kind: "config"})
	case errors.As(err, &ne):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error(), Kind: "network"})
	case errors.As(err, &se):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error(), Kind: "status", UpstreamStatus: se.StatusCode})
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
