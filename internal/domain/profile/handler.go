package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"baby-journal/internal/codec/timefmt"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/profile", getProfileHandler(svc))
	r.Put("/profile", updateProfileHandler(svc))
}

type updateProfileRequest struct {
	Name          string  `json:"name"`
	BirthDate     string  `json:"birthDate"` // YYYY-MM-DD o RFC3339
	BirthWeightKg float64 `json:"birthWeight"`
	BirthHeightCm float64 `json:"birthHeight"`
}

// getProfileHandler godoc
// @Summary Perfil del bebé
// @Description Devuelve el perfil con la edad y las últimas medidas de crecimiento (o las de nacimiento si no hay).
// @Tags profile
// @Produce json
// @Success 200 {object} Summary
// @Failure 404 {string} string "profile not found"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

// updateProfileHandler godoc
// @Summary Guardar perfil
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body updateProfileRequest true "Perfil"
// @Success 200 {object} Profile
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Router /profile [put]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		birth, err := timefmt.Parse(req.BirthDate, nil)
		if err != nil && strings.TrimSpace(req.BirthDate) != "" {
			http.Error(w, "birthDate must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), UpdateInput{
			Name:          req.Name,
			BirthDate:     birth,
			BirthWeightKg: req.BirthWeightKg,
			BirthHeightCm: req.BirthHeightCm,
		})
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
