package profile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/events/details"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

// EventLister es lo único que el perfil necesita del diario.
type EventLister interface {
	GetAll(ctx context.Context) ([]events.Event, error)
}

type Service struct {
	repo   Repository
	events EventLister
	now    func() time.Time
}

func NewService(repo Repository, ev EventLister) *Service {
	return &Service{
		repo:   repo,
		events: ev,
		now:    time.Now,
	}
}

type UpdateInput struct {
	Name          string
	BirthDate     time.Time
	BirthWeightKg float64
	BirthHeightCm float64
}

func (s *Service) Get(ctx context.Context) (Profile, error) {
	return s.repo.Get(ctx)
}

// Update reemplaza el perfil completo.
func (s *Service) Update(ctx context.Context, in UpdateInput) (Profile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Profile{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if in.BirthDate.IsZero() {
		return Profile{}, fmt.Errorf("%w: birth date required", ErrInvalidInput)
	}
	if in.BirthWeightKg < 0 || in.BirthHeightCm < 0 {
		return Profile{}, fmt.Errorf("%w: negative measurement", ErrInvalidInput)
	}

	p := Profile{
		Name:          name,
		BirthDate:     in.BirthDate.UTC(),
		BirthWeightKg: in.BirthWeightKg,
		BirthHeightCm: in.BirthHeightCm,
		UpdatedAt:     s.now().UTC(),
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Summary combina el perfil con la edad actual y la última medida distinta
// de cero de cada tipo.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return Summary{}, err
	}
	all, err := s.events.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	days, age := Age(p.BirthDate, s.now())
	sum := Summary{
		Profile:         p,
		AgeDays:         days,
		Age:             age,
		CurrentWeightKg: p.BirthWeightKg,
		CurrentHeightCm: p.BirthHeightCm,
	}

	// GetAll ya viene del más reciente al más antiguo.
	var gotWeight, gotHeight bool
	for _, e := range all {
		g, ok := e.Details.(details.Growth)
		if !ok {
			continue
		}
		if !gotWeight && g.WeightKg != nil && *g.WeightKg > 0 {
			sum.CurrentWeightKg, gotWeight = *g.WeightKg, true
		}
		if !gotHeight && g.HeightCm != nil && *g.HeightCm > 0 {
			sum.CurrentHeightCm, gotHeight = *g.HeightCm, true
		}
		if sum.CurrentHeadCm == nil && g.HeadCircumferenceCm != nil && *g.HeadCircumferenceCm > 0 {
			v := *g.HeadCircumferenceCm
			sum.CurrentHeadCm = &v
		}
	}
	return sum, nil
}

const daysPerMonth = 30.44

// Age devuelve los días transcurridos (redondeados hacia arriba) y el texto
// que se muestra: "12 дней", "3 мес 5 дн" o "Ожидается через 4 дн." si la
// fecha aún no llegó.
func Age(birth, now time.Time) (int, string) {
	diff := now.Sub(birth)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case now.Before(birth):
		return days, fmt.Sprintf("Ожидается через %d дн.", days)
	case days < 30:
		return days, fmt.Sprintf("%d дней", days)
	default:
		months := int(float64(days) / daysPerMonth)
		rest := int(math.Mod(float64(days), daysPerMonth))
		return days, fmt.Sprintf("%d мес %d дн", months, rest)
	}
}
