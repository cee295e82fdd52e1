package details

import (
	"errors"
	"fmt"
	"time"
)

// Kind es el discriminador del evento.
type Kind string

const (
	KindSleep     Kind = "SLEEP"
	KindFeeding   Kind = "FEEDING"
	KindPumping   Kind = "PUMPING"
	KindDiaper    Kind = "DIAPER"
	KindWalk      Kind = "WALK"
	KindBath      Kind = "BATH"
	KindGrowth    Kind = "GROWTH"
	KindHealth    Kind = "HEALTH"
	KindMood      Kind = "MOOD"
	KindMilestone Kind = "MILESTONE"
)

// Kinds lista todas las variantes en orden estable. Los tests de cada codec
// la recorren para asegurar que ninguna variante quedó sin mapear.
var Kinds = []Kind{
	KindSleep,
	KindFeeding,
	KindPumping,
	KindDiaper,
	KindWalk,
	KindBath,
	KindGrowth,
	KindHealth,
	KindMood,
	KindMilestone,
}

func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

var (
	ErrEndBeforeStart  = errors.New("end time precedes start time")
	ErrNoMeasurement   = errors.New("growth requires at least one non-zero measurement")
	ErrUnknownVariant  = errors.New("unknown event variant")
	ErrInvalidSubvalue = errors.New("invalid enumerated value")
)

// Details es el payload propio de cada variante. La interfaz está sellada:
// solo los tipos de este paquete pueden implementarla.
type Details interface {
	Kind() Kind
	validate(start time.Time) error
}

// Durational lo implementan las variantes que pueden abarcar un intervalo.
// End() == nil significa "en curso".
type Durational interface {
	Details
	End() *time.Time
}

// Check valida las invariantes del payload respecto al inicio del evento.
func Check(d Details, start time.Time) error {
	if d == nil {
		return ErrUnknownVariant
	}
	return d.validate(start)
}

// EndOf devuelve la hora de fin si la variante la tiene.
func EndOf(d Details) *time.Time {
	if dd, ok := d.(Durational); ok {
		return dd.End()
	}
	return nil
}

func checkEnd(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return ErrEndBeforeStart
	}
	return nil
}

func checkEnum[T ~string](v T, allowed ...T) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidSubvalue, string(v))
}
