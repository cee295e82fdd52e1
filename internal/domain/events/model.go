package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"baby-journal/internal/domain/events/details"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("event already exists")
)

// Event es una ocurrencia registrada en el diario del bebé.
// Timestamp es la hora del hecho o, para eventos con duración, su inicio.
type Event struct {
	ID        string
	Timestamp time.Time
	Note      string

	Details details.Details
}

// Kind devuelve el discriminador del payload ("" si no hay payload).
func (e Event) Kind() details.Kind {
	if e.Details == nil {
		return ""
	}
	return e.Details.Kind()
}

// EndTime devuelve el fin del intervalo para variantes con duración.
func (e Event) EndTime() *time.Time {
	return details.EndOf(e.Details)
}

// Validate comprueba las invariantes del modelo. Los errores envuelven
// ErrInvalidInput.
func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp required", ErrInvalidInput)
	}
	if err := details.Check(e.Details, e.Timestamp); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrInvalidInput, e.Kind(), e.ID, err)
	}
	return nil
}

// dedupKey identifica un evento lógico independientemente de su id.
type dedupKey struct {
	at   int64
	kind details.Kind
}

func keyOf(e Event) dedupKey {
	return dedupKey{at: e.Timestamp.UnixNano(), kind: e.Kind()}
}
