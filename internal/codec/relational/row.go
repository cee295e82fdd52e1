// Package relational convierte eventos a la fila plana de la tabla remota
// baby_events y de vuelta.
package relational

import (
	"encoding/json"
	"strings"
)

// Row es una fila de baby_events tal como viaja por HTTP. Los campos
// opcionales se serializan como null (no se omiten) para que todas las
// filas de un lote tengan las mismas columnas.
type Row struct {
	// ID lo asigna el servidor; solo se lee en el pull.
	ID json.RawMessage `json:"id,omitempty"`

	EventDatetime string   `json:"event_datetime"`
	EventName     string   `json:"event_name"`
	EventType     string   `json:"event_type"`
	ValueText     *string  `json:"value_text"`
	ValueNumeric  *float64 `json:"value_numeric"`
	StartDatetime string   `json:"start_datetime"`
	EndDatetime   *string  `json:"end_datetime"`
	Comment       *string  `json:"comment"`
}

// Columns en el orden de la tabla.
var Columns = []string{
	"event_datetime",
	"event_name",
	"event_type",
	"value_text",
	"value_numeric",
	"start_datetime",
	"end_datetime",
	"comment",
}

// serverID devuelve el id remoto como texto ("" si no vino).
func (r Row) serverID() string {
	s := strings.TrimSpace(string(r.ID))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(r.ID, &str); err == nil {
		return str
	}
	return s
}

func text(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nonZero trata 0 como ausente, igual que las filas que ya existen en la tabla.
func nonZero(f *float64) *float64 {
	if f == nil || *f == 0 {
		return nil
	}
	v := *f
	return &v
}
