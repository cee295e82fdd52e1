// Package sqldump genera un INSERT masivo sobre la tabla baby_events para
// cargar el diario a mano en PostgreSQL.
package sqldump

import (
	"io"
	"strconv"
	"strings"
	"time"

	"baby-journal/internal/codec/relational"
	"baby-journal/internal/codec/timefmt"
	"baby-journal/internal/domain/events"
)

const (
	DefaultTable = "baby_events"
	// Empty es el resultado cuando no hay eventos.
	Empty = "-- No events to export\n"
)

type Renderer struct {
	table string
	now   func() time.Time
}

func NewRenderer(table string) *Renderer {
	if strings.TrimSpace(table) == "" {
		table = DefaultTable
	}
	return &Renderer{table: table, now: time.Now}
}

// Render ordena por timestamp ascendente, aplana y escribe un único INSERT.
// Dos renders del mismo conjunto solo difieren en la línea "-- Generated".
func (r *Renderer) Render(all []events.Event) string {
	sorted := append([]events.Event(nil), all...)
	events.SortOldestFirst(sorted)

	rows := relational.FlattenAll(sorted)
	if len(rows) == 0 {
		return Empty
	}

	var b strings.Builder
	b.WriteString("-- PostgreSQL dump of baby journal events\n")
	b.WriteString("-- Generated: " + r.now().UTC().Format(time.RFC3339) + "\n")
	b.WriteString("-- Target Table: " + r.table + "\n\n")
	b.WriteString("INSERT INTO " + r.table + " (" + strings.Join(relational.Columns, ", ") + ")\nVALUES\n")

	for i, row := range rows {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(values(row))
	}
	b.WriteString(";\n")
	return b.String()
}

// WriteTo escribe el resultado de Render en w.
func (r *Renderer) WriteTo(w io.Writer, all []events.Event) error {
	_, err := io.WriteString(w, r.Render(all))
	return err
}

func values(r relational.Row) string {
	cols := []string{
		timestamp(r.EventDatetime),
		quote(r.EventName),
		quote(r.EventType),
		optional(r.ValueText),
		number(r.ValueNumeric),
		timestamp(r.StartDatetime),
		optionalTimestamp(r.EndDatetime),
		optional(r.Comment),
	}
	return "(" + strings.Join(cols, ", ") + ")"
}

// quote escapa comillas simples duplicándolas.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return "NULL"
	}
	return quote(*s)
}

func number(f *float64) string {
	if f == nil {
		return "NULL"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// timestamp reescribe el ISO de la fila como 'YYYY-MM-DD HH:MM:SS.mmm' UTC.
func timestamp(iso string) string {
	t, err := timefmt.Parse(iso, time.UTC)
	if err != nil {
		return "NULL"
	}
	return quote(timefmt.Dump(t))
}

func optionalTimestamp(iso *string) string {
	if iso == nil {
		return "NULL"
	}
	return timestamp(*iso)
}
