// Package timefmt centraliza los formatos de fecha que cruzan las fronteras
// del sistema: JSON de respaldo, filas relacionales, CSV y volcado SQL.
package timefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// ISOLayout es el formato de los registros JSON (milisegundos, UTC con "Z").
	ISOLayout = "2006-01-02T15:04:05.000Z07:00"
	// DumpLayout es el literal de timestamp del volcado SQL, siempre en UTC.
	DumpLayout = "2006-01-02 15:04:05.000"
	// DateLayout es la columna "Дата" del CSV exportado.
	DateLayout = "2006-01-02"
)

var ErrEmpty = errors.New("empty timestamp")

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04:05Z07",
}

// Sin zona: se interpretan en la location indicada.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
}

// ISO formatea t como en los respaldos JSON.
func ISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Dump formatea t para el volcado SQL.
func Dump(t time.Time) string {
	return t.UTC().Format(DumpLayout)
}

// Parse acepta los formatos conocidos y, como último recurso, la heurística
// de dateparse. loc == nil equivale a UTC.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}

	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
