// Package tabular lee y escribe el formato de hoja de cálculo (CSV con
// nombres de evento en ruso) usado para importaciones y exportaciones masivas.
package tabular

import (
	"fmt"
	"io"
	"time"

	"baby-journal/internal/domain/events"
	"baby-journal/internal/platform/logger"

	"github.com/google/uuid"
)

// Importer convierte texto tabular en eventos. No toca el store: el
// resultado se entrega a events.Service.Import.
type Importer struct {
	loc   *time.Location
	log   logger.Logger
	newID func() string
}

// NewImporter usa loc para las fechas sin zona (nil = UTC).
func NewImporter(loc *time.Location, log logger.Logger) *Importer {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Importer{
		loc:   loc,
		log:   log.With(map[string]any{"component": "tabular"}),
		newID: uuid.NewString,
	}
}

// Parse interpreta el texto completo. Una fila sin fecha legible se salta;
// ningún otro problema de una fila aborta el lote. El resultado va del más
// antiguo al más reciente.
func (im *Importer) Parse(text string) []events.Event {
	lines := splitLines(text)
	if len(lines) < 2 {
		return []events.Event{}
	}

	delim := detectDelimiter(lines[0])
	cols := locate(splitLine(lines[0], delim))

	out := make([]events.Event, 0, len(lines)-1)
	growth := newGrowthBuilder()
	skipped := 0

	for i, line := range lines[1:] {
		fields := splitLine(line, delim)
		if len(fields) < 2 {
			skipped++
			continue
		}
		r := cols.row(fields)

		ts, err := r.timestamp(im.loc)
		if err != nil {
			skipped++
			im.log.Debug("row skipped", map[string]any{"line": i + 2, "error": err.Error()})
			continue
		}

		if field, ok := growthField(r.name); ok {
			growth.add(ts, field, number(r.value), r.note)
			continue
		}

		d, note := decode(r, ts, im.loc)
		out = append(out, events.Event{
			ID:        im.newID(),
			Timestamp: ts,
			Note:      note,
			Details:   d,
		})
	}

	out = append(out, growth.result()...)
	events.SortOldestFirst(out)

	if skipped > 0 {
		im.log.Info("tabular rows skipped", map[string]any{"skipped": skipped, "parsed": len(out)})
	}
	return out
}

// ParseReader decodifica el juego de caracteres (ver decodeText) y parsea.
func (im *Importer) ParseReader(r io.Reader) ([]events.Event, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	text, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	return im.Parse(text), nil
}
