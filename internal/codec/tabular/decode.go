package tabular

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"baby-journal/internal/codec/timefmt"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/events/details"
	"baby-journal/internal/vocab"
)

// row es una línea de datos ya separada en columnas.
type row struct {
	date, name, typ, value, start, end, note string
}

func (l layout) row(fields []string) row {
	value := cell(fields, l.numeric)
	if value == "" {
		value = cell(fields, l.value)
	}
	return row{
		date:  cell(fields, l.date),
		name:  cell(fields, l.event),
		typ:   cell(fields, l.typ),
		value: value,
		start: cell(fields, l.start),
		end:   cell(fields, l.end),
		note:  cell(fields, l.comment),
	}
}

var (
	nonNumeric  = regexp.MustCompile(`[^\d,.\-]`)
	leadingReal = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// number normaliza el valor según la convención local ("1 234,5 мл" ->
// 1234.5). Lo que no empieza por un número vale 0.
func number(raw string) float64 {
	s := strings.Join(strings.Fields(raw), "")
	s = nonNumeric.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", ".")
	m := leadingReal.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func positive(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// timestamp usa la columna de inicio si trae una fecha y hora; si no, la de
// fecha.
func (r row) timestamp(loc *time.Location) (time.Time, error) {
	s := r.start
	if len([]rune(strings.TrimSpace(s))) <= 5 {
		s = r.date
	}
	return timefmt.Parse(s, loc)
}

// endTime descarta fines ilegibles o anteriores al inicio.
func (r row) endTime(start time.Time, loc *time.Location) *time.Time {
	if strings.TrimSpace(r.end) == "" {
		return nil
	}
	t, err := timefmt.Parse(r.end, loc)
	if err != nil || t.Before(start) {
		return nil
	}
	return &t
}

// feedingNote conserva el texto del tipo cuando no es una etiqueta conocida
// (por ejemplo la marca de la leche).
func feedingNote(r row) string {
	if _, ok := vocab.MatchSide(r.typ); ok {
		return r.note
	}
	if _, ok := vocab.MatchFeedingType(r.typ); ok {
		return r.note
	}
	return joinNonEmpty(r.typ, r.note)
}

// growthField indica qué medida transporta una fila de crecimiento.
func growthField(name string) (func(*details.Growth) **float64, bool) {
	switch vocab.Fold(name) {
	case vocab.Fold(vocab.CSVWeight):
		return func(g *details.Growth) **float64 { return &g.WeightKg }, true
	case vocab.Fold(vocab.CSVHeight):
		return func(g *details.Growth) **float64 { return &g.HeightCm }, true
	case vocab.Fold(vocab.CSVHead):
		return func(g *details.Growth) **float64 { return &g.HeadCircumferenceCm }, true
	}
	return nil, false
}

// decode convierte una fila que no es de crecimiento. Nunca devuelve un
// payload nil: lo desconocido termina como HEALTH/OTHER.
func decode(r row, ts time.Time, loc *time.Location) (details.Details, string) {
	end := r.endTime(ts, loc)
	val := number(r.value)
	side, _ := vocab.MatchSide(r.typ)

	switch vocab.Fold(r.name) {
	case vocab.Fold(vocab.CSVSleep), vocab.Fold(vocab.RowNightSleep), vocab.Fold(vocab.RowDaySleep):
		subtype, ok := vocab.MatchSleep(r.typ)
		if !ok {
			subtype, _ = vocab.MatchSleep(r.name)
		}
		return details.Sleep{Subtype: subtype, EndTime: end}, r.note

	case vocab.Fold(vocab.CSVWalk):
		return details.Walk{EndTime: end}, r.note

	case vocab.Fold(vocab.CSVBath):
		return details.Bath{EndTime: end}, r.note

	case vocab.Fold(vocab.CSVBreastFeed), vocab.Fold(vocab.RowBreastFeed):
		return details.Feeding{Type: details.FeedingBreast, AmountMl: positive(val), Side: side, EndTime: end}, r.note

	case vocab.Fold(vocab.CSVBottle), vocab.Fold(vocab.RowBottleFeed):
		return details.Feeding{Type: details.FeedingBottle, AmountMl: positive(val), Side: side, EndTime: end}, feedingNote(r)

	case vocab.Fold(vocab.CSVSolids), vocab.Fold(vocab.RowSolidsFeed):
		return details.Feeding{Type: details.FeedingSolids, AmountMl: positive(val), Side: side, EndTime: end}, feedingNote(r)

	case vocab.Fold(vocab.CSVPumping):
		return details.Pumping{AmountMl: val, Side: side}, r.note

	case vocab.Fold(vocab.CSVDiaper):
		status, ok := vocab.MatchDiaper(r.typ)
		if !ok {
			status = details.DiaperMixed
		}
		return details.Diaper{Status: status}, r.note

	case vocab.Fold(vocab.CSVMood):
		mood := r.typ
		if mood == "" {
			mood = vocab.DefaultMood
		}
		return details.Mood{Mood: mood}, r.note

	case vocab.Fold(vocab.CSVMilestone), vocab.Fold(vocab.RowMilestone):
		// Sin tipo, el comentario pasa a ser el título y no se repite como nota.
		if r.typ == "" {
			return details.Milestone{Title: r.note}, ""
		}
		return details.Milestone{Title: r.typ}, r.note
	}

	if subtype, ok := vocab.HealthByLabel(r.name); ok {
		return details.Health{Subtype: subtype, Value: r.typ, Temperature: positive(val)}, r.note
	}
	return details.Health{Subtype: details.HealthOther}, joinNonEmpty(r.name, r.typ, r.note)
}

// growthBuilder acumula las filas de crecimiento que comparten timestamp.
type growthBuilder struct {
	order []int64
	byTS  map[int64]*events.Event
}

func newGrowthBuilder() *growthBuilder {
	return &growthBuilder{byTS: make(map[int64]*events.Event)}
}

func (b *growthBuilder) add(ts time.Time, field func(*details.Growth) **float64, value float64, note string) {
	key := ts.UnixNano()
	e, ok := b.byTS[key]
	if !ok {
		e = &events.Event{
			ID:        "growth-" + timefmt.ISO(ts),
			Timestamp: ts,
			Details:   details.Growth{},
		}
		b.byTS[key] = e
		b.order = append(b.order, key)
	}
	if v := positive(value); v != nil {
		g := e.Details.(details.Growth)
		*field(&g) = v
		e.Details = g
	}
	if e.Note == "" {
		e.Note = strings.TrimSpace(note)
	}
}

// result devuelve los GROWTH con al menos una medida distinta de cero.
func (b *growthBuilder) result() []events.Event {
	out := make([]events.Event, 0, len(b.order))
	for _, key := range b.order {
		e := b.byTS[key]
		if e.Details.(details.Growth).HasMeasurement() {
			out = append(out, *e)
		}
	}
	return out
}
