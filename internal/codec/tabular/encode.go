package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"baby-journal/internal/codec/timefmt"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/events/details"
	"baby-journal/internal/vocab"
)

// Header es la cabecera que escribe Export; Parse la reconoce.
var Header = []string{"Дата", "Событие", "Тип", "Значение", "Начало", "Окончание", "Комментарий"}

// Encode devuelve las filas de un evento: una por evento salvo GROWTH, que
// escribe una por medida como en las planillas de origen.
func Encode(e events.Event) [][]string {
	start := timefmt.ISO(e.Timestamp)
	end := ""
	if t := e.EndTime(); t != nil {
		end = timefmt.ISO(*t)
	}
	note := oneLine(e.Note)

	line := func(name, typ string, value *float64) []string {
		return []string{
			e.Timestamp.UTC().Format(timefmt.DateLayout),
			name,
			oneLine(typ),
			formatNumber(value),
			start,
			end,
			note,
		}
	}

	switch d := e.Details.(type) {
	case details.Sleep:
		return [][]string{line(vocab.CSVSleep, vocab.SleepLabels[d.Subtype], nil)}
	case details.Walk:
		return [][]string{line(vocab.CSVWalk, "", nil)}
	case details.Bath:
		return [][]string{line(vocab.CSVBath, "", nil)}
	case details.Feeding:
		name := vocab.CSVSolids
		switch d.Type {
		case details.FeedingBreast:
			name = vocab.CSVBreastFeed
		case details.FeedingBottle:
			name = vocab.CSVBottle
		}
		return [][]string{line(name, vocab.SideLabels[d.Side], d.AmountMl)}
	case details.Pumping:
		amount := d.AmountMl
		return [][]string{line(vocab.CSVPumping, vocab.SideLabels[d.Side], &amount)}
	case details.Diaper:
		return [][]string{line(vocab.CSVDiaper, vocab.DiaperLabels[d.Status], nil)}
	case details.Growth:
		var out [][]string
		if d.WeightKg != nil && *d.WeightKg != 0 {
			out = append(out, line(vocab.CSVWeight, "", d.WeightKg))
		}
		if d.HeightCm != nil && *d.HeightCm != 0 {
			out = append(out, line(vocab.CSVHeight, "", d.HeightCm))
		}
		if d.HeadCircumferenceCm != nil && *d.HeadCircumferenceCm != 0 {
			out = append(out, line(vocab.CSVHead, "", d.HeadCircumferenceCm))
		}
		return out
	case details.Health:
		return [][]string{line(vocab.HealthLabels[d.Subtype], d.Value, d.Temperature)}
	case details.Mood:
		return [][]string{line(vocab.CSVMood, d.Mood, nil)}
	case details.Milestone:
		return [][]string{line(vocab.CSVMilestone, d.Title, nil)}
	default:
		return nil
	}
}

// Export escribe el documento CSV completo en orden cronológico.
func Export(w io.Writer, all []events.Event) error {
	sorted := append([]events.Event(nil), all...)
	events.SortOldestFirst(sorted)

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range sorted {
		if err := cw.WriteAll(Encode(e)); err != nil {
			return fmt.Errorf("write csv event %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// oneLine evita saltos de línea dentro de un campo: el importador trabaja
// línea a línea.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
