package relational

import (
	"fmt"
	"strings"
	"time"

	"baby-journal/internal/codec/timefmt"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/events/details"
	"baby-journal/internal/vocab"
)

// Reconstruct es la inversa de Flatten para una sola fila. No es simétrica:
//   - cada fila GROWTH produce su propio evento con una sola medida (no se
//     reagrupan como en la importación CSV);
//   - HEALTH siempre vuelve como OTHER, con value = value_text completo.
//
// Lo que no se puede recuperar toma un valor por defecto. Solo falla si la
// fila no trae una fecha interpretable.
func Reconstruct(r Row) (events.Event, error) {
	ts, err := timefmt.Parse(r.EventDatetime, time.UTC)
	if err != nil {
		ts, err = timefmt.Parse(r.StartDatetime, time.UTC)
	}
	if err != nil {
		return events.Event{}, fmt.Errorf("row %q: %w", r.EventName, err)
	}

	var end *time.Time
	if s := deref(r.EndDatetime); s != "" {
		if t, err := timefmt.Parse(s, time.UTC); err == nil && !t.Before(ts) {
			end = &t
		}
	}

	e := events.Event{
		ID:        rowEventID(ts, r),
		Timestamp: ts,
		Note:      strings.TrimSpace(deref(r.Comment)),
	}
	valText := deref(r.ValueText)
	num := nonZero(r.ValueNumeric)

	switch details.Kind(r.EventType) {
	case details.KindSleep:
		subtype, ok := vocab.MatchSleep(valText)
		if !ok {
			subtype, ok = vocab.MatchSleep(r.EventName)
		}
		if !ok {
			subtype = details.SleepDay
		}
		e.Details = details.Sleep{Subtype: subtype, EndTime: end}

	case details.KindFeeding:
		e.Details = details.Feeding{
			Type:     feedingTypeOf(r.EventName, valText),
			AmountMl: num,
			Side:     sideOf(valText),
			EndTime:  end,
		}

	case details.KindGrowth:
		var g details.Growth
		switch vocab.Fold(r.EventName) {
		case vocab.Fold(vocab.RowWeight):
			g.WeightKg = num
		case vocab.Fold(vocab.RowHeight):
			g.HeightCm = num
		case vocab.Fold(vocab.RowHead):
			g.HeadCircumferenceCm = num
		default:
			e.Details = details.Milestone{Title: r.EventName}
			return e, nil
		}
		e.Details = g

	case details.KindDiaper:
		status, ok := vocab.MatchDiaper(valText)
		if !ok {
			status = details.DiaperMixed
		}
		e.Details = details.Diaper{Status: status}

	case details.KindWalk:
		e.Details = details.Walk{EndTime: end}

	case details.KindBath:
		e.Details = details.Bath{EndTime: end}

	case details.KindMood:
		mood := valText
		if mood == "" {
			mood = vocab.DefaultMood
		}
		e.Details = details.Mood{Mood: mood}

	case details.KindMilestone:
		title := valText
		if title == "" {
			title = r.EventName
		}
		e.Details = details.Milestone{Title: title}

	case details.KindPumping:
		p := details.Pumping{Side: sideOf(valText)}
		if num != nil {
			p.AmountMl = *num
		}
		e.Details = p

	case details.KindHealth:
		e.Details = details.Health{
			Subtype:     details.HealthOther,
			Value:       valText,
			Temperature: num,
		}

	default:
		e.Details = details.Milestone{Title: r.EventName}
	}
	return e, nil
}

// ReconstructAll reconstruye todas las filas y devuelve además las que no
// pudieron leerse. Las filas sin id de servidor que comparten hora y nombre
// reciben un sufijo de ocurrencia (-2, -3, ...) para que los ids del lote
// sean únicos.
func ReconstructAll(rows []Row) ([]events.Event, []error) {
	out := make([]events.Event, 0, len(rows))
	seen := make(map[string]int, len(rows))
	var errs []error
	for _, r := range rows {
		e, err := Reconstruct(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		seen[e.ID]++
		if n := seen[e.ID]; n > 1 {
			e.ID = fmt.Sprintf("%s-%d", e.ID, n)
		}
		out = append(out, e)
	}
	return out, errs
}

// rowEventID es determinista para que un segundo pull de la misma fila
// choque por id en la reconciliación.
func rowEventID(ts time.Time, r Row) string {
	suffix := r.serverID()
	if suffix == "" {
		suffix = strings.ReplaceAll(vocab.Fold(r.EventName), " ", "-")
	}
	return fmt.Sprintf("db-%d-%s", ts.UnixMilli(), suffix)
}

func feedingTypeOf(name, valText string) details.FeedingType {
	switch strings.TrimSpace(name) {
	case vocab.RowBreastFeed:
		return details.FeedingBreast
	case vocab.RowSolidsFeed:
		return details.FeedingSolids
	case vocab.RowBottleFeed:
		return details.FeedingBottle
	}
	if ft, ok := vocab.MatchFeedingType(valText); ok {
		return ft
	}
	return details.FeedingBottle
}

func sideOf(s string) details.Side {
	side, _ := vocab.MatchSide(s)
	return side
}
