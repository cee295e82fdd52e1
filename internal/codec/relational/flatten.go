package relational

import (
	"strings"

	"baby-journal/internal/codec/timefmt"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/domain/events/details"
	"baby-journal/internal/vocab"
)

// Flatten convierte un evento en cero, una o varias filas. Es determinista:
// el mismo evento produce siempre las mismas filas.
func Flatten(e events.Event) []Row {
	at := timefmt.ISO(e.Timestamp)
	base := Row{
		EventDatetime: at,
		EventType:     string(e.Kind()),
		StartDatetime: at,
		Comment:       text(e.Note),
	}
	if end := e.EndTime(); end != nil {
		base.EndDatetime = text(timefmt.ISO(*end))
	}

	row := func(name string, valText *string, valNum *float64) Row {
		r := base
		r.EventName = name
		r.ValueText = valText
		r.ValueNumeric = valNum
		return r
	}

	switch d := e.Details.(type) {
	case details.Growth:
		rows := make([]Row, 0, 3)
		if v := nonZero(d.WeightKg); v != nil {
			rows = append(rows, row(vocab.RowWeight, nil, v))
		}
		if v := nonZero(d.HeightCm); v != nil {
			rows = append(rows, row(vocab.RowHeight, nil, v))
		}
		if v := nonZero(d.HeadCircumferenceCm); v != nil {
			rows = append(rows, row(vocab.RowHead, nil, v))
		}
		return rows

	case details.Feeding:
		parts := make([]string, 0, 2)
		if label := vocab.FeedingTypeLabels[d.Type]; label != "" {
			parts = append(parts, label)
		}
		if label := vocab.SideLabels[d.Side]; label != "" {
			parts = append(parts, label)
		}
		return []Row{row(feedingRowName(d.Type), text(strings.Join(parts, ", ")), nonZero(d.AmountMl))}

	case details.Sleep:
		name := vocab.RowDaySleep
		if d.Subtype == details.SleepNight {
			name = vocab.RowNightSleep
		}
		return []Row{row(name, text(string(d.Subtype)), nil)}

	case details.Diaper:
		label, ok := vocab.DiaperLabels[d.Status]
		if !ok {
			label = vocab.DiaperLabels[details.DiaperMixed]
		}
		return []Row{row(vocab.RowDiaper, text(label), nil)}

	case details.Pumping:
		amount := d.AmountMl
		return []Row{row(vocab.RowPumping, text(vocab.SideLabels[d.Side]), &amount)}

	case details.Health:
		parts := make([]string, 0, 2)
		for _, p := range []string{string(d.Subtype), d.Value} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		return []Row{row(vocab.RowHealth, text(strings.Join(parts, ": ")), nonZero(d.Temperature))}

	case details.Walk:
		return []Row{row(vocab.RowWalk, nil, nil)}

	case details.Bath:
		return []Row{row(vocab.RowBath, nil, nil)}

	case details.Mood:
		return []Row{row(vocab.RowMood, text(d.Mood), nil)}

	case details.Milestone:
		return []Row{row(vocab.RowMilestone, text(d.Title), nil)}

	default:
		return nil
	}
}

// FlattenAll aplana una colección conservando el orden de entrada.
func FlattenAll(all []events.Event) []Row {
	out := make([]Row, 0, len(all))
	for _, e := range all {
		out = append(out, Flatten(e)...)
	}
	return out
}

func feedingRowName(t details.FeedingType) string {
	switch t {
	case details.FeedingBreast:
		return vocab.RowBreastFeed
	case details.FeedingBottle:
		return vocab.RowBottleFeed
	default:
		return vocab.RowSolidsFeed
	}
}
