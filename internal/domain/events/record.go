package events

import (
	"encoding/json"
	"fmt"
	"time"

	"baby-journal/internal/codec/timefmt"
	"baby-journal/internal/domain/events/details"
)

// record es la forma plana de un Event en JSON (respaldo, slot local, API).
// Los nombres de campo coinciden con los respaldos existentes; "type" es el
// discriminador y "kind" se acepta como alias al leer.
type record struct {
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      details.Kind `json:"type"`
	Kind      details.Kind `json:"kind,omitempty"`
	Note      string       `json:"note,omitempty"`

	Subtype string  `json:"subtype,omitempty"`
	EndTime *string `json:"endTime,omitempty"`

	FeedingType details.FeedingType `json:"feedingType,omitempty"`
	AmountMl    *float64            `json:"amountMl,omitempty"`
	Side        details.Side        `json:"side,omitempty"`

	Status details.DiaperStatus `json:"status,omitempty"`

	WeightKg            *float64 `json:"weightKg,omitempty"`
	HeightCm            *float64 `json:"heightCm,omitempty"`
	HeadCircumferenceCm *float64 `json:"headCircumferenceCm,omitempty"`

	Value       string   `json:"value,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`

	Mood  string `json:"mood,omitempty"`
	Title string `json:"title,omitempty"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	r := record{
		ID:        e.ID,
		Timestamp: timefmt.ISO(e.Timestamp),
		Type:      e.Kind(),
		Note:      e.Note,
	}
	if end := e.EndTime(); end != nil {
		s := timefmt.ISO(*end)
		r.EndTime = &s
	}

	switch d := e.Details.(type) {
	case details.Sleep:
		r.Subtype = string(d.Subtype)
	case details.Feeding:
		r.FeedingType = d.Type
		r.AmountMl = d.AmountMl
		r.Side = d.Side
	case details.Pumping:
		amount := d.AmountMl
		r.AmountMl = &amount
		r.Side = d.Side
	case details.Diaper:
		r.Status = d.Status
	case details.Walk, details.Bath:
	case details.Growth:
		r.WeightKg = d.WeightKg
		r.HeightCm = d.HeightCm
		r.HeadCircumferenceCm = d.HeadCircumferenceCm
	case details.Health:
		r.Subtype = string(d.Subtype)
		r.Value = d.Value
		r.Temperature = d.Temperature
	case details.Mood:
		r.Mood = d.Mood
	case details.Milestone:
		r.Title = d.Title
	default:
		return nil, fmt.Errorf("marshal event %s: %w", e.ID, details.ErrUnknownVariant)
	}
	return json.Marshal(r)
}

func (e *Event) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	kind := r.Type
	if kind == "" {
		kind = r.Kind
	}

	ts, err := timefmt.Parse(r.Timestamp, time.UTC)
	if err != nil {
		return fmt.Errorf("event %s: %w", r.ID, err)
	}
	var end *time.Time
	if r.EndTime != nil && *r.EndTime != "" {
		t, err := timefmt.Parse(*r.EndTime, time.UTC)
		if err != nil {
			return fmt.Errorf("event %s endTime: %w", r.ID, err)
		}
		end = &t
	}

	var d details.Details
	switch kind {
	case details.KindSleep:
		d = details.Sleep{Subtype: details.SleepSubtype(r.Subtype), EndTime: end}
	case details.KindFeeding:
		d = details.Feeding{Type: r.FeedingType, AmountMl: r.AmountMl, Side: r.Side, EndTime: end}
	case details.KindPumping:
		p := details.Pumping{Side: r.Side}
		if r.AmountMl != nil {
			p.AmountMl = *r.AmountMl
		}
		d = p
	case details.KindDiaper:
		d = details.Diaper{Status: r.Status}
	case details.KindWalk:
		d = details.Walk{EndTime: end}
	case details.KindBath:
		d = details.Bath{EndTime: end}
	case details.KindGrowth:
		d = details.Growth{WeightKg: r.WeightKg, HeightCm: r.HeightCm, HeadCircumferenceCm: r.HeadCircumferenceCm}
	case details.KindHealth:
		subtype := details.HealthSubtype(r.Subtype)
		if subtype == "" {
			subtype = details.HealthOther
		}
		d = details.Health{Subtype: subtype, Value: r.Value, Temperature: r.Temperature}
	case details.KindMood:
		d = details.Mood{Mood: r.Mood}
	case details.KindMilestone:
		d = details.Milestone{Title: r.Title}
	default:
		return fmt.Errorf("event %s: %w: %q", r.ID, details.ErrUnknownVariant, kind)
	}

	*e = Event{ID: r.ID, Timestamp: ts, Note: r.Note, Details: d}
	return nil
}
