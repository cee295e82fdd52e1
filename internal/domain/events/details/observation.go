package details

import "time"

type DiaperStatus string

const (
	DiaperWet   DiaperStatus = "WET"
	DiaperDirty DiaperStatus = "DIRTY"
	DiaperMixed DiaperStatus = "MIXED"
)

type Diaper struct {
	Status DiaperStatus
}

func (Diaper) Kind() Kind { return KindDiaper }

func (d Diaper) validate(time.Time) error {
	return checkEnum(d.Status, DiaperWet, DiaperDirty, DiaperMixed)
}

// Mood es una etiqueta libre ("Happy", "Crying", ...).
type Mood struct {
	Mood string
}

func (Mood) Kind() Kind               { return KindMood }
func (Mood) validate(time.Time) error { return nil }

type Milestone struct {
	Title string
}

func (Milestone) Kind() Kind               { return KindMilestone }
func (Milestone) validate(time.Time) error { return nil }
