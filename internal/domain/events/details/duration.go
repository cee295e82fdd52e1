package details

import "time"

type SleepSubtype string

const (
	SleepDay   SleepSubtype = "DAY"
	SleepNight SleepSubtype = "NIGHT"
)

// Sleep admite Subtype vacío cuando el origen no lo indicaba.
type Sleep struct {
	Subtype SleepSubtype
	EndTime *time.Time
}

func (Sleep) Kind() Kind        { return KindSleep }
func (s Sleep) End() *time.Time { return s.EndTime }

func (s Sleep) validate(start time.Time) error {
	if s.Subtype != "" {
		if err := checkEnum(s.Subtype, SleepDay, SleepNight); err != nil {
			return err
		}
	}
	return checkEnd(start, s.EndTime)
}

type Walk struct {
	EndTime *time.Time
}

func (Walk) Kind() Kind                       { return KindWalk }
func (w Walk) End() *time.Time                { return w.EndTime }
func (w Walk) validate(start time.Time) error { return checkEnd(start, w.EndTime) }

type Bath struct {
	EndTime *time.Time
}

func (Bath) Kind() Kind                       { return KindBath }
func (b Bath) End() *time.Time                { return b.EndTime }
func (b Bath) validate(start time.Time) error { return checkEnd(start, b.EndTime) }
