package details

import "time"

type FeedingType string

const (
	FeedingBreast FeedingType = "BREAST"
	FeedingBottle FeedingType = "BOTTLE"
	FeedingSolids FeedingType = "SOLIDS"
)

// Side indica el lado; "" significa no informado.
type Side string

const (
	SideLeft  Side = "Left"
	SideRight Side = "Right"
	SideBoth  Side = "Both"
)

func checkSide(s Side) error {
	if s == "" {
		return nil
	}
	return checkEnum(s, SideLeft, SideRight, SideBoth)
}

// Feeding solo es un intervalo cuando Type == FeedingBreast, pero EndTime se
// conserva tal cual venga para no perder datos.
type Feeding struct {
	Type     FeedingType
	AmountMl *float64
	Side     Side
	EndTime  *time.Time
}

func (Feeding) Kind() Kind        { return KindFeeding }
func (f Feeding) End() *time.Time { return f.EndTime }

func (f Feeding) validate(start time.Time) error {
	if err := checkEnum(f.Type, FeedingBreast, FeedingBottle, FeedingSolids); err != nil {
		return err
	}
	if err := checkSide(f.Side); err != nil {
		return err
	}
	return checkEnd(start, f.EndTime)
}

type Pumping struct {
	AmountMl float64
	Side     Side
}

func (Pumping) Kind() Kind { return KindPumping }

func (p Pumping) validate(time.Time) error { return checkSide(p.Side) }
