package details

import "time"

// Growth agrupa cualquier subconjunto de las tres medidas.
type Growth struct {
	WeightKg            *float64
	HeightCm            *float64
	HeadCircumferenceCm *float64
}

func (Growth) Kind() Kind { return KindGrowth }

// HasMeasurement informa si al menos una medida es distinta de cero.
func (g Growth) HasMeasurement() bool {
	for _, v := range []*float64{g.WeightKg, g.HeightCm, g.HeadCircumferenceCm} {
		if v != nil && *v != 0 {
			return true
		}
	}
	return false
}

func (g Growth) validate(time.Time) error {
	if !g.HasMeasurement() {
		return ErrNoMeasurement
	}
	return nil
}
