package details

import "time"

type HealthSubtype string

const (
	HealthDoctor      HealthSubtype = "DOCTOR"
	HealthVaccine     HealthSubtype = "VACCINE"
	HealthSickness    HealthSubtype = "SICKNESS"
	HealthMedicine    HealthSubtype = "MEDICINE"
	HealthTemperature HealthSubtype = "TEMPERATURE"
	HealthOther       HealthSubtype = "OTHER"
)

// HealthSubtypes en el orden en que se muestran.
var HealthSubtypes = []HealthSubtype{
	HealthDoctor,
	HealthVaccine,
	HealthSickness,
	HealthMedicine,
	HealthTemperature,
	HealthOther,
}

// Health modela visitas, vacunas, medicación, etc.
// Value es el nombre del medicamento, vacuna o médico.
type Health struct {
	Subtype     HealthSubtype
	Value       string
	Temperature *float64
}

func (Health) Kind() Kind { return KindHealth }

func (h Health) validate(time.Time) error {
	return checkEnum(h.Subtype, HealthSubtypes...)
}
