package profile

import "time"

// Profile describe al bebé cuyo diario se lleva.
type Profile struct {
	Name          string    `json:"name"`
	BirthDate     time.Time `json:"birthDate"`
	BirthWeightKg float64   `json:"birthWeight"`
	BirthHeightCm float64   `json:"birthHeight"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Summary es el perfil con la edad y las últimas medidas registradas.
// Si no hay medidas de crecimiento se usan las de nacimiento.
type Summary struct {
	Profile
	AgeDays         int      `json:"ageDays"`
	Age             string   `json:"age"`
	CurrentWeightKg float64  `json:"currentWeightKg"`
	CurrentHeightCm float64  `json:"currentHeightCm"`
	CurrentHeadCm   *float64 `json:"currentHeadCircumferenceCm,omitempty"`
}
