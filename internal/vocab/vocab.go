// Package vocab concentra el vocabulario en ruso que comparten los códecs:
// las etiquetas que se escriben al aplanar/exportar y las tablas de
// fragmentos con las que se reconocen al leer. Cada campo tiene una sola
// tabla para poder probarla y ampliarla sin tocar el parseo.
package vocab

import (
	"strings"

	"baby-journal/internal/domain/events/details"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Valores de event_name en las filas relacionales.
const (
	RowWeight       = "Вес"
	RowHeight       = "Рост"
	RowHead         = "Окружность головы"
	RowBreastFeed   = "ГВ"
	RowBottleFeed   = "Смесь"
	RowSolidsFeed   = "Еда"
	RowNightSleep   = "Ночной сон"
	RowDaySleep     = "Дневной сон"
	RowDiaper       = "Подгузник"
	RowPumping      = "Сцеживание"
	RowHealth       = "Здоровье"
	RowWalk         = "Прогулка"
	RowBath         = "Купание"
	RowMood         = "Настроение"
	RowMilestone    = "Достижение"
	RowFallbackName = "Событие"
)

// Valores de la columna "Событие" del CSV.
const (
	CSVSleep      = "Сон"
	CSVWalk       = "Прогулка"
	CSVBath       = "Купание"
	CSVBreastFeed = "Кормление грудью"
	CSVPumping    = "Сцеживание"
	CSVBottle     = "Бутылочка"
	CSVSolids     = "Прикорм"
	CSVDiaper     = "Подгузник"
	CSVMood       = "Настроение"
	CSVMilestone  = "Важное событие"
	CSVWeight     = "Вес"
	CSVHeight     = "Рост"
	CSVHead       = "Окружность головы"
)

// DefaultMood se usa cuando el origen no trae etiqueta de ánimo.
const DefaultMood = "Normal"

var FeedingTypeLabels = map[details.FeedingType]string{
	details.FeedingBreast: "Грудь",
	details.FeedingBottle: "Бутылка",
	details.FeedingSolids: "Прикорм",
}

var SideLabels = map[details.Side]string{
	details.SideLeft:  "Левая",
	details.SideRight: "Правая",
	details.SideBoth:  "Обе",
}

var DiaperLabels = map[details.DiaperStatus]string{
	details.DiaperWet:   "Мокрый",
	details.DiaperDirty: "Грязный",
	details.DiaperMixed: "Смешанный",
}

var SleepLabels = map[details.SleepSubtype]string{
	details.SleepNight: "Ночной",
	details.SleepDay:   "Дневной",
}

// HealthLabels son los nombres de evento del CSV para cada subtipo.
var HealthLabels = map[details.HealthSubtype]string{
	details.HealthDoctor:      "Визит врача",
	details.HealthVaccine:     "Прививка",
	details.HealthSickness:    "Болезнь",
	details.HealthMedicine:    "Прием лекарств",
	details.HealthTemperature: "Температура",
	details.HealthOther:       "Здоровье",
}

type keyword[T any] struct {
	fragment string
	value    T
}

// Gana el primer fragmento que aparezca.
var sideKeywords = []keyword[details.Side]{
	{"лев", details.SideLeft},
	{"прав", details.SideRight},
	{"обе", details.SideBoth},
}

var sleepKeywords = []keyword[details.SleepSubtype]{
	{"ноч", details.SleepNight},
	{"night", details.SleepNight},
	{"днев", details.SleepDay},
	{"day", details.SleepDay},
}

var diaperKeywords = []keyword[details.DiaperStatus]{
	{"мокр", details.DiaperWet},
	{"гряз", details.DiaperDirty},
}

var feedingKeywords = []keyword[details.FeedingType]{
	{"груд", details.FeedingBreast},
	{"прикорм", details.FeedingSolids},
	{"бутыл", details.FeedingBottle},
}

// Fold normaliza para comparar: minúsculas según reglas del ruso, "ё" como
// "е" y sin espacios en los extremos.
func Fold(s string) string {
	s = cases.Lower(language.Russian).String(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "ё", "е")
}

func match[T any](table []keyword[T], s string) (T, bool) {
	s = Fold(s)
	for _, k := range table {
		if strings.Contains(s, k.fragment) {
			return k.value, true
		}
	}
	var zero T
	return zero, false
}

func MatchSide(s string) (details.Side, bool)                 { return match(sideKeywords, s) }
func MatchSleep(s string) (details.SleepSubtype, bool)        { return match(sleepKeywords, s) }
func MatchDiaper(s string) (details.DiaperStatus, bool)       { return match(diaperKeywords, s) }
func MatchFeedingType(s string) (details.FeedingType, bool)   { return match(feedingKeywords, s) }
func HealthByLabel(name string) (details.HealthSubtype, bool) { return byLabel(HealthLabels, name) }

func byLabel[K comparable](labels map[K]string, name string) (K, bool) {
	name = Fold(name)
	for k, label := range labels {
		if Fold(label) == name {
			return k, true
		}
	}
	var zero K
	return zero, false
}
