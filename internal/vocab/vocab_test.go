package vocab

import (
	"testing"

	"baby-journal/internal/domain/events/details"
)

func TestMatchSide(t *testing.T) {
	cases := map[string]details.Side{
		"Левая грудь":    details.SideLeft,
		"ПРАВАЯ":         details.SideRight,
		"Грудь, Обе":     details.SideBoth,
		"Бутылка, Левая": details.SideLeft,
	}
	for in, want := range cases {
		got, ok := MatchSide(in)
		if !ok || got != want {
			t.Fatalf("MatchSide(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if _, ok := MatchSide("смесь"); ok {
		t.Fatalf("expected no side for unrelated text")
	}
}

func TestMatchSleepAndDiaper(t *testing.T) {
	if got, _ := MatchSleep("Ночной, тест"); got != details.SleepNight {
		t.Fatalf("night not recognized: %q", got)
	}
	if got, _ := MatchSleep("дневной"); got != details.SleepDay {
		t.Fatalf("day not recognized: %q", got)
	}
	if got, _ := MatchSleep("NIGHT"); got != details.SleepNight {
		t.Fatalf("raw subtype code not recognized: %q", got)
	}
	if got, _ := MatchDiaper("Мокрый"); got != details.DiaperWet {
		t.Fatalf("wet not recognized: %q", got)
	}
	if got, _ := MatchDiaper("грязный"); got != details.DiaperDirty {
		t.Fatalf("dirty not recognized: %q", got)
	}
	if _, ok := MatchDiaper("Смешанный"); ok {
		t.Fatalf("mixed must fall through to the caller default")
	}
}

// Cada etiqueta que se escribe debe poder leerse con la tabla de su campo.
func TestLabelsRoundTripThroughKeywords(t *testing.T) {
	for side, label := range SideLabels {
		if got, ok := MatchSide(label); !ok || got != side {
			t.Fatalf("side label %q read back as %q", label, got)
		}
	}
	for st, label := range SleepLabels {
		if got, ok := MatchSleep(label); !ok || got != st {
			t.Fatalf("sleep label %q read back as %q", label, got)
		}
	}
	for ft, label := range FeedingTypeLabels {
		if got, ok := MatchFeedingType(label); !ok || got != ft {
			t.Fatalf("feeding label %q read back as %q", label, got)
		}
	}
	for st, label := range DiaperLabels {
		got, ok := MatchDiaper(label)
		if st == details.DiaperMixed {
			continue
		}
		if !ok || got != st {
			t.Fatalf("diaper label %q read back as %q", label, got)
		}
	}
	for _, st := range details.HealthSubtypes {
		if got, ok := HealthByLabel(HealthLabels[st]); !ok || got != st {
			t.Fatalf("health label for %s read back as %q", st, got)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("  Приём Лекарств "); got != "прием лекарств" {
		t.Fatalf("Fold = %q", got)
	}
	if st, ok := HealthByLabel("Приём лекарств"); !ok || st != details.HealthMedicine {
		t.Fatalf("yo-spelling must match: %q %v", st, ok)
	}
}
