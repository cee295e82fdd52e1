package tabular

import (
	"reflect"
	"testing"
)

func TestSplitLine_QuotedDelimiter(t *testing.T) {
	got := splitLine(`Сон,"Ночной, тест",2024-01-01 20:00,2024-01-02 06:00,`, ',')
	want := []string{"Сон", "Ночной, тест", "2024-01-01 20:00", "2024-01-02 06:00", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSplitLine_EscapedQuote(t *testing.T) {
	got := splitLine(`a;"он сказал ""агу""";  b  `, ';')
	want := []string{"a", `он сказал "агу"`, "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDetectDelimiter(t *testing.T) {
	cases := map[string]rune{
		"Дата;Событие,Тип": ';',
		"Дата\tСобытие":    '\t',
		"Дата,Событие":     ',',
		"Дата":             ',',
	}
	for header, want := range cases {
		if got := detectDelimiter(header); got != want {
			t.Fatalf("detectDelimiter(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestLocate_ExactBeforePartial(t *testing.T) {
	l := locate([]string{"Дата", "Событие", "Тип", "Значение.Число", "Значение", "Начало", "Окончание", "Комментарий"})
	want := layout{date: 0, event: 1, typ: 2, numeric: 3, value: 4, start: 5, end: 6, comment: 7}
	if l != want {
		t.Fatalf("got %+v, want %+v", l, want)
	}

	rel := locate([]string{"event_datetime", "event_name", "event_type", "value_text", "value_numeric", "start_datetime", "end_datetime", "comment"})
	want = layout{date: 0, event: 1, typ: 3, numeric: 4, value: -1, start: 5, end: 6, comment: 7}
	if rel != want {
		t.Fatalf("got %+v, want %+v", rel, want)
	}
}

func TestLocate_MissingColumns(t *testing.T) {
	l := locate([]string{"Событие", "Тип"})
	if l.event != 0 || l.typ != 1 || l.date != -1 || l.start != -1 || l.comment != -1 {
		t.Fatalf("unexpected layout: %+v", l)
	}
	if cell([]string{"x"}, l.comment) != "" || cell([]string{"x"}, 5) != "" {
		t.Fatalf("missing cells should read as empty")
	}
}

func TestNumber(t *testing.T) {
	cases := map[string]float64{
		"3,5":        3.5,
		"1 234,5 мл": 1234.5,
		"52 см":      52,
		"-2":         -2,
		"3.5.1":      3.5,
		"":           0,
		"много":      0,
	}
	for in, want := range cases {
		if got := number(in); got != want {
			t.Fatalf("number(%q) = %v, want %v", in, got, want)
		}
	}
}
