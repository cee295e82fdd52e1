package tabular

import (
	"strings"

	"baby-journal/internal/vocab"
)

// column describe cómo reconocer una columna en la cabecera: primero por
// nombre exacto y, si no aparece, por fragmento.
type column struct {
	exact   []string
	partial []string
}

var (
	dateColumn    = column{exact: []string{"дата", "date", "event_datetime", "timestamp"}, partial: []string{"дата", "date"}}
	eventColumn   = column{exact: []string{"событие", "event", "event_name", "name"}, partial: []string{"событие", "event"}}
	typeColumn    = column{exact: []string{"тип", "type", "detail", "value_text"}, partial: []string{"тип", "detail"}}
	numericColumn = column{exact: []string{"значение.число", "value_numeric", "amount"}, partial: []string{"значение.число", "numeric"}}
	valueColumn   = column{exact: []string{"значение", "value"}}
	startColumn   = column{exact: []string{"начало", "start", "start_datetime"}, partial: []string{"начало", "start"}}
	endColumn     = column{exact: []string{"окончание", "end", "end_datetime"}, partial: []string{"окончание", "end"}}
	commentColumn = column{exact: []string{"комментарий", "comment", "note"}, partial: []string{"коммент", "comment", "note"}}
)

// layout guarda el índice de cada columna; -1 si la cabecera no la trae.
type layout struct {
	date, event, typ, numeric, value, start, end, comment int
}

func locate(header []string) layout {
	folded := make([]string, len(header))
	for i, h := range header {
		folded[i] = vocab.Fold(h)
	}
	return layout{
		date:    dateColumn.index(folded),
		event:   eventColumn.index(folded),
		typ:     typeColumn.index(folded),
		numeric: numericColumn.index(folded),
		value:   valueColumn.index(folded),
		start:   startColumn.index(folded),
		end:     endColumn.index(folded),
		comment: commentColumn.index(folded),
	}
}

func (c column) index(header []string) int {
	for _, name := range c.exact {
		for i, h := range header {
			if h == name {
				return i
			}
		}
	}
	for _, part := range c.partial {
		for i, h := range header {
			if strings.Contains(h, part) {
				return i
			}
		}
	}
	return -1
}

// cell devuelve el campo idx o "" si la columna falta o la fila es corta.
func cell(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}
