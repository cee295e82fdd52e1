package events

import "fmt"

// ImportResult resume una importación. Added == 0 no es un error.
type ImportResult struct {
	Added      int    `json:"added"`
	Duplicates int    `json:"duplicates"`
	Rejected   int    `json:"rejected"`
	Message    string `json:"message"`
}

// Reconcile devuelve los candidatos que deben agregarse a current:
//  1. se descartan los que ya tienen un id presente en current;
//  2. de los restantes, los que coinciden en (timestamp, kind) con algún
//     evento de current (mismo evento re-importado con un id nuevo).
//
// Entre candidatos solo se compara el id: un id repetido en el lote entra una
// vez. Reimportar la misma lista agrega cero eventos.
func Reconcile(current, candidates []Event) []Event {
	ids := make(map[string]struct{}, len(current))
	keys := make(map[dedupKey]struct{}, len(current))
	for _, e := range current {
		ids[e.ID] = struct{}{}
		keys[keyOf(e)] = struct{}{}
	}

	out := make([]Event, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := ids[c.ID]; ok {
			continue
		}
		if _, ok := keys[keyOf(c)]; ok {
			continue
		}
		ids[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}

func importMessage(added int) string {
	if added == 0 {
		return "Нет новых данных для импорта (дубликаты обнаружены)."
	}
	return fmt.Sprintf("Успешно импортировано %d записей.", added)
}
