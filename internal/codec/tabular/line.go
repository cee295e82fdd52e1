package tabular

import "strings"

// splitLines devuelve las líneas no vacías del texto (LF o CRLF).
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			out = append(out, strings.TrimRight(l, "\r"))
		}
	}
	return out
}

// detectDelimiter mira solo la cabecera: punto y coma, luego tabulador y si
// no hay ninguno, coma.
func detectDelimiter(header string) rune {
	switch {
	case strings.ContainsRune(header, ';'):
		return ';'
	case strings.ContainsRune(header, '\t'):
		return '\t'
	default:
		return ','
	}
}

// splitLine separa los campos de una línea. Una comilla abre o cierra un
// tramo entrecomillado; dentro de él, "" es una comilla literal y el
// delimitador no corta el campo.
func splitLine(line string, delim rune) []string {
	var (
		fields   []string
		cur      strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	fields = append(fields, cur.String())

	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
