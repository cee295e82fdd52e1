package tabular

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFF, 0xFE},
	{0xFE, 0xFF},
}

// decodeText acepta UTF-8 (con o sin BOM), UTF-16 con BOM y, si los bytes
// no son UTF-8 válido, Windows-1251 (lo que exporta Excel en ruso).
func decodeText(raw []byte) (string, error) {
	if !hasBOM(raw) && !utf8.Valid(raw) {
		out, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func hasBOM(raw []byte) bool {
	for _, b := range boms {
		if bytes.HasPrefix(raw, b) {
			return true
		}
	}
	return false
}
