// Package normalize pliega texto para búsqueda: sin tildes y en minúsculas,
// de modo que "Pérez" y "perez" comparen igual.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto sin marcas diacríticas y en minúsculas. Si la
// transformación falla devuelve la entrada en minúsculas tal cual.
func Fold(s string) string {
	out, _, err := transform.String(foldChain, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
