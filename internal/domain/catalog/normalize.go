package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone (NFD), elimina las marcas diacríticas y recompone
// (NFC). Los nombres del catálogo vienen en español ("JABÓN", "CÁMARA") y la
// clave de emparejamiento debe ignorar tildes.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName produce la clave canónica de un nombre de producto:
// sin tildes, en mayúsculas y con los espacios colapsados. Es la clave de
// emparejamiento entre fuentes y la base de la búsqueda insensible a acentos.
func NormalizeName(name string) string {
	out, _, err := transform.String(stripAccents, name)
	if err != nil {
		out = name
	}
	return strings.ToUpper(strings.Join(strings.Fields(out), " "))
}

// MatchesQuery indica si el texto contiene el término de búsqueda, ignorando
// mayúsculas y tildes en ambos lados.
func MatchesQuery(text, query string) bool {
	return strings.Contains(NormalizeName(text), NormalizeName(query))
}
