package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName devuelve la clave de unicidad de un nombre: recortado,
// normalizado a NFC y en minúsculas. Dos nombres con la misma clave se
// consideran el mismo nombre ("Shoes" y "  shoes " colisionan).
func NormalizeName(name string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(name)))
}
