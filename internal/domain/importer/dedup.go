package importer

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

// Classification es el resultado puro de clasificar una fila candidata contra
// el conjunto existente: crear, saltar como duplicado o rechazar como inválida.
// Duplicado y rechazo impiden la creación pero se cuentan por separado.
type Classification int

const (
	ClassCreate Classification = iota
	ClassDuplicate
	ClassReject
)

// KeySet conjunto de claves de deduplicación ya presentes.
type KeySet map[string]struct{}

// NewKeySet construye el conjunto a partir de claves iniciales.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has indica si la clave ya existe.
func (s KeySet) Has(k string) bool {
	_, ok := s[k]
	return ok
}

// Add registra una clave (usada para las filas creadas dentro de la misma corrida).
func (s KeySet) Add(k string) {
	s[k] = struct{}{}
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidHexColor verifica el formato #RRGGBB o #RGB.
func ValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// foldKey normaliza una clave: recorta espacios y aplica case folding Unicode.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// SpoolKey es la clave de duplicado de un carrete: solo el nombre, sin
// distinguir mayúsculas. Simplificación deliberada del modelo.
func SpoolKey(name string) string {
	return foldKey(name)
}

// CatalogKey es la clave de duplicado de fabricantes, materiales, diámetros y
// ubicaciones: el nombre normalizado.
func CatalogKey(name string) string {
	return foldKey(name)
}

// ColorDisplayName sintetiza el nombre canónico de un color importado a partir
// de sus dos columnas de origen: "{colorName} ({brand})".
func ColorDisplayName(colorName, brand string) string {
	return fmt.Sprintf("%s (%s)", colorName, brand)
}

// ColorKey es la clave de duplicado de un color: nombre canónico más código
// hex, ambos normalizados. El código participa porque la unicidad de colores
// es por el par (nombre, código).
func ColorKey(displayName, code string) string {
	return foldKey(displayName) + "\x00" + foldKey(code)
}

// ClassifySpool clasifica un carrete candidato contra el snapshot de nombres
// existentes. Pura: el llamador realiza la creación.
func ClassifySpool(s *entity.Spool, existing KeySet) Classification {
	if err := s.Validate(); err != nil {
		return ClassReject
	}
	if s.ColorCode != "" && !ValidHexColor(s.ColorCode) {
		return ClassReject
	}
	if existing.Has(SpoolKey(s.Name)) {
		return ClassDuplicate
	}
	return ClassCreate
}

// ClassifyCatalogName clasifica una fila de catálogo de una sola columna
// (fabricante, material, diámetro, ubicación).
func ClassifyCatalogName(name string, existing KeySet) Classification {
	if strings.TrimSpace(name) == "" {
		return ClassReject
	}
	if existing.Has(CatalogKey(name)) {
		return ClassDuplicate
	}
	return ClassCreate
}

// ClassifyColor clasifica una fila de color del formato fijo brand,name,hex.
func ClassifyColor(brand, colorName, hex string, existing KeySet) Classification {
	if strings.TrimSpace(brand) == "" || strings.TrimSpace(colorName) == "" {
		return ClassReject
	}
	if !ValidHexColor(hex) {
		return ClassReject
	}
	if existing.Has(ColorKey(ColorDisplayName(colorName, brand), hex)) {
		return ClassDuplicate
	}
	return ClassCreate
}
