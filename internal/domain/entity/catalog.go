package entity

import "time"

// CatalogKind identifica los catálogos compartidos entre todos los dueños.
type CatalogKind string

const (
	KindManufacturer CatalogKind = "manufacturer"
	KindMaterial     CatalogKind = "material"
	KindColor        CatalogKind = "color"
	KindDiameter     CatalogKind = "diameter"
	KindLocation     CatalogKind = "location"
)

// ParseCatalogKind convierte el segmento plural de la ruta HTTP en un CatalogKind.
func ParseCatalogKind(s string) (CatalogKind, bool) {
	switch s {
	case "manufacturers":
		return KindManufacturer, true
	case "materials":
		return KindMaterial, true
	case "colors":
		return KindColor, true
	case "diameters":
		return KindDiameter, true
	case "locations":
		return KindLocation, true
	}
	return "", false
}

// CatalogItem representa un valor de referencia compartido (fabricante, material,
// color, diámetro o ubicación). Name es único por kind; los colores son únicos
// por el par (Name, Code).
type CatalogItem struct {
	ID        int64
	Kind      CatalogKind
	Name      string
	Code      string // solo colores: #RRGGBB o #RGB
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
