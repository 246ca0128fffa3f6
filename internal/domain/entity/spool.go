package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Spool.Status.
const (
	StatusSealed = "sealed"
	StatusOpened = "opened"
)

// Tipos válidos para Spool.SpoolType.
const (
	SpoolTypeSpooled   = "spooled"
	SpoolTypeSpoolless = "spoolless"
)

// Spool representa un carrete de filamento del inventario de un dueño.
// Material guarda el id del material de catálogo como string (así lo envían
// los selects de la UI); el filtro de visibilidad pública lo interpreta como entero.
type Spool struct {
	ID              int64
	OwnerID         string
	Name            string
	Material        string
	ColorName       string
	ColorCode       string // #RRGGBB o #RGB
	Manufacturer    string
	Diameter        *decimal.Decimal // mm
	PrintTemp       *int             // °C
	TotalWeight     decimal.Decimal  // kg
	RemainingPct    decimal.Decimal  // 0–100
	PurchaseDate    *time.Time
	PurchasePrice   *decimal.Decimal
	Status          string // sealed, opened
	SpoolType       string // spooled, spoolless
	DryerCount      int
	LastDryingDate  *time.Time
	StorageLocation string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var (
	pctMin = decimal.Zero
	pctMax = decimal.NewFromInt(100)
)

// Validate verifica los invariantes del carrete: nombre y material requeridos,
// peso total no negativo y porcentaje restante en [0,100].
func (s *Spool) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name es requerido")
	}
	if s.Material == "" {
		return fmt.Errorf("material es requerido")
	}
	if s.TotalWeight.IsNegative() {
		return fmt.Errorf("totalWeight debe ser >= 0")
	}
	if s.RemainingPct.LessThan(pctMin) || s.RemainingPct.GreaterThan(pctMax) {
		return fmt.Errorf("remainingPercentage debe estar entre 0 y 100")
	}
	if s.Status != "" && s.Status != StatusSealed && s.Status != StatusOpened {
		return fmt.Errorf("status debe ser sealed u opened")
	}
	if s.SpoolType != "" && s.SpoolType != SpoolTypeSpooled && s.SpoolType != SpoolTypeSpoolless {
		return fmt.Errorf("spoolType debe ser spooled o spoolless")
	}
	return nil
}
