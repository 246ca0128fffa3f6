package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

// SpoolPatch describe una actualización parcial de un carrete. Solo los campos
// no nil se escriben; los demás quedan intactos en cada fila afectada.
type SpoolPatch struct {
	Name            *string
	Material        *string
	ColorName       *string
	ColorCode       *string
	Manufacturer    *string
	Diameter        *decimal.Decimal
	PrintTemp       *int
	TotalWeight     *decimal.Decimal
	RemainingPct    *decimal.Decimal
	PurchaseDate    *time.Time
	PurchasePrice   *decimal.Decimal
	Status          *string
	SpoolType       *string
	DryerCount      *int
	LastDryingDate  *time.Time
	StorageLocation *string
}

// IsEmpty indica si el patch no trae ningún campo.
func (p SpoolPatch) IsEmpty() bool {
	return p.Name == nil && p.Material == nil && p.ColorName == nil && p.ColorCode == nil &&
		p.Manufacturer == nil && p.Diameter == nil && p.PrintTemp == nil && p.TotalWeight == nil &&
		p.RemainingPct == nil && p.PurchaseDate == nil && p.PurchasePrice == nil && p.Status == nil &&
		p.SpoolType == nil && p.DryerCount == nil && p.LastDryingDate == nil && p.StorageLocation == nil
}

// SpoolRepository define el puerto de persistencia para Spool (DIP).
// Cada operación recibe el Scope del dueño; la atomicidad es por fila, no hay
// transacción entre llamadas sucesivas.
type SpoolRepository interface {
	Create(scope Scope, spool *entity.Spool) (int64, error)
	GetByID(scope Scope, id int64) (*entity.Spool, error)
	List(scope Scope, limit, offset int) ([]*entity.Spool, error)
	ListAll(scope Scope) ([]*entity.Spool, error)
	Update(scope Scope, spool *entity.Spool) (bool, error)
	// ApplyPatch escribe solo los campos presentes del patch y refresca
	// updated_at. Devuelve false si el id no existe bajo el scope.
	ApplyPatch(scope Scope, id int64, patch SpoolPatch) (bool, error)
	// Delete es idempotente: borrar un id inexistente o ajeno devuelve false sin error.
	Delete(scope Scope, id int64) (bool, error)
	// CountByFieldValue cuenta carretes de cualquier dueño cuyo campo (columna
	// permitida) coincide con el valor textual dado; soporta el soft-FK de catálogo.
	CountByFieldValue(field, value string) (int64, error)
}
