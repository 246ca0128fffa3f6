package entity

import "time"

// SharingRule controla la visibilidad pública del inventario de un dueño.
// MaterialID nil es la regla global; como máximo existe una regla por
// (OwnerID, MaterialID), incluido el par con MaterialID nil.
type SharingRule struct {
	ID         int64
	OwnerID    string
	MaterialID *int64 // nil = regla global
	IsPublic   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsGlobal indica si la regla aplica a todo el inventario del dueño.
func (r *SharingRule) IsGlobal() bool {
	return r.MaterialID == nil
}
