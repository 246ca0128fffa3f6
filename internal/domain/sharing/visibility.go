// Package sharing implementa el filtro de visibilidad de la vista pública:
// decide qué carretes de un dueño puede ver un visitante anónimo según sus
// reglas de compartición.
package sharing

import (
	"strconv"

	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

// Policy es la política de visibilidad derivada de las reglas de un dueño.
type Policy struct {
	// Global: existe una regla con MaterialID nil e IsPublic true; expone todo
	// el inventario y corta la evaluación por carrete.
	Global bool
	// PublicMaterials: ids de material con regla pública, evaluados por carrete
	// cuando no hay regla global.
	PublicMaterials map[int64]struct{}
}

// NewPolicy deriva la política a partir de las reglas del dueño.
func NewPolicy(rules []*entity.SharingRule) Policy {
	p := Policy{PublicMaterials: make(map[int64]struct{})}
	for _, r := range rules {
		if !r.IsPublic {
			continue
		}
		if r.IsGlobal() {
			p.Global = true
			continue
		}
		p.PublicMaterials[*r.MaterialID] = struct{}{}
	}
	return p
}

// IsVisible decide si un carrete es visible bajo la política. El campo
// Material se interpreta como id de material de catálogo; si no es numérico el
// carrete solo es visible bajo la regla global.
func (p Policy) IsVisible(s *entity.Spool) bool {
	if p.Global {
		return true
	}
	materialID, err := strconv.ParseInt(s.Material, 10, 64)
	if err != nil {
		return false
	}
	_, ok := p.PublicMaterials[materialID]
	return ok
}

// Filter devuelve el subconjunto visible del inventario. No distingue entre
// "sin reglas" y "nada visible": esa distinción (404 vs lista vacía) la hace
// el caso de uso consultando las reglas.
func Filter(spools []*entity.Spool, rules []*entity.SharingRule) []*entity.Spool {
	p := NewPolicy(rules)
	visible := make([]*entity.Spool, 0, len(spools))
	for _, s := range spools {
		if p.IsVisible(s) {
			visible = append(visible, s)
		}
	}
	return visible
}
