package usecase

import (
	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
	"github.com/jcamargo/filamentario-api/internal/domain/sharing"
)

// PublicUseCase arma la vista pública de solo lectura del inventario de un
// dueño para visitantes anónimos.
type PublicUseCase struct {
	spools repository.SpoolRepository
	rules  repository.SharingRuleRepository
	users  repository.UserRepository
}

// NewPublicUseCase construye el caso de uso.
func NewPublicUseCase(spools repository.SpoolRepository, rules repository.SharingRuleRepository, users repository.UserRepository) *PublicUseCase {
	return &PublicUseCase{spools: spools, rules: rules, users: users}
}

// View devuelve los carretes visibles del dueño. Un dueño sin ninguna regla de
// compartición responde ErrNothingShared (404), distinguible de una colección
// visible vacía; así la capa de presentación diferencia "sin inventario
// público" de "inventario vacío".
func (uc *PublicUseCase) View(ownerID string) (*dto.PublicSpoolsResponse, error) {
	rules, err := uc.rules.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, domain.ErrNothingShared
	}
	owner, err := uc.users.FindByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.spools.ListAll(repository.Scope{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	visible := sharing.Filter(all, rules)
	items := make([]dto.SpoolResponse, 0, len(visible))
	for _, s := range visible {
		items = append(items, *toSpoolResponse(s))
	}
	return &dto.PublicSpoolsResponse{
		Spools: items,
		Owner:  dto.PublicOwner{ID: owner.ID, Name: owner.Name},
	}, nil
}
