package usecase

import (
	"fmt"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/importer"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
)

// SpoolUseCase casos de uso CRUD individuales para carretes.
type SpoolUseCase struct {
	repo repository.SpoolRepository
}

// NewSpoolUseCase construye el caso de uso.
func NewSpoolUseCase(repo repository.SpoolRepository) *SpoolUseCase {
	return &SpoolUseCase{repo: repo}
}

// Create crea un carrete nuevo validando los invariantes del dominio.
func (uc *SpoolUseCase) Create(scope repository.Scope, in dto.CreateSpoolRequest) (*dto.SpoolResponse, error) {
	spool, err := spoolFromCreateRequest(scope.OwnerID, in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := spool.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if spool.ColorCode != "" && !importer.ValidHexColor(spool.ColorCode) {
		return nil, fmt.Errorf("%w: colorCode debe ser #RRGGBB o #RGB", domain.ErrInvalidInput)
	}
	id, err := uc.repo.Create(scope, spool)
	if err != nil {
		return nil, err
	}
	spool.ID = id
	return toSpoolResponse(spool), nil
}

// GetByID obtiene un carrete bajo el scope del dueño.
func (uc *SpoolUseCase) GetByID(scope repository.Scope, id int64) (*dto.SpoolResponse, error) {
	spool, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if spool == nil {
		return nil, nil
	}
	return toSpoolResponse(spool), nil
}

// List lista los carretes del dueño con paginación.
func (uc *SpoolUseCase) List(scope repository.Scope, page dto.PageRequest) (*dto.SpoolListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SpoolResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSpoolResponse(s))
	}
	return &dto.SpoolListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica un patch a un carrete individual. Devuelve nil si no existe
// bajo el scope.
func (uc *SpoolUseCase) Update(scope repository.Scope, id int64, in dto.UpdateSpoolRequest) (*dto.SpoolResponse, error) {
	patch, err := patchFromDTO(in)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: el patch no trae campos", domain.ErrInvalidInput)
	}
	ok, err := uc.repo.ApplyPatch(scope, id, patch)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return uc.GetByID(scope, id)
}

// Delete borra un carrete. Idempotente: un id inexistente o ajeno no es error.
func (uc *SpoolUseCase) Delete(scope repository.Scope, id int64) error {
	_, err := uc.repo.Delete(scope, id)
	return err
}
