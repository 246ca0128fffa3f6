package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/importer"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
	"github.com/jcamargo/filamentario-api/pkg/logger"
)

// BatchUseCase aplica un patch broadcast o un borrado a una lista de ids bajo
// el scope de un dueño. El procesamiento es secuencial y sin transacción entre
// filas: el éxito parcial es el modo esperado y el resultado es siempre una
// cuenta, nunca un booleano.
type BatchUseCase struct {
	repo repository.SpoolRepository
	log  *logger.Logger
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(repo repository.SpoolRepository, log *logger.Logger) *BatchUseCase {
	return &BatchUseCase{repo: repo, log: log}
}

// CoerceIDs convierte cada valor de la lista a int64. Los valores que no
// coercen (no numéricos, flotantes no enteros) se descartan en silencio, sin
// contarse como errores.
func CoerceIDs(raw []any) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			if n == math.Trunc(n) && n >= math.MinInt64 && n <= math.MaxInt64 {
				ids = append(ids, int64(n))
			}
		case string:
			if id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
				ids = append(ids, id)
			}
		case json.Number:
			if id, err := n.Int64(); err == nil {
				ids = append(ids, id)
			}
		case int:
			ids = append(ids, int64(n))
		case int64:
			ids = append(ids, n)
		}
	}
	return ids
}

// Update aplica el mismo patch a cada id saneado. Un id inexistente o de otro
// dueño se salta sin abortar el lote; un error del store en una fila tampoco
// corta las siguientes.
func (uc *BatchUseCase) Update(scope repository.Scope, in dto.BatchUpdateRequest) (*dto.BatchUpdateResponse, error) {
	ids := CoerceIDs(in.IDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: la lista de ids quedó vacía tras el saneo", domain.ErrInvalidInput)
	}
	if in.Updates == nil {
		return nil, fmt.Errorf("%w: updates es requerido", domain.ErrInvalidInput)
	}
	patch, err := patchFromDTO(*in.Updates)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: updates no trae campos", domain.ErrInvalidInput)
	}

	updated := 0
	for _, id := range ids {
		ok, err := uc.repo.ApplyPatch(scope, id, patch)
		if err != nil {
			uc.log.Warn().Err(err).Int64("spool_id", id).Msg("fila del batch update falló, se continúa")
			continue
		}
		if ok {
			updated++
		}
	}
	uc.log.Info().Str("owner_id", scope.OwnerID).Int("solicitados", len(ids)).Int("actualizados", updated).Msg("batch update completado")
	return &dto.BatchUpdateResponse{UpdatedCount: updated}, nil
}

// Delete borra cada id saneado bajo el scope. Los ids ajenos o inexistentes se
// saltan; el resultado es la cuenta de filas realmente borradas.
func (uc *BatchUseCase) Delete(scope repository.Scope, in dto.BatchDeleteRequest) (*dto.BatchDeleteResponse, error) {
	ids := CoerceIDs(in.IDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: la lista de ids quedó vacía tras el saneo", domain.ErrInvalidInput)
	}

	deleted := 0
	for _, id := range ids {
		ok, err := uc.repo.Delete(scope, id)
		if err != nil {
			uc.log.Warn().Err(err).Int64("spool_id", id).Msg("fila del batch delete falló, se continúa")
			continue
		}
		if ok {
			deleted++
		}
	}
	uc.log.Info().Str("owner_id", scope.OwnerID).Int("solicitados", len(ids)).Int("borrados", deleted).Msg("batch delete completado")
	return &dto.BatchDeleteResponse{DeletedCount: deleted}, nil
}

// patchFromDTO valida y convierte el patch del request al patch del store.
// Las validaciones son a nivel de request: un valor malformado rechaza toda la
// petición (400), a diferencia de las fallas por fila.
func patchFromDTO(in dto.UpdateSpoolRequest) (repository.SpoolPatch, error) {
	var p repository.SpoolPatch
	if in.Name != nil && *in.Name == "" {
		return p, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	if in.Material != nil && *in.Material == "" {
		return p, fmt.Errorf("%w: material no puede quedar vacío", domain.ErrInvalidInput)
	}
	if in.TotalWeight != nil && in.TotalWeight.IsNegative() {
		return p, fmt.Errorf("%w: totalWeight debe ser >= 0", domain.ErrInvalidInput)
	}
	if in.RemainingPct != nil && (in.RemainingPct.IsNegative() || in.RemainingPct.GreaterThan(pctMax())) {
		return p, fmt.Errorf("%w: remainingPercentage debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	if in.Status != nil && *in.Status != entity.StatusSealed && *in.Status != entity.StatusOpened {
		return p, fmt.Errorf("%w: status debe ser sealed u opened", domain.ErrInvalidInput)
	}
	if in.SpoolType != nil && *in.SpoolType != entity.SpoolTypeSpooled && *in.SpoolType != entity.SpoolTypeSpoolless {
		return p, fmt.Errorf("%w: spoolType debe ser spooled o spoolless", domain.ErrInvalidInput)
	}
	if in.ColorCode != nil && *in.ColorCode != "" && !importer.ValidHexColor(*in.ColorCode) {
		return p, fmt.Errorf("%w: colorCode debe ser #RRGGBB o #RGB", domain.ErrInvalidInput)
	}
	purchase, err := parseDatePtr(in.PurchaseDate)
	if err != nil {
		return p, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	drying, err := parseDatePtr(in.LastDryingDate)
	if err != nil {
		return p, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	p = repository.SpoolPatch{
		Name:            in.Name,
		Material:        in.Material,
		ColorName:       in.ColorName,
		ColorCode:       in.ColorCode,
		Manufacturer:    in.Manufacturer,
		Diameter:        in.Diameter,
		PrintTemp:       in.PrintTemp,
		TotalWeight:     in.TotalWeight,
		RemainingPct:    in.RemainingPct,
		PurchasePrice:   in.PurchasePrice,
		Status:          in.Status,
		SpoolType:       in.SpoolType,
		DryerCount:      in.DryerCount,
		StorageLocation: in.StorageLocation,
	}
	if in.PurchaseDate != nil {
		p.PurchaseDate = purchase
	}
	if in.LastDryingDate != nil {
		p.LastDryingDate = drying
	}
	return p, nil
}
