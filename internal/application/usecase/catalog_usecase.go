package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/importer"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
	"github.com/jcamargo/filamentario-api/pkg/logger"
)

// CatalogUseCase casos de uso para los catálogos compartidos: CRUD, guardia de
// borrado (soft-FK contra los carretes) e importación CSV.
type CatalogUseCase struct {
	repo   repository.CatalogRepository
	spools repository.SpoolRepository
	log    *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository, spools repository.SpoolRepository, log *logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, spools: spools, log: log}
}

// List lista un catálogo completo ordenado por sortOrder y nombre.
func (uc *CatalogUseCase) List(kind entity.CatalogKind) (*dto.CatalogListResponse, error) {
	list, err := uc.repo.ListByKind(kind)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toCatalogResponse(it))
	}
	return &dto.CatalogListResponse{Items: items}, nil
}

// Create crea un valor de catálogo verificando la unicidad del nombre (para
// colores, del par nombre+código).
func (uc *CatalogUseCase) Create(kind entity.CatalogKind, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if kind == entity.KindColor && !importer.ValidHexColor(in.Code) {
		return nil, fmt.Errorf("%w: code debe ser #RRGGBB o #RGB", domain.ErrInvalidInput)
	}
	keys, err := uc.existingKeys(kind)
	if err != nil {
		return nil, err
	}
	if keys.Has(catalogItemKey(kind, in.Name, in.Code)) {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.CatalogItem{
		Kind:      kind,
		Name:      strings.TrimSpace(in.Name),
		Code:      in.Code,
		SortOrder: in.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := uc.repo.Create(item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return toCatalogResponse(item), nil
}

// Update actualiza un valor de catálogo. Devuelve nil si no existe.
func (uc *CatalogUseCase) Update(kind entity.CatalogKind, id int64, in dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	item, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Code != nil {
		if kind == entity.KindColor && !importer.ValidHexColor(*in.Code) {
			return nil, fmt.Errorf("%w: code debe ser #RRGGBB o #RGB", domain.ErrInvalidInput)
		}
		item.Code = *in.Code
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	item.UpdatedAt = time.Now()
	if _, err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toCatalogResponse(item), nil
}

// Delete borra un valor de catálogo si ningún carrete lo referencia por valor
// textual (soft-FK a nivel de aplicación, no del storage).
func (uc *CatalogUseCase) Delete(kind entity.CatalogKind, id int64) error {
	item, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	field, value := spoolReference(item)
	n, err := uc.spools.CountByFieldValue(field, value)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrCatalogInUse
	}
	_, err = uc.repo.Delete(kind, id)
	return err
}

// spoolReference devuelve la columna de carrete y el valor textual por el que
// un valor de catálogo es referenciado. Los materiales se referencian por id
// (los selects de la UI guardan el id como string); el resto por nombre.
func spoolReference(item *entity.CatalogItem) (field, value string) {
	switch item.Kind {
	case entity.KindMaterial:
		return "material", strconv.FormatInt(item.ID, 10)
	case entity.KindManufacturer:
		return "manufacturer", item.Name
	case entity.KindColor:
		return "color_name", item.Name
	case entity.KindDiameter:
		return "diameter", item.Name
	default:
		return "storage_location", item.Name
	}
}

// Columna única esperada en el CSV de catálogos simples.
var catalogCSVFields = []importer.Field{{Name: "name", Col: 0}}

// Campos esperados del CSV de colores, solo para la heurística de cabecera;
// las filas usan la división fija por los dos primeros delimitadores.
var colorCSVFields = []importer.Field{
	{Name: "brand", Col: 0},
	{Name: "name", Col: 1},
	{Name: "hex", Col: 2},
}

// ImportCSV importa un catálogo. Los colores usan el formato fijo
// "brand,name,hex"; el resto una sola columna con el nombre. Mismo contrato de
// tally que la importación de carretes: una fila mala nunca aborta el lote.
func (uc *CatalogUseCase) ImportCSV(kind entity.CatalogKind, csvData string) (*dto.ImportOutcomeResponse, error) {
	keys, err := uc.existingKeys(kind)
	if err != nil {
		return nil, err
	}
	runID := uuid.New().String()

	var out dto.ImportOutcomeResponse
	if kind == entity.KindColor {
		uc.importColors(csvData, keys, &out)
	} else {
		uc.importNames(kind, csvData, keys, &out)
	}

	uc.log.Info().
		Str("run_id", runID).
		Str("kind", string(kind)).
		Int("created", out.Created).
		Int("duplicates", out.Duplicates).
		Int("errors", out.Errors).
		Msg("importación CSV de catálogo completada")
	return &out, nil
}

func (uc *CatalogUseCase) importNames(kind entity.CatalogKind, csvData string, keys importer.KeySet, out *dto.ImportOutcomeResponse) {
	for row := range importer.Parse(csvData, catalogCSVFields) {
		name := row["name"]
		switch importer.ClassifyCatalogName(name, keys) {
		case importer.ClassDuplicate:
			out.Duplicates++
		case importer.ClassReject:
			out.Errors++
		case importer.ClassCreate:
			uc.createImported(kind, strings.TrimSpace(name), "", importer.CatalogKey(name), keys, out)
		}
	}
}

// importColors usa la división simplificada por los dos primeros delimitadores
// (el hex nunca contiene comas, pero el nombre de la tercera parte podría).
func (uc *CatalogUseCase) importColors(csvData string, keys importer.KeySet, out *dto.ImportOutcomeResponse) {
	first := true
	for line := range strings.Lines(csvData) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first {
			first = false
			if importer.LooksLikeHeader(importer.SplitQuoted(line), colorCSVFields) {
				continue
			}
		}
		brand, name, hex, ok := importer.SplitTriple(line)
		if !ok {
			out.Errors++
			continue
		}
		switch importer.ClassifyColor(brand, name, hex, keys) {
		case importer.ClassDuplicate:
			out.Duplicates++
		case importer.ClassReject:
			out.Errors++
		case importer.ClassCreate:
			display := importer.ColorDisplayName(name, brand)
			uc.createImported(entity.KindColor, display, hex, importer.ColorKey(display, hex), keys, out)
		}
	}
}

func (uc *CatalogUseCase) createImported(kind entity.CatalogKind, name, code, key string, keys importer.KeySet, out *dto.ImportOutcomeResponse) {
	now := time.Now()
	item := &entity.CatalogItem{Kind: kind, Name: name, Code: code, CreatedAt: now, UpdatedAt: now}
	if _, err := uc.repo.Create(item); err != nil {
		uc.log.Warn().Err(err).Str("kind", string(kind)).Str("name", name).Msg("fila de importación de catálogo falló, se continúa")
		out.Errors++
		return
	}
	keys.Add(key)
	out.Created++
}

// existingKeys materializa las claves de duplicado vigentes del catálogo.
func (uc *CatalogUseCase) existingKeys(kind entity.CatalogKind) (importer.KeySet, error) {
	list, err := uc.repo.ListByKind(kind)
	if err != nil {
		return nil, err
	}
	keys := importer.NewKeySet()
	for _, it := range list {
		keys.Add(catalogItemKey(kind, it.Name, it.Code))
	}
	return keys, nil
}

// catalogItemKey aplica la clave de duplicado que corresponde al kind: los
// colores incluyen el código, el resto solo el nombre.
func catalogItemKey(kind entity.CatalogKind, name, code string) string {
	if kind == entity.KindColor {
		return importer.ColorKey(name, code)
	}
	return importer.CatalogKey(name)
}

func toCatalogResponse(it *entity.CatalogItem) *dto.CatalogItemResponse {
	if it == nil {
		return nil
	}
	return &dto.CatalogItemResponse{
		ID:        it.ID,
		Kind:      string(it.Kind),
		Name:      it.Name,
		Code:      it.Code,
		SortOrder: it.SortOrder,
	}
}
