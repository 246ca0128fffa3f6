package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/importer"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
	"github.com/jcamargo/filamentario-api/pkg/logger"
)

// Orden fijo de columnas del CSV de carretes (cabecera opcional pero recomendada).
var spoolCSVFields = []importer.Field{
	{Name: "name", Col: 0},
	{Name: "manufacturer", Col: 1},
	{Name: "material", Col: 2},
	{Name: "colorName", Col: 3},
	{Name: "colorCode", Col: 4},
	{Name: "diameter", Col: 5},
	{Name: "printTemp", Col: 6},
	{Name: "totalWeight", Col: 7},
	{Name: "remainingPercentage", Col: 8},
	{Name: "purchaseDate", Col: 9},
	{Name: "purchasePrice", Col: 10},
	{Name: "status", Col: 11},
	{Name: "spoolType", Col: 12},
	{Name: "dryerCount", Col: 13},
	{Name: "lastDryingDate", Col: 14},
	{Name: "storageLocation", Col: 15},
}

const spoolCSVHeader = "name,manufacturer,material,colorName,colorCode,diameter,printTemp,totalWeight,remainingPercentage,purchaseDate,purchasePrice,status,spoolType,dryerCount,lastDryingDate,storageLocation"

// ImportExportUseCase es la fachada de importación/exportación masiva de
// carretes: orquesta parser -> resolutor de duplicados -> store.
//
// La importación toma un único snapshot del inventario al inicio de la corrida
// y no lo refresca por fila: dos importaciones concurrentes del mismo dueño
// pueden no detectar los duplicados recién insertados por la otra. Carrera
// conocida y aceptada.
type ImportExportUseCase struct {
	repo repository.SpoolRepository
	log  *logger.Logger
}

// NewImportExportUseCase construye la fachada.
func NewImportExportUseCase(repo repository.SpoolRepository, log *logger.Logger) *ImportExportUseCase {
	return &ImportExportUseCase{repo: repo, log: log}
}

// ImportCSV importa el texto CSV del cuerpo de la petición. Una fila mala
// nunca aborta el lote: se cuenta en errors y se sigue con la siguiente.
// created + duplicates + errors == filas de datos no vacías.
func (uc *ImportExportUseCase) ImportCSV(scope repository.Scope, csvData string) (*dto.ImportOutcomeResponse, error) {
	keys, err := uc.snapshotKeys(scope)
	if err != nil {
		return nil, err
	}
	runID := uuid.New().String()
	started := time.Now()

	var out dto.ImportOutcomeResponse
	for row := range importer.Parse(csvData, spoolCSVFields) {
		spool, err := uc.spoolFromRow(scope.OwnerID, row)
		if err != nil {
			out.Errors++
			continue
		}
		uc.applyRow(scope, spool, keys, &out)
	}

	uc.log.Info().
		Str("run_id", runID).
		Str("owner_id", scope.OwnerID).
		Int("created", out.Created).
		Int("duplicates", out.Duplicates).
		Int("errors", out.Errors).
		Dur("elapsed", time.Since(started)).
		Msg("importación CSV de carretes completada")
	return &out, nil
}

// ImportJSON importa un array JSON de carretes. Si el cuerpo no es un array la
// petición completa es inválida (400); una fila malformada solo suma a errors.
func (uc *ImportExportUseCase) ImportJSON(scope repository.Scope, raw json.RawMessage) (*dto.ImportOutcomeResponse, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: jsonData debe ser un array", domain.ErrInvalidInput)
	}
	keys, err := uc.snapshotKeys(scope)
	if err != nil {
		return nil, err
	}
	runID := uuid.New().String()

	var out dto.ImportOutcomeResponse
	for _, rowRaw := range rows {
		var in dto.CreateSpoolRequest
		if err := json.Unmarshal(rowRaw, &in); err != nil {
			out.Errors++
			continue
		}
		spool, err := spoolFromCreateRequest(scope.OwnerID, in)
		if err != nil {
			out.Errors++
			continue
		}
		uc.applyRow(scope, spool, keys, &out)
	}

	uc.log.Info().
		Str("run_id", runID).
		Str("owner_id", scope.OwnerID).
		Int("created", out.Created).
		Int("duplicates", out.Duplicates).
		Int("errors", out.Errors).
		Msg("importación JSON de carretes completada")
	return &out, nil
}

// snapshotKeys toma el snapshot de claves de duplicado al inicio de la corrida.
func (uc *ImportExportUseCase) snapshotKeys(scope repository.Scope) (importer.KeySet, error) {
	existing, err := uc.repo.ListAll(scope)
	if err != nil {
		return nil, err
	}
	keys := importer.NewKeySet()
	for _, s := range existing {
		keys.Add(importer.SpoolKey(s.Name))
	}
	return keys, nil
}

// applyRow clasifica y, si procede, crea la fila, actualizando el tally.
func (uc *ImportExportUseCase) applyRow(scope repository.Scope, spool *entity.Spool, keys importer.KeySet, out *dto.ImportOutcomeResponse) {
	switch importer.ClassifySpool(spool, keys) {
	case importer.ClassDuplicate:
		out.Duplicates++
	case importer.ClassReject:
		out.Errors++
	case importer.ClassCreate:
		if _, err := uc.repo.Create(scope, spool); err != nil {
			uc.log.Warn().Err(err).Str("name", spool.Name).Msg("fila de importación falló al crear, se continúa")
			out.Errors++
			return
		}
		keys.Add(importer.SpoolKey(spool.Name))
		out.Created++
	}
}

// spoolFromRow proyecta una fila parseada a la entidad. Cualquier valor
// presente pero malformado invalida la fila entera.
func (uc *ImportExportUseCase) spoolFromRow(ownerID string, row importer.Row) (*entity.Spool, error) {
	now := time.Now()
	s := &entity.Spool{
		OwnerID:         ownerID,
		Name:            row["name"],
		Material:        row["material"],
		ColorName:       row["colorName"],
		ColorCode:       row["colorCode"],
		Manufacturer:    row["manufacturer"],
		Status:          row["status"],
		SpoolType:       row["spoolType"],
		StorageLocation: row["storageLocation"],
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var err error
	if s.Diameter, err = optDecimal(row["diameter"]); err != nil {
		return nil, err
	}
	if s.PrintTemp, err = optInt(row["printTemp"]); err != nil {
		return nil, err
	}
	if row["totalWeight"] == "" {
		return nil, fmt.Errorf("totalWeight es requerido")
	}
	if s.TotalWeight, err = decimal.NewFromString(row["totalWeight"]); err != nil {
		return nil, fmt.Errorf("totalWeight inválido: %q", row["totalWeight"])
	}
	if row["remainingPercentage"] == "" {
		return nil, fmt.Errorf("remainingPercentage es requerido")
	}
	if s.RemainingPct, err = decimal.NewFromString(row["remainingPercentage"]); err != nil {
		return nil, fmt.Errorf("remainingPercentage inválido: %q", row["remainingPercentage"])
	}
	if s.PurchaseDate, err = optDate(row["purchaseDate"]); err != nil {
		return nil, err
	}
	if s.PurchasePrice, err = optDecimal(row["purchasePrice"]); err != nil {
		return nil, err
	}
	if row["dryerCount"] != "" {
		n, convErr := strconv.Atoi(row["dryerCount"])
		if convErr != nil {
			return nil, fmt.Errorf("dryerCount inválido: %q", row["dryerCount"])
		}
		s.DryerCount = n
	}
	if s.LastDryingDate, err = optDate(row["lastDryingDate"]); err != nil {
		return nil, err
	}
	return s, nil
}

func optDecimal(v string) (*decimal.Decimal, error) {
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("decimal inválido: %q", v)
	}
	return &d, nil
}

func optInt(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("entero inválido: %q", v)
	}
	return &n, nil
}

func optDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, v)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %q", v)
	}
	return &t, nil
}

// ExportCSV serializa el inventario completo del dueño con la cabecera fija.
// Los campos que contienen el delimitador van entre comillas.
func (uc *ImportExportUseCase) ExportCSV(scope repository.Scope) (string, error) {
	list, err := uc.repo.ListAll(scope)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(spoolCSVHeader)
	sb.WriteByte('\n')
	for _, s := range list {
		cells := []string{
			s.Name,
			s.Manufacturer,
			s.Material,
			s.ColorName,
			s.ColorCode,
			decimalPtrString(s.Diameter),
			intPtrString(s.PrintTemp),
			s.TotalWeight.String(),
			s.RemainingPct.String(),
			datePtrString(s.PurchaseDate),
			decimalPtrString(s.PurchasePrice),
			s.Status,
			s.SpoolType,
			strconv.Itoa(s.DryerCount),
			datePtrString(s.LastDryingDate),
			s.StorageLocation,
		}
		for i, c := range cells {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(csvQuote(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// ExportJSON serializa el inventario completo del dueño como documento
// estructurado con sangría.
func (uc *ImportExportUseCase) ExportJSON(scope repository.Scope) ([]byte, error) {
	list, err := uc.repo.ListAll(scope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SpoolResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSpoolResponse(s))
	}
	return json.MarshalIndent(items, "", "  ")
}

// csvQuote envuelve en comillas los campos que contienen el delimitador o
// comillas, doblando las comillas internas.
func csvQuote(s string) string {
	if strings.ContainsAny(s, ",\"") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func decimalPtrString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func intPtrString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func datePtrString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.DateLayout)
}
