package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/filamentario-api/internal/application/usecase"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/pkg/logger"
)

const csvHeader = "name,manufacturer,material,colorName,colorCode,diameter,printTemp,totalWeight,remainingPercentage,purchaseDate,purchasePrice,status,spoolType,dryerCount,lastDryingDate,storageLocation"

// fila mínima válida: name en col 0, totalWeight en col 7, remainingPercentage en col 8.
func csvRow(name string) string {
	return name + ",,1,,,,,1,100,,,,,,,"
}

func TestImportCSV_TallySumaLasFilas(t *testing.T) {
	repo := newFakeSpoolRepo()
	seedSpool(t, repo, ownerA, "PLA Rojo") // existente: la fila homónima será duplicado
	uc := usecase.NewImportExportUseCase(repo, logger.Nop())

	csv := csvHeader + "\n" +
		csvRow("PETG Azul") + "\n" + // crea
		csvRow("pla rojo") + "\n" + // duplicado del existente (case-insensitive)
		"Sin Peso,,1,,,,,,100,,,,,,,\n" // inválida: totalWeight vacío

	out, err := uc.ImportCSV(scopeA(), csv)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 1, out.Duplicates)
	assert.Equal(t, 1, out.Errors)
	assert.Equal(t, 3, out.Created+out.Duplicates+out.Errors,
		"la suma del tally debe igualar las filas de datos no vacías")
}

func TestImportCSV_Idempotencia(t *testing.T) {
	repo := newFakeSpoolRepo()
	uc := usecase.NewImportExportUseCase(repo, logger.Nop())
	csv := csvRow("PLA Rojo") + "\n" + csvRow("PETG Azul") + "\n"

	first, err := uc.ImportCSV(scopeA(), csv)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Duplicates)

	second, err := uc.ImportCSV(scopeA(), csv)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created, "reimportar el mismo documento no crea nada")
	assert.Equal(t, 2, second.Duplicates)
}

func TestImportCSV_DuplicadoDentroDeLaMismaCorrida(t *testing.T) {
	repo := newFakeSpoolRepo()
	uc := usecase.NewImportExportUseCase(repo, logger.Nop())

	out, err := uc.ImportCSV(scopeA(), csvRow("PLA Rojo")+"\n"+csvRow("PLA ROJO")+"\n")
	require.NoError(t, err)

	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 1, out.Duplicates, "la segunda aparición en la misma corrida es duplicado")
}

func TestImportCSV_FilaMalaNoAbortaElLote(t *testing.T) {
	repo := newFakeSpoolRepo()
	uc := usecase.NewImportExportUseCase(repo, logger.Nop())

	csv := csvRow("Primero") + "\n" +
		"Roto,,1,,,,,no-es-numero,100,,,,,,,\n" +
		csvRow("Último") + "\n"

	out, err := uc.ImportCSV(scopeA(), csv)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Created, "las filas posteriores a la mala también se procesan")
	assert.Equal(t, 1, out.Errors)
}

func TestImportJSON_CuerpoNoArrayEsInvalido(t *testing.T) {
	uc := usecase.NewImportExportUseCase(newFakeSpoolRepo(), logger.Nop())

	_, err := uc.ImportJSON(scopeA(), json.RawMessage(`{"name":"PLA"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un documento que no es array invalida la petición completa")
}

func TestImportJSON_FilasMalasSumanErrores(t *testing.T) {
	repo := newFakeSpoolRepo()
	uc := usecase.NewImportExportUseCase(repo, logger.Nop())

	raw := json.RawMessage(`[
		{"name":"PLA Rojo","material":"1","totalWeight":"1","remainingPercentage":"100"},
		"no soy un objeto",
		{"name":"","material":"1","totalWeight":"1","remainingPercentage":"100"}
	]`)
	out, err := uc.ImportJSON(scopeA(), raw)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 2, out.Errors, "fila malformada y fila sin nombre cuentan como errores")
}

func TestExportCSV_ImportCSV_RoundTrip(t *testing.T) {
	origen := newFakeSpoolRepo()
	seedSpool(t, origen, ownerA, "Gris, oscuro") // nombre con delimitador
	seedSpool(t, origen, ownerA, "PETG Azul")
	ucOrigen := usecase.NewImportExportUseCase(origen, logger.Nop())

	doc, err := ucOrigen.ExportCSV(scopeA())
	require.NoError(t, err)
	assert.Contains(t, doc, `"Gris, oscuro"`, "el campo con coma debe ir entre comillas")

	destino := newFakeSpoolRepo()
	ucDestino := usecase.NewImportExportUseCase(destino, logger.Nop())
	out, err := ucDestino.ImportCSV(scopeA(), doc)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Created, "todo lo exportado debe reimportarse")
	assert.Equal(t, 0, out.Errors)

	lista, _ := destino.ListAll(scopeA())
	require.Len(t, lista, 2)
	assert.Equal(t, "Gris, oscuro", lista[0].Name, "el nombre con coma sobrevive el round-trip")
}

func TestExportJSON_DocumentoEstructurado(t *testing.T) {
	repo := newFakeSpoolRepo()
	seedSpool(t, repo, ownerA, "PLA Rojo")
	uc := usecase.NewImportExportUseCase(repo, logger.Nop())

	doc, err := uc.ExportJSON(scopeA())
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(doc, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "PLA Rojo", items[0]["name"])
}
