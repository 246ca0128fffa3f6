package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
	"github.com/jcamargo/filamentario-api/pkg/logger"
)

const (
	ownerA = "00000000-0000-0000-0000-00000000000a"
	ownerB = "00000000-0000-0000-0000-00000000000b"
)

func scopeA() repository.Scope { return repository.Scope{OwnerID: ownerA} }

func seedSpool(t *testing.T, repo *fakeSpoolRepo, owner, name string) int64 {
	t.Helper()
	id, err := repo.Create(repository.Scope{OwnerID: owner}, &entity.Spool{
		Name:         name,
		Material:     "1",
		TotalWeight:  decimal.NewFromInt(1),
		RemainingPct: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return id
}

func strPtr(s string) *string { return &s }

func TestCoerceIDs(t *testing.T) {
	ids := usecase.CoerceIDs([]any{
		float64(3),       // número JSON entero
		"4",              // string numérico
		" 5 ",            // string con espacios
		float64(2.5),     // flotante no entero: se descarta
		"abc",            // no numérico: se descarta
		true,             // tipo no soportado: se descarta
		nil,              // nil: se descarta
		json.Number("7"), // json.Number
	})
	assert.Equal(t, []int64{3, 4, 5, 7}, ids,
		"los valores que no coercen se descartan en silencio")
}

func TestBatchUpdate_ListaVaciaTrasSaneo(t *testing.T) {
	uc := usecase.NewBatchUseCase(newFakeSpoolRepo(), logger.Nop())

	_, err := uc.Update(scopeA(), dto.BatchUpdateRequest{
		IDs:     []any{"abc", float64(1.5)},
		Updates: &dto.UpdateSpoolRequest{Name: strPtr("x")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una lista que queda vacía tras el saneo es 400, no un tally en cero")
}

func TestBatchUpdate_SinUpdates(t *testing.T) {
	repo := newFakeSpoolRepo()
	seedSpool(t, repo, ownerA, "PLA Rojo")
	uc := usecase.NewBatchUseCase(repo, logger.Nop())

	_, err := uc.Update(scopeA(), dto.BatchUpdateRequest{IDs: []any{float64(1)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBatchUpdate_PatchInvalidoRechazaTodaLaPeticion(t *testing.T) {
	repo := newFakeSpoolRepo()
	seedSpool(t, repo, ownerA, "PLA Rojo")
	uc := usecase.NewBatchUseCase(repo, logger.Nop())

	_, err := uc.Update(scopeA(), dto.BatchUpdateRequest{
		IDs:     []any{float64(1)},
		Updates: &dto.UpdateSpoolRequest{Status: strPtr("roto")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un valor malformado en updates rechaza la petición, no la fila")
}

func TestBatchUpdate_IdsAjenosEInexistentesSeSaltan(t *testing.T) {
	repo := newFakeSpoolRepo()
	id1 := seedSpool(t, repo, ownerA, "PLA Rojo")
	id2 := seedSpool(t, repo, ownerA, "PETG Azul")
	ajeno := seedSpool(t, repo, ownerB, "ABS Negro")
	uc := usecase.NewBatchUseCase(repo, logger.Nop())

	out, err := uc.Update(scopeA(), dto.BatchUpdateRequest{
		IDs:     []any{float64(id1), float64(id2), float64(ajeno), float64(999)},
		Updates: &dto.UpdateSpoolRequest{StorageLocation: strPtr("Estante 3")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.UpdatedCount, "solo las filas del dueño cuentan")

	otro, _ := repo.GetByID(repository.Scope{OwnerID: ownerB}, ajeno)
	assert.Empty(t, otro.StorageLocation, "el carrete de otro dueño no debe tocarse")
}

func TestBatchUpdate_ErrorDeFilaNoAbortaElLote(t *testing.T) {
	repo := newFakeSpoolRepo()
	id1 := seedSpool(t, repo, ownerA, "PLA Rojo")
	id2 := seedSpool(t, repo, ownerA, "PETG Azul")
	repo.failIDs[id1] = true
	uc := usecase.NewBatchUseCase(repo, logger.Nop())

	out, err := uc.Update(scopeA(), dto.BatchUpdateRequest{
		IDs:     []any{float64(id1), float64(id2)},
		Updates: &dto.UpdateSpoolRequest{DryerCount: intPtr(2)},
	})
	require.NoError(t, err, "el error por fila no es error de la petición")
	assert.Equal(t, 1, out.UpdatedCount, "la fila que falló no cuenta pero la siguiente sí")
}

func TestBatchDelete_CuentaSoloLoBorrado(t *testing.T) {
	repo := newFakeSpoolRepo()
	id1 := seedSpool(t, repo, ownerA, "PLA Rojo")
	seedSpool(t, repo, ownerA, "PETG Azul")
	ajeno := seedSpool(t, repo, ownerB, "ABS Negro")
	uc := usecase.NewBatchUseCase(repo, logger.Nop())

	out, err := uc.Delete(scopeA(), dto.BatchDeleteRequest{
		IDs: []any{float64(id1), float64(ajeno), "999"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.DeletedCount)

	resto, _ := repo.ListAll(repository.Scope{OwnerID: ownerB})
	assert.Len(t, resto, 1, "el carrete de otro dueño sobrevive al batch delete")
}

func TestBatchDelete_ListaVaciaTrasSaneo(t *testing.T) {
	uc := usecase.NewBatchUseCase(newFakeSpoolRepo(), logger.Nop())

	_, err := uc.Delete(scopeA(), dto.BatchDeleteRequest{IDs: []any{"x", "y"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func intPtr(n int) *int { return &n }
