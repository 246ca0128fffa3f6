package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/filamentario-api/internal/application/usecase"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

func newPublicUC() (*usecase.PublicUseCase, *fakeSpoolRepo, *fakeSharingRepo, *fakeUserRepo) {
	spools := newFakeSpoolRepo()
	rules := newFakeSharingRepo()
	users := newFakeUserRepo()
	return usecase.NewPublicUseCase(spools, rules, users), spools, rules, users
}

func seedOwner(users *fakeUserRepo, id, name string) {
	_ = users.Create(&entity.User{ID: id, Email: id + "@test.local", Name: name})
}

func TestPublicView_SinReglasEs404(t *testing.T) {
	uc, spools, _, users := newPublicUC()
	seedOwner(users, ownerA, "Ana")
	seedSpool(t, spools, ownerA, "PLA Rojo")

	_, err := uc.View(ownerA)
	assert.ErrorIs(t, err, domain.ErrNothingShared,
		"sin reglas no hay vista pública, aunque exista inventario")
}

func TestPublicView_ReglaGlobalExponeTodoConIdentidad(t *testing.T) {
	uc, spools, rules, users := newPublicUC()
	seedOwner(users, ownerA, "Ana")
	seedSpool(t, spools, ownerA, "PLA Rojo")
	seedSpool(t, spools, ownerA, "PETG Azul")
	require.NoError(t, rules.ReplaceForOwner(ownerA, []*entity.SharingRule{
		{OwnerID: ownerA, IsPublic: true}, // global
	}))

	out, err := uc.View(ownerA)
	require.NoError(t, err)

	assert.Len(t, out.Spools, 2)
	assert.Equal(t, ownerA, out.Owner.ID)
	assert.Equal(t, "Ana", out.Owner.Name)
}

func TestPublicView_ReglasSinCoincidenciasEsListaVacia(t *testing.T) {
	uc, spools, rules, users := newPublicUC()
	seedOwner(users, ownerA, "Ana")
	seedSpool(t, spools, ownerA, "PLA Rojo") // material "1"
	mid := int64(42)
	require.NoError(t, rules.ReplaceForOwner(ownerA, []*entity.SharingRule{
		{OwnerID: ownerA, MaterialID: &mid, IsPublic: true},
	}))

	out, err := uc.View(ownerA)
	require.NoError(t, err, "con reglas pero sin coincidencias la vista es 200 con lista vacía")
	assert.Empty(t, out.Spools)
}

func TestPublicView_DuenoInexistente(t *testing.T) {
	uc, _, rules, _ := newPublicUC()
	require.NoError(t, rules.ReplaceForOwner(ownerA, []*entity.SharingRule{
		{OwnerID: ownerA, IsPublic: true},
	}))

	_, err := uc.View(ownerA)
	assert.ErrorIs(t, err, domain.ErrNotFound, "las reglas huérfanas no exponen a un dueño borrado")
}
