package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/application/usecase"
	"github.com/jcamargo/filamentario-api/internal/domain"
)

func int64Ptr(n int64) *int64 { return &n }

func TestSharingPut_ReemplazaElConjuntoCompleto(t *testing.T) {
	repo := newFakeSharingRepo()
	uc := usecase.NewSharingUseCase(repo)

	_, err := uc.Put(ownerA, dto.PutSharingRequest{Rules: []dto.SharingRuleDTO{
		{MaterialID: int64Ptr(7), IsPublic: true},
	}})
	require.NoError(t, err)

	out, err := uc.Put(ownerA, dto.PutSharingRequest{Rules: []dto.SharingRuleDTO{
		{IsPublic: true}, // global
	}})
	require.NoError(t, err)

	require.Len(t, out.Rules, 1, "PUT sustituye, no acumula")
	assert.Nil(t, out.Rules[0].MaterialID)
	assert.True(t, out.Rules[0].IsPublic)
}

func TestSharingPut_RechazaReglasRepetidasPorMaterial(t *testing.T) {
	uc := usecase.NewSharingUseCase(newFakeSharingRepo())

	_, err := uc.Put(ownerA, dto.PutSharingRequest{Rules: []dto.SharingRuleDTO{
		{MaterialID: int64Ptr(7), IsPublic: true},
		{MaterialID: int64Ptr(7), IsPublic: false},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Put(ownerA, dto.PutSharingRequest{Rules: []dto.SharingRuleDTO{
		{IsPublic: true},
		{IsPublic: false}, // segunda global
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la regla global también es única")
}

func TestSharingPut_ConjuntoVacioApagaLaVistaPublica(t *testing.T) {
	repo := newFakeSharingRepo()
	uc := usecase.NewSharingUseCase(repo)

	_, err := uc.Put(ownerA, dto.PutSharingRequest{Rules: []dto.SharingRuleDTO{{IsPublic: true}}})
	require.NoError(t, err)

	out, err := uc.Put(ownerA, dto.PutSharingRequest{})
	require.NoError(t, err)
	assert.Empty(t, out.Rules)

	rules, _ := repo.ListByOwner(ownerA)
	assert.Empty(t, rules)
}

func TestSharingGet_SoloDelDueno(t *testing.T) {
	repo := newFakeSharingRepo()
	uc := usecase.NewSharingUseCase(repo)

	_, err := uc.Put(ownerA, dto.PutSharingRequest{Rules: []dto.SharingRuleDTO{{IsPublic: true}}})
	require.NoError(t, err)

	out, err := uc.Get(ownerB)
	require.NoError(t, err)
	assert.Empty(t, out.Rules, "las reglas de otro dueño no se filtran")
}
