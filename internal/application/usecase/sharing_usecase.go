package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
)

// SharingUseCase administra las reglas de compartición del dueño.
type SharingUseCase struct {
	repo repository.SharingRuleRepository
}

// NewSharingUseCase construye el caso de uso.
func NewSharingUseCase(repo repository.SharingRuleRepository) *SharingUseCase {
	return &SharingUseCase{repo: repo}
}

// Get devuelve las reglas vigentes del dueño.
func (uc *SharingUseCase) Get(ownerID string) (*dto.SharingRulesResponse, error) {
	rules, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SharingRuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, dto.SharingRuleDTO{MaterialID: r.MaterialID, IsPublic: r.IsPublic})
	}
	return &dto.SharingRulesResponse{Rules: out}, nil
}

// Put reemplaza el conjunto completo de reglas del dueño. Rechaza más de una
// regla por material (incluida la global, materialId nil).
func (uc *SharingUseCase) Put(ownerID string, in dto.PutSharingRequest) (*dto.SharingRulesResponse, error) {
	seen := make(map[string]struct{}, len(in.Rules))
	rules := make([]*entity.SharingRule, 0, len(in.Rules))
	now := time.Now()
	for _, r := range in.Rules {
		key := "global"
		if r.MaterialID != nil {
			key = strconv.FormatInt(*r.MaterialID, 10)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: regla repetida para material %s", domain.ErrInvalidInput, key)
		}
		seen[key] = struct{}{}
		rules = append(rules, &entity.SharingRule{
			OwnerID:    ownerID,
			MaterialID: r.MaterialID,
			IsPublic:   r.IsPublic,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if err := uc.repo.ReplaceForOwner(ownerID, rules); err != nil {
		return nil, err
	}
	return uc.Get(ownerID)
}
