package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcamargo/filamentario-api/internal/application/dto"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

func pctMax() decimal.Decimal { return decimal.NewFromInt(100) }

// parseDatePtr convierte "YYYY-MM-DD" opcional a *time.Time.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida %q (se espera %s)", *s, dto.DateLayout)
	}
	return &t, nil
}

// formatDatePtr convierte *time.Time a "YYYY-MM-DD" opcional.
func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}

func toSpoolResponse(s *entity.Spool) *dto.SpoolResponse {
	if s == nil {
		return nil
	}
	return &dto.SpoolResponse{
		ID:              s.ID,
		OwnerID:         s.OwnerID,
		Name:            s.Name,
		Material:        s.Material,
		ColorName:       s.ColorName,
		ColorCode:       s.ColorCode,
		Manufacturer:    s.Manufacturer,
		Diameter:        s.Diameter,
		PrintTemp:       s.PrintTemp,
		TotalWeight:     s.TotalWeight,
		RemainingPct:    s.RemainingPct,
		PurchaseDate:    formatDatePtr(s.PurchaseDate),
		PurchasePrice:   s.PurchasePrice,
		Status:          s.Status,
		SpoolType:       s.SpoolType,
		DryerCount:      s.DryerCount,
		LastDryingDate:  formatDatePtr(s.LastDryingDate),
		StorageLocation: s.StorageLocation,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// spoolFromCreateRequest proyecta la entrada al dominio; las fechas malformadas
// devuelven error.
func spoolFromCreateRequest(ownerID string, in dto.CreateSpoolRequest) (*entity.Spool, error) {
	purchase, err := parseDatePtr(in.PurchaseDate)
	if err != nil {
		return nil, err
	}
	drying, err := parseDatePtr(in.LastDryingDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.Spool{
		OwnerID:         ownerID,
		Name:            in.Name,
		Material:        in.Material,
		ColorName:       in.ColorName,
		ColorCode:       in.ColorCode,
		Manufacturer:    in.Manufacturer,
		Diameter:        in.Diameter,
		PrintTemp:       in.PrintTemp,
		TotalWeight:     in.TotalWeight,
		RemainingPct:    in.RemainingPct,
		PurchaseDate:    purchase,
		PurchasePrice:   in.PurchasePrice,
		Status:          in.Status,
		SpoolType:       in.SpoolType,
		DryerCount:      in.DryerCount,
		LastDryingDate:  drying,
		StorageLocation: in.StorageLocation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
