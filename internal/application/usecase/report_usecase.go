package usecase

import (
	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
)

// SpoolReportGenerator puerto para el render del reporte PDF del inventario.
type SpoolReportGenerator interface {
	GenerateInventoryReport(owner *entity.User, spools []*entity.Spool) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del inventario del dueño.
type ReportUseCase struct {
	spools repository.SpoolRepository
	users  repository.UserRepository
	gen    SpoolReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(spools repository.SpoolRepository, users repository.UserRepository, gen SpoolReportGenerator) *ReportUseCase {
	return &ReportUseCase{spools: spools, users: users, gen: gen}
}

// InventoryPDF devuelve los bytes del PDF con todos los carretes del dueño.
func (uc *ReportUseCase) InventoryPDF(scope repository.Scope) ([]byte, error) {
	owner, err := uc.users.FindByID(scope.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	spools, err := uc.spools.ListAll(scope)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateInventoryReport(owner, spools)
}
