package repository

import "github.com/jcamargo/filamentario-api/internal/domain/entity"

// CatalogRepository define el puerto de persistencia para los catálogos
// compartidos (fabricantes, materiales, colores, diámetros, ubicaciones).
type CatalogRepository interface {
	Create(item *entity.CatalogItem) (int64, error)
	GetByID(kind entity.CatalogKind, id int64) (*entity.CatalogItem, error)
	ListByKind(kind entity.CatalogKind) ([]*entity.CatalogItem, error)
	Update(item *entity.CatalogItem) (bool, error)
	Delete(kind entity.CatalogKind, id int64) (bool, error)
}
