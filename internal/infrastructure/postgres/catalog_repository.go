package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

// CatalogRepository implementa repository.CatalogRepository sobre PostgreSQL.
// Los cinco catálogos comparten tabla, discriminados por kind.
type CatalogRepository struct {
	db Querier
}

// NewCatalogRepository crea el repositorio de catálogos.
func NewCatalogRepository(db Querier) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const catalogColumns = `id, kind, name, code, sort_order, created_at, updated_at`

func scanCatalogItem(row pgx.Row) (*entity.CatalogItem, error) {
	var item entity.CatalogItem
	err := row.Scan(&item.ID, &item.Kind, &item.Name, &item.Code, &item.SortOrder, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserta un valor de catálogo y devuelve el id generado.
func (r *CatalogRepository) Create(item *entity.CatalogItem) (int64, error) {
	ctx := context.Background()
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `
		INSERT INTO catalog_items (kind, name, code, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, item.Kind, item.Name, item.Code, item.SortOrder, item.CreatedAt, item.UpdatedAt).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insertar valor de catálogo: %w", err)
	}
	item.ID = id
	return id, nil
}

// GetByID busca un valor por id dentro de su kind. Devuelve (nil, nil) si no existe.
func (r *CatalogRepository) GetByID(kind entity.CatalogKind, id int64) (*entity.CatalogItem, error) {
	ctx := context.Background()
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE id = $1 AND kind = $2`

	item, err := scanCatalogItem(r.db.QueryRow(ctx, query, id, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar valor de catálogo: %w", err)
	}
	return item, nil
}

// ListByKind devuelve todos los valores de un catálogo ordenados por sort_order y nombre.
func (r *CatalogRepository) ListByKind(kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	ctx := context.Background()
	query := `SELECT ` + catalogColumns + `
		FROM catalog_items WHERE kind = $1
		ORDER BY sort_order ASC, name ASC`

	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.CatalogItem, 0)
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear valor de catálogo: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar catálogo: %w", err)
	}
	return items, nil
}

// Update reemplaza nombre, código y orden del valor. Devuelve false si el id
// no existe bajo ese kind.
func (r *CatalogRepository) Update(item *entity.CatalogItem) (bool, error) {
	ctx := context.Background()
	query := `
		UPDATE catalog_items
		SET name = $1, code = $2, sort_order = $3, updated_at = $4
		WHERE id = $5 AND kind = $6`

	tag, err := r.db.Exec(ctx, query, item.Name, item.Code, item.SortOrder, time.Now(), item.ID, item.Kind)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("actualizar valor de catálogo: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete borra el valor. Devuelve false si el id no existe bajo ese kind.
func (r *CatalogRepository) Delete(kind entity.CatalogKind, id int64) (bool, error) {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM catalog_items WHERE id = $1 AND kind = $2`, id, kind)
	if err != nil {
		return false, fmt.Errorf("borrar valor de catálogo: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
