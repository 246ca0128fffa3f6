package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
)

// psql construye queries con placeholders $1, $2, ... de PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SpoolRepository implementa repository.SpoolRepository sobre PostgreSQL.
type SpoolRepository struct {
	db Querier
}

// NewSpoolRepository crea el repositorio de carretes.
func NewSpoolRepository(db Querier) *SpoolRepository {
	return &SpoolRepository{db: db}
}

const spoolColumns = `id, owner_id, name, material, color_name, color_code, manufacturer,
		diameter, print_temp, total_weight, remaining_pct, purchase_date, purchase_price,
		status, spool_type, dryer_count, last_drying_date, storage_location, created_at, updated_at`

func scanSpool(row pgx.Row) (*entity.Spool, error) {
	var s entity.Spool
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Material, &s.ColorName, &s.ColorCode, &s.Manufacturer,
		&s.Diameter, &s.PrintTemp, &s.TotalWeight, &s.RemainingPct, &s.PurchaseDate, &s.PurchasePrice,
		&s.Status, &s.SpoolType, &s.DryerCount, &s.LastDryingDate, &s.StorageLocation, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta un carrete bajo el dueño del scope y devuelve el id generado.
func (r *SpoolRepository) Create(scope repository.Scope, spool *entity.Spool) (int64, error) {
	ctx := context.Background()
	now := time.Now()
	spool.OwnerID = scope.OwnerID
	spool.CreatedAt = now
	spool.UpdatedAt = now

	query := `
		INSERT INTO spools (owner_id, name, material, color_name, color_code, manufacturer,
			diameter, print_temp, total_weight, remaining_pct, purchase_date, purchase_price,
			status, spool_type, dryer_count, last_drying_date, storage_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		spool.OwnerID, spool.Name, spool.Material, spool.ColorName, spool.ColorCode, spool.Manufacturer,
		spool.Diameter, spool.PrintTemp, spool.TotalWeight, spool.RemainingPct, spool.PurchaseDate, spool.PurchasePrice,
		spool.Status, spool.SpoolType, spool.DryerCount, spool.LastDryingDate, spool.StorageLocation,
		spool.CreatedAt, spool.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insertar carrete: %w", err)
	}
	spool.ID = id
	return id, nil
}

// GetByID busca un carrete por id dentro del scope. Devuelve (nil, nil) si no existe.
func (r *SpoolRepository) GetByID(scope repository.Scope, id int64) (*entity.Spool, error) {
	ctx := context.Background()
	query := `SELECT ` + spoolColumns + ` FROM spools WHERE id = $1 AND owner_id = $2`

	s, err := scanSpool(r.db.QueryRow(ctx, query, id, scope.OwnerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar carrete: %w", err)
	}
	return s, nil
}

// List devuelve una página de carretes del dueño, los más recientes primero.
func (r *SpoolRepository) List(scope repository.Scope, limit, offset int) ([]*entity.Spool, error) {
	ctx := context.Background()
	query := `SELECT ` + spoolColumns + `
		FROM spools WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, scope.OwnerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar carretes: %w", err)
	}
	defer rows.Close()
	return collectSpools(rows)
}

// ListAll devuelve todos los carretes del dueño (export, reporte, vista pública).
func (r *SpoolRepository) ListAll(scope repository.Scope) ([]*entity.Spool, error) {
	ctx := context.Background()
	query := `SELECT ` + spoolColumns + `
		FROM spools WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, scope.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("listar carretes: %w", err)
	}
	defer rows.Close()
	return collectSpools(rows)
}

func collectSpools(rows pgx.Rows) ([]*entity.Spool, error) {
	spools := make([]*entity.Spool, 0)
	for rows.Next() {
		s, err := scanSpool(rows)
		if err != nil {
			return nil, fmt.Errorf("escanear carrete: %w", err)
		}
		spools = append(spools, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar carretes: %w", err)
	}
	return spools, nil
}

// Update reemplaza todos los campos editables del carrete. Devuelve false si
// el id no existe bajo el scope.
func (r *SpoolRepository) Update(scope repository.Scope, spool *entity.Spool) (bool, error) {
	ctx := context.Background()
	query := `
		UPDATE spools SET
			name = $1, material = $2, color_name = $3, color_code = $4, manufacturer = $5,
			diameter = $6, print_temp = $7, total_weight = $8, remaining_pct = $9,
			purchase_date = $10, purchase_price = $11, status = $12, spool_type = $13,
			dryer_count = $14, last_drying_date = $15, storage_location = $16, updated_at = $17
		WHERE id = $18 AND owner_id = $19`

	tag, err := r.db.Exec(ctx, query,
		spool.Name, spool.Material, spool.ColorName, spool.ColorCode, spool.Manufacturer,
		spool.Diameter, spool.PrintTemp, spool.TotalWeight, spool.RemainingPct,
		spool.PurchaseDate, spool.PurchasePrice, spool.Status, spool.SpoolType,
		spool.DryerCount, spool.LastDryingDate, spool.StorageLocation, time.Now(),
		spool.ID, scope.OwnerID,
	)
	if err != nil {
		return false, fmt.Errorf("actualizar carrete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ApplyPatch escribe solo los campos presentes del patch (SET dinámico con
// squirrel) y refresca updated_at. Devuelve false si el id no existe bajo el scope.
func (r *SpoolRepository) ApplyPatch(scope repository.Scope, id int64, patch repository.SpoolPatch) (bool, error) {
	ctx := context.Background()

	sets := map[string]any{"updated_at": time.Now()}
	if patch.Name != nil {
		sets["name"] = *patch.Name
	}
	if patch.Material != nil {
		sets["material"] = *patch.Material
	}
	if patch.ColorName != nil {
		sets["color_name"] = *patch.ColorName
	}
	if patch.ColorCode != nil {
		sets["color_code"] = *patch.ColorCode
	}
	if patch.Manufacturer != nil {
		sets["manufacturer"] = *patch.Manufacturer
	}
	if patch.Diameter != nil {
		sets["diameter"] = *patch.Diameter
	}
	if patch.PrintTemp != nil {
		sets["print_temp"] = *patch.PrintTemp
	}
	if patch.TotalWeight != nil {
		sets["total_weight"] = *patch.TotalWeight
	}
	if patch.RemainingPct != nil {
		sets["remaining_pct"] = *patch.RemainingPct
	}
	if patch.PurchaseDate != nil {
		sets["purchase_date"] = *patch.PurchaseDate
	}
	if patch.PurchasePrice != nil {
		sets["purchase_price"] = *patch.PurchasePrice
	}
	if patch.Status != nil {
		sets["status"] = *patch.Status
	}
	if patch.SpoolType != nil {
		sets["spool_type"] = *patch.SpoolType
	}
	if patch.DryerCount != nil {
		sets["dryer_count"] = *patch.DryerCount
	}
	if patch.LastDryingDate != nil {
		sets["last_drying_date"] = *patch.LastDryingDate
	}
	if patch.StorageLocation != nil {
		sets["storage_location"] = *patch.StorageLocation
	}

	query, args, err := psql.Update("spools").
		SetMap(sets).
		Where(sq.Eq{"id": id, "owner_id": scope.OwnerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("construir patch: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("aplicar patch: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete borra el carrete si pertenece al dueño. Idempotente: devuelve false
// sin error cuando el id no existe o es de otro dueño.
func (r *SpoolRepository) Delete(scope repository.Scope, id int64) (bool, error) {
	ctx := context.Background()
	tag, err := r.db.Exec(ctx, `DELETE FROM spools WHERE id = $1 AND owner_id = $2`, id, scope.OwnerID)
	if err != nil {
		return false, fmt.Errorf("borrar carrete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Columnas textuales consultables por CountByFieldValue; evita inyección al
// interpolar el nombre de columna.
var countableColumns = map[string]string{
	"material":         "material",
	"manufacturer":     "manufacturer",
	"color_name":       "color_name",
	"diameter":         "diameter",
	"storage_location": "storage_location",
}

// CountByFieldValue cuenta carretes de cualquier dueño cuyo campo coincide con
// el valor textual dado (soft-FK de catálogo).
func (r *SpoolRepository) CountByFieldValue(field, value string) (int64, error) {
	ctx := context.Background()
	col, ok := countableColumns[field]
	if !ok {
		return 0, fmt.Errorf("columna no consultable: %s", field)
	}

	var count int64
	query := fmt.Sprintf(`SELECT count(*) FROM spools WHERE %s::text = $1`, col)
	if err := r.db.QueryRow(ctx, query, value).Scan(&count); err != nil {
		return 0, fmt.Errorf("contar referencias: %w", err)
	}
	return count, nil
}
