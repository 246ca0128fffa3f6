package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcamargo/filamentario-api/internal/domain"
	"github.com/jcamargo/filamentario-api/internal/domain/entity"
)

// SharingRuleRepository implementa repository.SharingRuleRepository sobre
// PostgreSQL. Recibe el pool (no Querier) porque ReplaceForOwner abre su
// propia transacción.
type SharingRuleRepository struct {
	pool *pgxpool.Pool
}

// NewSharingRuleRepository crea el repositorio de reglas de visibilidad.
func NewSharingRuleRepository(pool *pgxpool.Pool) *SharingRuleRepository {
	return &SharingRuleRepository{pool: pool}
}

// ListByOwner devuelve las reglas del dueño; la global (material_id NULL) primero.
func (r *SharingRuleRepository) ListByOwner(ownerID string) ([]*entity.SharingRule, error) {
	ctx := context.Background()
	query := `
		SELECT id, owner_id, material_id, is_public, created_at, updated_at
		FROM sharing_rules
		WHERE owner_id = $1
		ORDER BY material_id ASC NULLS FIRST`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar reglas: %w", err)
	}
	defer rows.Close()

	rules := make([]*entity.SharingRule, 0)
	for rows.Next() {
		var rule entity.SharingRule
		if err := rows.Scan(&rule.ID, &rule.OwnerID, &rule.MaterialID, &rule.IsPublic, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("escanear regla: %w", err)
		}
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar reglas: %w", err)
	}
	return rules, nil
}

// ReplaceForOwner sustituye el conjunto completo de reglas del dueño en una
// sola transacción (semántica PUT).
func (r *SharingRuleRepository) ReplaceForOwner(ownerID string, rules []*entity.SharingRule) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sharing_rules WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("borrar reglas previas: %w", err)
	}

	now := time.Now()
	for _, rule := range rules {
		_, err := tx.Exec(ctx, `
			INSERT INTO sharing_rules (owner_id, material_id, is_public, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)`,
			ownerID, rule.MaterialID, rule.IsPublic, now, now,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insertar regla: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}
