package repository

import "github.com/jcamargo/filamentario-api/internal/domain/entity"

// SharingRuleRepository define el puerto de persistencia para SharingRule.
type SharingRuleRepository interface {
	ListByOwner(ownerID string) ([]*entity.SharingRule, error)
	// ReplaceForOwner sustituye el conjunto completo de reglas del dueño
	// (semántica PUT) en una sola transacción.
	ReplaceForOwner(ownerID string, rules []*entity.SharingRule) error
}
