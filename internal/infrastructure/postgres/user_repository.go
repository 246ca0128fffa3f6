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

// UserRepository implementa repository.UserRepository sobre PostgreSQL.
type UserRepository struct {
	db Querier
}

// NewUserRepository crea el repositorio de usuarios.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserta un usuario nuevo.
func (r *UserRepository) Create(user *entity.User) error {
	ctx := context.Background()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

// FindByID busca un usuario por id. Devuelve (nil, nil) si no existe.
func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	return r.findBy(`id = $1`, id)
}

// FindByEmail busca un usuario por email. Devuelve (nil, nil) si no existe.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	return r.findBy(`email = $1`, email)
}

func (r *UserRepository) findBy(cond string, arg any) (*entity.User, error) {
	ctx := context.Background()
	query := `SELECT id, email, password_hash, name, created_at, updated_at FROM users WHERE ` + cond

	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar usuario: %w", err)
	}
	return &u, nil
}
