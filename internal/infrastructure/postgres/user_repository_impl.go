package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/internal/domain/repository"
)

type UserRepository struct {
	base
}

func NewUserRepository(db DBTX, timeout time.Duration) *UserRepository {
	return &UserRepository{base{db: db, timeout: timeout}}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, password
		FROM users
		WHERE id = $1
	`, id)
}

// GetByEmail matches the stored email exactly; no case folding.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`, email)
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg string) (*entity.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u := &entity.User{}
	if err := r.db.QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
