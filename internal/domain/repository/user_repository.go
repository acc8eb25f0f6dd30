package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("not found")

// UserRepository defines read access to login credentials.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
