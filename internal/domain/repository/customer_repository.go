package repository

import (
	"context"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Search(ctx context.Context, query string) ([]entity.CustomerSummary, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	UpdateImageURL(ctx context.Context, id, imageURL string) error
	Count(ctx context.Context) (int64, error)
}
