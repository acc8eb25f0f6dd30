package repository

import (
	"context"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
)

type RevenueRepository interface {
	List(ctx context.Context) ([]entity.Revenue, error)
}
