package postgres

import (
	"context"
	"time"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/internal/domain/repository"
)

type RevenueRepository struct {
	base
}

func NewRevenueRepository(db DBTX, timeout time.Duration) *RevenueRepository {
	return &RevenueRepository{base{db: db, timeout: timeout}}
}

func (r *RevenueRepository) List(ctx context.Context) ([]entity.Revenue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Revenue
	for rows.Next() {
		var rv entity.Revenue
		if err := rows.Scan(&rv.Month, &rv.Revenue); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

var _ repository.RevenueRepository = (*RevenueRepository)(nil)
