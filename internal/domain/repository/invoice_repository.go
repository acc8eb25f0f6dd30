package repository

import (
	"context"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
)

// InvoiceRepository defines invoice persistence and the filtered search used by the invoices table.
// ListFiltered and CountFiltered must apply the same matching predicate.
type InvoiceRepository interface {
	ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, inv *entity.Invoice) error
	Update(ctx context.Context, inv *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	Latest(ctx context.Context, limit int) ([]entity.LatestInvoice, error)
	Count(ctx context.Context) (int64, error)
	SumByStatus(ctx context.Context) (paid int64, pending int64, err error)
}
