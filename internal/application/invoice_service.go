package application

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/invoice-dashboard/internal/domain/repository"
)

const DefaultPageSize = 6

const (
	msgFetchInvoices     = "Failed to fetch invoices."
	msgFetchInvoicePages = "Failed to fetch total number of invoices."
	msgFetchInvoice      = "Failed to fetch invoice."
	msgCreateMissing     = "Missing Fields. Failed to Create Invoice."
	msgUpdateMissing     = "Missing Fields. Failed to Update Invoice."
	msgCreateDBError     = "Database Error: Failed to Create Invoice."
	msgUpdateDBError     = "Database Error: Failed to Update Invoice."
	msgDeleteDBError     = "Database Error: Failed to Delete Invoice."
)

// CardInvalidator drops cached dashboard aggregates after a write.
type CardInvalidator interface {
	InvalidateCards(ctx context.Context)
}

type InvoiceService struct {
	Repo     repo.InvoiceRepository
	PageSize int
	Cards    CardInvalidator
	Logger   logrus.FieldLogger
	Now      func() time.Time
}

func NewInvoiceService(r repo.InvoiceRepository, pageSize int, cards CardInvalidator, logger logrus.FieldLogger) *InvoiceService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &InvoiceService{Repo: r, PageSize: pageSize, Cards: cards, Logger: logger, Now: time.Now}
}

// ListInvoices returns one page of invoices matching query. Pages below 1 are treated as 1;
// pages past the end are empty.
func (s *InvoiceService) ListInvoices(ctx context.Context, query string, page int) ([]entity.InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	// past any addressable row; (page-1)*PageSize would overflow
	if page-1 > math.MaxInt32/s.PageSize {
		return []entity.InvoiceRow{}, nil
	}
	offset := (page - 1) * s.PageSize
	rows, err := s.Repo.ListFiltered(ctx, query, s.PageSize, offset)
	if err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgFetchInvoices, err, logrus.Fields{
			"op": "ListInvoices", "query": query, "page": page,
		})
	}
	return rows, nil
}

// CountInvoicePages returns ceil(matches/PageSize); zero matches give zero pages.
func (s *InvoiceService) CountInvoicePages(ctx context.Context, query string) (int, error) {
	n, err := s.Repo.CountFiltered(ctx, query)
	if err != nil {
		return 0, dataAccess(s.Logger, ErrDataAccess, msgFetchInvoicePages, err, logrus.Fields{
			"op": "CountInvoicePages", "query": query,
		})
	}
	size := int64(s.PageSize)
	return int((n + size - 1) / size), nil
}

// ExportInvoices walks every page for query and returns all matching rows in listing order.
func (s *InvoiceService) ExportInvoices(ctx context.Context, query string) ([]entity.InvoiceRow, error) {
	pages, err := s.CountInvoicePages(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]entity.InvoiceRow, 0, pages*s.PageSize)
	for p := 1; p <= pages; p++ {
		rows, err := s.ListInvoices(ctx, query, p)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
		if len(rows) < s.PageSize {
			break
		}
	}
	return out, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvoiceNotFound
	}
	inv, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgFetchInvoice, err, logrus.Fields{"op": "GetInvoice", "id": id})
	}
	return inv, nil
}

// CreateInvoice inserts a new invoice dated today (UTC).
func (s *InvoiceService) CreateInvoice(ctx context.Context, form InvoiceForm) (*entity.Invoice, error) {
	in, fe := ParseInvoiceForm(form)
	if fe != nil {
		return nil, &ValidationError{Sentinel: ErrValidation, Message: msgCreateMissing, Fields: fe}
	}
	now := s.Now().UTC()
	inv := &entity.Invoice{
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Status:     in.Status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.Repo.Create(ctx, inv); err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgCreateDBError, err, logrus.Fields{"op": "CreateInvoice"})
	}
	s.invalidate(ctx)
	return inv, nil
}

// UpdateInvoice replaces customer, amount and status; the date is kept.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, form InvoiceForm) (*entity.Invoice, error) {
	in, fe := ParseInvoiceForm(form)
	if fe != nil {
		return nil, &ValidationError{Sentinel: ErrValidation, Message: msgUpdateMissing, Fields: fe}
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvoiceNotFound
	}
	inv := &entity.Invoice{ID: id, CustomerID: in.CustomerID, Amount: in.Amount, Status: in.Status}
	err := s.Repo.Update(ctx, inv)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgUpdateDBError, err, logrus.Fields{"op": "UpdateInvoice", "id": id})
	}
	s.invalidate(ctx)
	return inv, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvoiceNotFound
	}
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrInvoiceNotFound
	}
	if err != nil {
		return dataAccess(s.Logger, ErrDataAccess, msgDeleteDBError, err, logrus.Fields{"op": "DeleteInvoice", "id": id})
	}
	s.invalidate(ctx)
	return nil
}

func (s *InvoiceService) invalidate(ctx context.Context) {
	if s.Cards != nil {
		s.Cards.InvalidateCards(ctx)
	}
}
