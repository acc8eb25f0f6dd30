package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/internal/domain/repository"
)

// invoiceSearchPredicate is shared by the list and count statements; $1 is the escaped pattern.
const invoiceSearchPredicate = `
		customers.name ILIKE $1 OR
		customers.email ILIKE $1 OR
		invoices.amount::text ILIKE $1 OR
		invoices.date::text ILIKE $1 OR
		invoices.status ILIKE $1`

const (
	sqlListFilteredInvoices = `
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceSearchPredicate + `
		ORDER BY invoices.date DESC, invoices.id DESC
		LIMIT $2 OFFSET $3`

	sqlCountFilteredInvoices = `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE` + invoiceSearchPredicate

	sqlGetInvoiceByID = `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1`

	sqlInsertInvoice = `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	sqlUpdateInvoice = `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`

	sqlDeleteInvoice = `DELETE FROM invoices WHERE id = $1`

	sqlLatestInvoices = `
		SELECT invoices.id, invoices.amount, customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC, invoices.id DESC
		LIMIT $1`

	sqlCountInvoices = `SELECT COUNT(*) FROM invoices`

	sqlSumInvoicesByStatus = `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM invoices`
)

type InvoiceRepository struct {
	base
}

func NewInvoiceRepository(db DBTX, timeout time.Duration) *InvoiceRepository {
	return &InvoiceRepository{base{db: db, timeout: timeout}}
}

func (r *InvoiceRepository) ListFiltered(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceRow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlListFilteredInvoices, containsPattern(query), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.InvoiceRow, 0, limit)
	for rows.Next() {
		var (
			row    entity.InvoiceRow
			status string
		)
		if err := rows.Scan(&row.ID, &row.Amount, &row.Date, &status, &row.Name, &row.Email, &row.ImageURL); err != nil {
			return nil, err
		}
		row.Status = entity.InvoiceStatus(status)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int64
	if err := r.db.QueryRow(ctx, sqlCountFilteredInvoices, containsPattern(query)).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	inv := &entity.Invoice{}
	var status string
	err := r.db.QueryRow(ctx, sqlGetInvoiceByID, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	inv.Status = entity.InvoiceStatus(status)
	return inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.QueryRow(ctx, sqlInsertInvoice, inv.CustomerID, inv.Amount, string(inv.Status), inv.Date).Scan(&inv.ID)
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *entity.Invoice) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.Exec(ctx, sqlUpdateInvoice, inv.CustomerID, inv.Amount, string(inv.Status), inv.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.Exec(ctx, sqlDeleteInvoice, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]entity.LatestInvoice, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlLatestInvoices, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.LatestInvoice, 0, limit)
	for rows.Next() {
		var li entity.LatestInvoice
		if err := rows.Scan(&li.ID, &li.Amount, &li.Name, &li.Email, &li.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int64
	err := r.db.QueryRow(ctx, sqlCountInvoices).Scan(&n)
	return n, err
}

func (r *InvoiceRepository) SumByStatus(ctx context.Context) (int64, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var paid, pending int64
	if err := r.db.QueryRow(ctx, sqlSumInvoicesByStatus).Scan(&paid, &pending); err != nil {
		return 0, 0, err
	}
	return paid, pending, nil
}

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)
