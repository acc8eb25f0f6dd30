package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/internal/domain/repository"
)

const (
	sqlListCustomers = `
		SELECT id, name, email, image_url
		FROM customers
		ORDER BY name ASC`

	sqlSearchCustomers = `
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name ILIKE $1 OR customers.email ILIKE $1
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`

	sqlGetCustomerByID = `
		SELECT id, name, email, image_url
		FROM customers
		WHERE id = $1`

	sqlUpdateCustomerImage = `UPDATE customers SET image_url = $1 WHERE id = $2`

	sqlCountCustomers = `SELECT COUNT(*) FROM customers`
)

type CustomerRepository struct {
	base
}

func NewCustomerRepository(db DBTX, timeout time.Duration) *CustomerRepository {
	return &CustomerRepository{base{db: db, timeout: timeout}}
}

func (r *CustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlListCustomers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) Search(ctx context.Context, query string) ([]entity.CustomerSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sqlSearchCustomers, containsPattern(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.CustomerSummary
	for rows.Next() {
		var s entity.CustomerSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.ImageURL, &s.TotalInvoices, &s.TotalPending, &s.TotalPaid); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	c := &entity.Customer{}
	if err := r.db.QueryRow(ctx, sqlGetCustomerByID, id).Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.Exec(ctx, sqlUpdateCustomerImage, imageURL, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int64
	err := r.db.QueryRow(ctx, sqlCountCustomers).Scan(&n)
	return n, err
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)
