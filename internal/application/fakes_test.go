package application

import (
	"context"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/invoice-dashboard/internal/domain/repository"
)

// fakeInvoiceRepo applies the same case-insensitive substring rule the SQL does.
type fakeInvoiceRepo struct {
	mu       sync.Mutex
	rows     []entity.InvoiceRow
	invoices map[string]*entity.Invoice
	err      error
	listArgs []listCall
	count    int64
	paid     int64
	pending  int64
	latest   []entity.LatestInvoice
	created  []*entity.Invoice
	updated  []*entity.Invoice
	deleted  []string
}

type listCall struct {
	query         string
	limit, offset int
}

func (f *fakeInvoiceRepo) match(q string) []entity.InvoiceRow {
	q = strings.ToLower(q)
	var out []entity.InvoiceRow
	for _, r := range f.rows {
		fields := []string{r.Name, r.Email, strconv.FormatInt(r.Amount, 10), r.Date.Format("2006-01-02"), string(r.Status)}
		for _, v := range fields {
			if strings.Contains(strings.ToLower(v), q) {
				out = append(out, r)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeInvoiceRepo) ListFiltered(_ context.Context, q string, limit, offset int) ([]entity.InvoiceRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listArgs = append(f.listArgs, listCall{q, limit, offset})
	if f.err != nil {
		return nil, f.err
	}
	all := f.match(q)
	if offset >= len(all) {
		return []entity.InvoiceRow{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeInvoiceRepo) CountFiltered(_ context.Context, q string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.match(q))), nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	if inv, ok := f.invoices[id]; ok {
		return inv, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if f.err != nil {
		return f.err
	}
	inv.ID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.invoices[inv.ID]; !ok {
		return repo.ErrNotFound
	}
	f.updated = append(f.updated, inv)
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.invoices[id]; !ok {
		return repo.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeInvoiceRepo) Latest(_ context.Context, limit int) ([]entity.LatestInvoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.latest) {
		return f.latest[:limit], nil
	}
	return f.latest, nil
}

func (f *fakeInvoiceRepo) Count(context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeInvoiceRepo) SumByStatus(context.Context) (int64, int64, error) {
	return f.paid, f.pending, f.err
}

type fakeUserRepo struct {
	users map[string]*entity.User // by email
	err   error
	calls int
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	summaries []entity.CustomerSummary
	count     int64
	err       error
	queries   []string
}

func (f *fakeCustomerRepo) List(context.Context) ([]entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCustomerRepo) Search(_ context.Context, q string) ([]entity.CustomerSummary, error) {
	f.queries = append(f.queries, q)
	return f.summaries, f.err
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCustomerRepo) UpdateImageURL(_ context.Context, id, url string) error {
	if f.err != nil {
		return f.err
	}
	c, ok := f.customers[id]
	if !ok {
		return repo.ErrNotFound
	}
	c.ImageURL = url
	return nil
}

func (f *fakeCustomerRepo) Count(context.Context) (int64, error) {
	return f.count, f.err
}

type fakeRevenueRepo struct {
	rows []entity.Revenue
	err  error
}

func (f *fakeRevenueRepo) List(context.Context) ([]entity.Revenue, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Revenue, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

type fakeUploader struct {
	paths []string
	body  string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(r)
	f.body = string(b)
	f.paths = append(f.paths, objectPath)
	return "https://storage.googleapis.com/bucket/" + objectPath, nil
}

type countingInvalidator struct{ n int }

func (c *countingInvalidator) InvalidateCards(context.Context) { c.n++ }
