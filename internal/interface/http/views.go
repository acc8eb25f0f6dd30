package handlers

import (
	"strconv"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
)

const (
	isoDate     = "2006-01-02"
	displayDate = "Jan 2, 2006"
)

type invoiceRowView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ImageURL        string `json:"image_url"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	Date            string `json:"date"`
	DateFormatted   string `json:"date_formatted"`
	Status          string `json:"status"`
}

func toInvoiceRowView(r entity.InvoiceRow) invoiceRowView {
	return invoiceRowView{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		ImageURL:        r.ImageURL,
		Amount:          r.Amount,
		AmountFormatted: helpers.FormatCurrency(r.Amount),
		Date:            r.Date.Format(isoDate),
		DateFormatted:   r.Date.Format(displayDate),
		Status:          string(r.Status),
	}
}

// invoiceFormView pre-fills the edit form; AmountInput is in dollars.
type invoiceFormView struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Amount      int64  `json:"amount"`
	AmountInput string `json:"amount_input"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

func toInvoiceFormView(inv *entity.Invoice) invoiceFormView {
	return invoiceFormView{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		Amount:      inv.Amount,
		AmountInput: helpers.CentsToDollars(inv.Amount),
		Status:      string(inv.Status),
		Date:        inv.Date.Format(isoDate),
	}
}

type latestInvoiceView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

type cardsView struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

type revenueView struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type customerOptionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type customerSummaryView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// revenueAxis returns the chart's y-axis labels from the top label down to $0K.
// Revenue values are whole dollars.
func revenueAxis(rows []entity.Revenue) ([]string, int64) {
	var highest int64
	for _, r := range rows {
		if r.Revenue > highest {
			highest = r.Revenue
		}
	}
	top := (highest + 999) / 1000 * 1000
	labels := make([]string, 0, top/1000+1)
	for i := top; i >= 0; i -= 1000 {
		labels = append(labels, "$"+strconv.FormatInt(i/1000, 10)+"K")
	}
	return labels, top
}
