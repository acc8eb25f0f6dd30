package entity

import (
	"errors"
	"time"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
)

var ErrUnknownInvoiceStatus = errors.New("unknown invoice status")

// ParseInvoiceStatus accepts only the exact lowercase status names.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoicePending, InvoicePaid:
		return InvoiceStatus(s), nil
	}
	return "", ErrUnknownInvoiceStatus
}

// Invoice is the persisted invoice record.
// Amount is in cents; conversion to dollars only happens when rendering.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
	Date       time.Time
}

// InvoiceRow is an invoice joined with the display fields of its customer.
type InvoiceRow struct {
	ID       string
	Amount   int64
	Date     time.Time
	Status   InvoiceStatus
	Name     string
	Email    string
	ImageURL string
}

// LatestInvoice is the compact row shown on the dashboard overview.
type LatestInvoice struct {
	ID       string
	Amount   int64
	Name     string
	Email    string
	ImageURL string
}

// CardData aggregates the dashboard summary cards. Totals are in cents.
type CardData struct {
	NumberOfInvoices  int64 `json:"number_of_invoices"`
	NumberOfCustomers int64 `json:"number_of_customers"`
	TotalPaid         int64 `json:"total_paid"`
	TotalPending      int64 `json:"total_pending"`
}
