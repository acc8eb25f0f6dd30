package entity

// Customer owns invoices. Name and email are case-insensitive search targets.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerSummary is a customer with aggregated invoice totals in cents.
type CustomerSummary struct {
	Customer
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}
