package application

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/validation"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountPositive = "Please enter an amount greater than $0."
	msgAmountCents    = "Amount can have at most 2 decimal places."
	msgSelectStatus   = "Please select an invoice status."
)

// Amount accepts either a JSON number or a JSON string holding dollars.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// InvoiceForm is the raw create/update payload.
type InvoiceForm struct {
	CustomerID string `json:"customerId"`
	Amount     Amount `json:"amount"`
	Status     string `json:"status"`
}

// InvoiceInput is a parsed InvoiceForm; Amount is in cents.
type InvoiceInput struct {
	CustomerID string
	Amount     int64
	Status     entity.InvoiceStatus
}

// ParseInvoiceForm checks every field and collects all failures.
func ParseInvoiceForm(f InvoiceForm) (InvoiceInput, validation.FieldErrors) {
	var in InvoiceInput
	fe := validation.FieldErrors{}

	if id, err := uuid.Parse(strings.TrimSpace(f.CustomerID)); err != nil {
		fe.Add("customerId", msgSelectCustomer)
	} else {
		in.CustomerID = id.String()
	}

	cents, err := helpers.ParseDollars(string(f.Amount))
	switch {
	case errors.Is(err, helpers.ErrAmountPrecision):
		fe.Add("amount", msgAmountCents)
	case err != nil || cents <= 0:
		fe.Add("amount", msgAmountPositive)
	default:
		in.Amount = cents
	}

	if st, err := entity.ParseInvoiceStatus(f.Status); err != nil {
		fe.Add("status", msgSelectStatus)
	} else {
		in.Status = st
	}

	if fe.Empty() {
		return in, nil
	}
	return InvoiceInput{}, fe
}
