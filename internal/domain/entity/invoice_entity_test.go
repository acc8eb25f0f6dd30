package entity

import (
	"errors"
	"testing"
)

func TestParseInvoiceStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    InvoiceStatus
		wantErr bool
	}{
		{"pending", InvoicePending, false},
		{"paid", InvoicePaid, false},
		{"PAID", "", true},
		{"", "", true},
		{"overdue", "", true},
	}
	for _, tc := range cases {
		got, err := ParseInvoiceStatus(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownInvoiceStatus) {
				t.Fatalf("ParseInvoiceStatus(%q) expected ErrUnknownInvoiceStatus, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseInvoiceStatus(%q) = %q, %v", tc.in, got, err)
		}
	}
}
