package seed

import (
	"time"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
)

// PlainUser is a login to provision; Password is hashed at seed time.
type PlainUser struct {
	ID       string
	Name     string
	Email    string
	Password string
}

var Users = []PlainUser{
	{ID: "410544b2-4001-4271-9855-fec4b6a6442a", Name: "User", Email: "user@nextmail.com", Password: "123456"},
}

var Customers = []entity.Customer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

// Invoices carries fixed ids so reseeding is idempotent.
var Invoices = []entity.Invoice{
	{ID: "0b8a6f4e-0001-4c1e-9a11-000000000001", CustomerID: Customers[0].ID, Amount: 15795, Status: entity.InvoicePending, Date: day(2022, 12, 6)},
	{ID: "0b8a6f4e-0002-4c1e-9a11-000000000002", CustomerID: Customers[1].ID, Amount: 20348, Status: entity.InvoicePending, Date: day(2022, 11, 14)},
	{ID: "0b8a6f4e-0003-4c1e-9a11-000000000003", CustomerID: Customers[4].ID, Amount: 3040, Status: entity.InvoicePaid, Date: day(2022, 10, 29)},
	{ID: "0b8a6f4e-0004-4c1e-9a11-000000000004", CustomerID: Customers[3].ID, Amount: 44800, Status: entity.InvoicePaid, Date: day(2023, 9, 10)},
	{ID: "0b8a6f4e-0005-4c1e-9a11-000000000005", CustomerID: Customers[5].ID, Amount: 34577, Status: entity.InvoicePending, Date: day(2023, 8, 5)},
	{ID: "0b8a6f4e-0006-4c1e-9a11-000000000006", CustomerID: Customers[2].ID, Amount: 54246, Status: entity.InvoicePending, Date: day(2023, 7, 16)},
	{ID: "0b8a6f4e-0007-4c1e-9a11-000000000007", CustomerID: Customers[0].ID, Amount: 666, Status: entity.InvoicePending, Date: day(2023, 6, 27)},
	{ID: "0b8a6f4e-0008-4c1e-9a11-000000000008", CustomerID: Customers[3].ID, Amount: 32545, Status: entity.InvoicePaid, Date: day(2023, 6, 9)},
	{ID: "0b8a6f4e-0009-4c1e-9a11-000000000009", CustomerID: Customers[4].ID, Amount: 1250, Status: entity.InvoicePaid, Date: day(2023, 6, 17)},
	{ID: "0b8a6f4e-0010-4c1e-9a11-000000000010", CustomerID: Customers[5].ID, Amount: 8546, Status: entity.InvoicePaid, Date: day(2023, 6, 7)},
	{ID: "0b8a6f4e-0011-4c1e-9a11-000000000011", CustomerID: Customers[1].ID, Amount: 500, Status: entity.InvoicePaid, Date: day(2023, 8, 19)},
	{ID: "0b8a6f4e-0012-4c1e-9a11-000000000012", CustomerID: Customers[5].ID, Amount: 8945, Status: entity.InvoicePaid, Date: day(2023, 6, 3)},
	{ID: "0b8a6f4e-0013-4c1e-9a11-000000000013", CustomerID: Customers[2].ID, Amount: 1000, Status: entity.InvoicePaid, Date: day(2022, 6, 5)},
}

var Revenue = []entity.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
	{Month: "13th", Revenue: 5000},
}

// InvoiceRows joins Invoices with Customers the way the invoices table does.
func InvoiceRows() []entity.InvoiceRow {
	byID := make(map[string]entity.Customer, len(Customers))
	for _, c := range Customers {
		byID[c.ID] = c
	}
	out := make([]entity.InvoiceRow, 0, len(Invoices))
	for _, inv := range Invoices {
		c := byID[inv.CustomerID]
		out = append(out, entity.InvoiceRow{
			ID:       inv.ID,
			Amount:   inv.Amount,
			Date:     inv.Date,
			Status:   inv.Status,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
