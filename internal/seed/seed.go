package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/internal/infrastructure/postgres"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
)

// PasswordCost is the bcrypt cost used for seeded logins.
const PasswordCost = 10

const (
	sqlSeedUser = `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	sqlSeedCustomer = `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	sqlSeedInvoice = `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`

	sqlSeedRevenue = `
		INSERT INTO revenue (month, revenue)
		VALUES ($1, $2)
		ON CONFLICT (month) DO NOTHING`
)

// Beginner is satisfied by *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Run inserts the placeholder data in one transaction. Existing rows are left untouched.
func Run(ctx context.Context, db Beginner, logger logrus.FieldLogger) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := Insert(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	helpers.LogInfo(logger, "seed complete", logrus.Fields{
		"users": len(Users), "customers": len(Customers), "invoices": len(Invoices), "revenue": len(Revenue),
	})
	return nil
}

// Insert writes every fixture through db.
func Insert(ctx context.Context, db postgres.DBTX) error {
	for _, u := range Users {
		hash, err := helpers.HashPasswordCost(u.Password, PasswordCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		if _, err := db.Exec(ctx, sqlSeedUser, u.ID, u.Name, u.Email, hash); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	for _, c := range Customers {
		if _, err := db.Exec(ctx, sqlSeedCustomer, c.ID, c.Name, c.Email, c.ImageURL); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.Name, err)
		}
	}
	for _, inv := range Invoices {
		if _, err := db.Exec(ctx, sqlSeedInvoice, inv.ID, inv.CustomerID, inv.Amount, string(inv.Status), inv.Date); err != nil {
			return fmt.Errorf("seed invoice %s: %w", inv.ID, err)
		}
	}
	for _, r := range Revenue {
		if _, err := db.Exec(ctx, sqlSeedRevenue, r.Month, r.Revenue); err != nil {
			return fmt.Errorf("seed revenue %s: %w", r.Month, err)
		}
	}
	return nil
}
