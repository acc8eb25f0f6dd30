package container

import (
	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/config"
	"github.com/oksasatya/invoice-dashboard/internal/application"
	repo "github.com/oksasatya/invoice-dashboard/internal/domain/repository"
	pginfra "github.com/oksasatya/invoice-dashboard/internal/infrastructure/postgres"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
)

// Container holds the process-wide components. It is built once in main and
// handed to the router; nothing in it is mutated afterwards.
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Redis   *redis.Client
	JWT     *helpers.JWTManager
	Cookies *helpers.Manager

	Users     repo.UserRepository
	Invoices  repo.InvoiceRepository
	Customers repo.CustomerRepository
	Revenue   repo.RevenueRepository

	Auth      *application.AuthService
	Invoice   *application.InvoiceService
	Dashboard *application.DashboardService
	Customer  *application.CustomerService
}

// New wires repositories and services. rdb and gcs may be nil; caching,
// session checks and avatar uploads are then disabled.
func New(cfg *config.Config, logger *logrus.Logger, db pginfra.DBTX, rdb *redis.Client, gcs *storage.Client) *Container {
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Redis:   rdb,
		JWT:     helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL),
		Cookies: helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),

		Users:     pginfra.NewUserRepository(db, cfg.DBQueryTimeout),
		Invoices:  pginfra.NewInvoiceRepository(db, cfg.DBQueryTimeout),
		Customers: pginfra.NewCustomerRepository(db, cfg.DBQueryTimeout),
		Revenue:   pginfra.NewRevenueRepository(db, cfg.DBQueryTimeout),
	}

	var uploader application.ObjectUploader
	if gcs != nil && cfg.GCSBucket != "" {
		uploader = &helpers.GCSUploader{Client: gcs, Bucket: cfg.GCSBucket}
	}

	c.Auth = application.NewAuthService(c.Users, c.JWT, rdb, cfg.RefreshTTL, logger)
	c.Dashboard = application.NewDashboardService(c.Invoices, c.Customers, c.Revenue, rdb, cfg.DashboardCacheTTL, cfg.LatestInvoicesLimit, logger)
	c.Invoice = application.NewInvoiceService(c.Invoices, cfg.InvoicesPageSize, c.Dashboard, logger)
	c.Customer = application.NewCustomerService(c.Customers, uploader, logger)
	return c
}
