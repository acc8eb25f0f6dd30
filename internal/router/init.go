package router

import (
	"github.com/oksasatya/invoice-dashboard/internal/container"
	handlers "github.com/oksasatya/invoice-dashboard/internal/interface/http"
	"github.com/oksasatya/invoice-dashboard/internal/interface/middleware"
	"github.com/oksasatya/invoice-dashboard/internal/router/modules"
)

// InitModules builds handlers from the container and registers every feature module.
// It should be called once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	guard := middleware.Auth(c.JWT, c.Auth)

	r.Add(modules.NewAuthModule(
		handlers.NewAuthHandler(c.Auth, c.Logger, c.Cookies),
		guard, c.Redis, c.Config.LoginRateLimit,
	))
	r.Add(modules.NewInvoiceModule(handlers.NewInvoiceHandler(c.Invoice), guard, c.Redis))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(c.Dashboard), guard))
	r.Add(modules.NewCustomerModule(handlers.NewCustomerHandler(c.Customer), guard))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(guard, c.Redis))
	}
}
