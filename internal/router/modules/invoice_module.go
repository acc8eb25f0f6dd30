package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/invoice-dashboard/internal/interface/http"
	"github.com/oksasatya/invoice-dashboard/internal/interface/middleware"
)

type InvoiceModule struct {
	Handler *handlers.InvoiceHandler
	Guard   gin.HandlerFunc
	Redis   *redis.Client
}

func NewInvoiceModule(h *handlers.InvoiceHandler, guard gin.HandlerFunc, rdb *redis.Client) *InvoiceModule {
	return &InvoiceModule{Handler: h, Guard: guard, Redis: rdb}
}

func (m *InvoiceModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/invoices")
	g.Use(m.Guard)

	// exports read every page; keep them per-user bounded
	exportLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByUserID(), nil)
	{
		g.GET("", m.Handler.List)
		g.GET("/pages", m.Handler.Pages)
		g.GET("/export", exportLimiter, m.Handler.Export)
		g.GET("/:id", m.Handler.Get)
		g.POST("", m.Handler.Create)
		g.PUT("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
