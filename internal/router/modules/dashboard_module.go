package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/invoice-dashboard/internal/interface/http"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	Guard   gin.HandlerFunc
}

func NewDashboardModule(h *handlers.DashboardHandler, guard gin.HandlerFunc) *DashboardModule {
	return &DashboardModule{Handler: h, Guard: guard}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/dashboard")
	g.Use(m.Guard)
	{
		g.GET("/cards", m.Handler.Cards)
		g.GET("/revenue", m.Handler.Revenue)
		g.GET("/latest-invoices", m.Handler.Latest)
	}
}
