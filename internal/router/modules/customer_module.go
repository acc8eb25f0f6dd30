package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/invoice-dashboard/internal/interface/http"
)

type CustomerModule struct {
	Handler *handlers.CustomerHandler
	Guard   gin.HandlerFunc
}

func NewCustomerModule(h *handlers.CustomerHandler, guard gin.HandlerFunc) *CustomerModule {
	return &CustomerModule{Handler: h, Guard: guard}
}

func (m *CustomerModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/customers")
	g.Use(m.Guard)
	{
		g.GET("", m.Handler.List)
		g.GET("/search", m.Handler.Search)
		g.POST("/:id/avatar", m.Handler.UploadAvatar)
	}
}
