package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

// Registry collects feature modules and mounts them on the /api group in insertion order.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use adds middleware applied to every /api route.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts the modules plus a health probe, and answers unknown routes with the JSON envelope.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	r.API.GET("/healthz", func(c *gin.Context) {
		response.Success[any](c, http.StatusOK, nil, "ok", nil)
	})
	for _, m := range r.modules {
		m.Register(r.API)
	}
	r.Engine.NoRoute(func(c *gin.Context) {
		response.Error[any](c, http.StatusNotFound, "Not found.", nil)
	})
}
