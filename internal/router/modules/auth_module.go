package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/invoice-dashboard/internal/interface/http"
	"github.com/oksasatya/invoice-dashboard/internal/interface/middleware"
)

// AuthModule wires session endpoints.
// Public: POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET /api/profile
type AuthModule struct {
	Handler    *handlers.AuthHandler
	Guard      gin.HandlerFunc
	Redis      *redis.Client
	LoginLimit int
}

func NewAuthModule(h *handlers.AuthHandler, guard gin.HandlerFunc, rdb *redis.Client, loginLimit int) *AuthModule {
	return &AuthModule{Handler: h, Guard: guard, Redis: rdb, LoginLimit: loginLimit}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, m.LoginLimit, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(m.Guard)
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
	}
}
