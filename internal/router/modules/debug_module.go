package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/invoice-dashboard/internal/interface/middleware"
)

// DebugModule exposes expvar counters (login outcomes, memstats).
type DebugModule struct {
	Guard gin.HandlerFunc
	Redis *redis.Client
}

func NewDebugModule(guard gin.HandlerFunc, rdb *redis.Client) *DebugModule {
	return &DebugModule{Guard: guard, Redis: rdb}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// rate-limited per IP; internal callers bypass
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", m.Guard, rl, gin.WrapH(expvar.Handler()))
}
