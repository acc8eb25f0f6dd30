package middleware

import (
	"github.com/gin-gonic/gin"
)

// CtxRealIPKey holds the resolved client address.
const CtxRealIPKey = "real_ip"

// TrustProxies makes gin honour CF-Connecting-IP and X-Forwarded-For only when
// the TCP peer is inside one of cidrs. With no cidrs the peer address is always used,
// so clients cannot pick their own rate-limit key.
func TrustProxies(engine *gin.Engine, cidrs []string) error {
	engine.ForwardedByClientIP = true
	engine.RemoteIPHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For"}
	return engine.SetTrustedProxies(cidrs)
}

// RealIP resolves the client address once per request. Run TrustProxies on the
// engine first; login rate limits and the debug allow-list key on this value.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, c.ClientIP())
		c.Next()
	}
}
