package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP lets loopback and RFC 1918 / ULA clients skip the limiter.
// Used for the debug vars endpoint scraped from inside the cluster.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		ip := net.ParseIP(ipFromCtx(c))
		return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
	}
}
