package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

// ipFromCtx prefers the address resolved by RealIP.
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(CtxRealIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func normalizePath(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return c.Request.URL.Path
}

// KeyFunc builds the counter key for a request.
type KeyFunc func(c *gin.Context) string

func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:ip:" + ipFromCtx(c)
	}
}

// KeyByIPAndPath returns a key function that limits by client IP and request path.
// Login attempts are limited with this key.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:path:" + normalizePath(c) + ":ip:" + ipFromCtx(c)
	}
}

// KeyByUserID keys on the authenticated user; run it after Auth.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		uid := c.GetString(CtxUserIDKey)
		if uid == "" {
			return "rl:user:anon:ip:" + ipFromCtx(c)
		}
		return "rl:user:" + uid
	}
}

// hitScript increments the window counter, starts the window on the first hit
// and returns {count, pttl} in one round trip.
var hitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("PTTL", KEYS[1])}
`)

// AllowFunc returns true when the request bypasses the limiter.
type AllowFunc func(*gin.Context) bool

// RateLimit is a fixed-window limiter backed by Redis. It sets the
// X-RateLimit-* headers, skips preflight requests and fails open when Redis
// is nil or unreachable. Over the limit it answers 429 with Retry-After.
func RateLimit(rdb *redis.Client, max int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || (allow != nil && allow(c)) {
			c.Next()
			return
		}

		count, reset, err := hit(c.Request.Context(), rdb, keyFn(c), window)
		if err != nil {
			c.Next()
			return
		}
		resetSec := int((reset + time.Second - 1) / time.Second)

		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining(max, count)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Abort(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}

func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int, time.Duration, error) {
	res, err := hitScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("rate limit script: unexpected reply %v", res)
	}
	reset := time.Duration(res[1]) * time.Millisecond
	if reset < 0 {
		reset = 0
	}
	return int(res[0]), reset, nil
}

func remaining(max, count int) int {
	if count >= max {
		return 0
	}
	return max - count
}
