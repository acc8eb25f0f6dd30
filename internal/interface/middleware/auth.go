package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxSessionIDKey = "sessionID"
)

// SessionChecker reports whether sid is still the live session for userID.
type SessionChecker interface {
	SessionActive(ctx context.Context, userID, sid string) bool
}

// Auth validates the access token cookie and ensures its session is still active.
// It sets userID and sessionID in the Gin context on success.
func Auth(jwt *helpers.JWTManager, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.AccessCookie)
		if err != nil || token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		if sessions != nil && !sessions.SessionActive(c.Request.Context(), claims.UserID, claims.SessionID) {
			response.Abort(c, http.StatusUnauthorized, "session not found")
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxSessionIDKey, claims.SessionID)
		c.Next()
	}
}
