package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Manager writes the session cookies. Both are httpOnly, SameSite=Lax and scoped to "/".
type Manager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *Manager {
	return &Manager{Domain: domain, Secure: secure}
}

// SetPair writes both tokens; each cookie expires with its token.
func (m *Manager) SetPair(c *gin.Context, access string, aexp time.Time, refresh string, rexp time.Time) {
	m.write(c, AccessCookie, access, aexp)
	m.write(c, RefreshCookie, refresh, rexp)
}

// Clear expires both cookies.
func (m *Manager) Clear(c *gin.Context) {
	m.write(c, AccessCookie, "", time.Unix(0, 0))
	m.write(c, RefreshCookie, "", time.Unix(0, 0))
}

func (m *Manager) write(c *gin.Context, name, value string, exp time.Time) {
	maxAge := int(time.Until(exp).Seconds())
	if value == "" || maxAge <= 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.Domain,
		Expires:  exp,
		MaxAge:   maxAge,
		Secure:   m.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
