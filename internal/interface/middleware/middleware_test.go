package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

type staticSessions bool

func (s staticSessions) SessionActive(context.Context, string, string) bool { return bool(s) }

func authEngine(jwt *helpers.JWTManager, sessions SessionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/me", Auth(jwt, sessions), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey)+"/"+c.GetString(CtxSessionIDKey))
	})
	return r
}

func TestAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	token, _, err := jwt.GenerateAccessToken("u-1", "sid-1")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	refresh, _, _ := jwt.GenerateRefreshToken("u-1", "sid-1")

	cases := []struct {
		name     string
		cookie   string
		sessions SessionChecker
		want     int
	}{
		{"no cookie", "", nil, http.StatusUnauthorized},
		{"garbage", "not-a-jwt", nil, http.StatusUnauthorized},
		{"refresh token as access", refresh, nil, http.StatusUnauthorized},
		{"ok without session store", token, nil, http.StatusOK},
		{"ok with live session", token, staticSessions(true), http.StatusOK},
		{"revoked session", token, staticSessions(false), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			authEngine(jwt, tc.sessions).ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
			if tc.want == http.StatusOK && w.Body.String() != "u-1/sid-1" {
				t.Fatalf("context not populated: %q", w.Body.String())
			}
			if tc.want != http.StatusOK && !strings.Contains(w.Body.String(), `"success":false`) {
				t.Fatalf("expected error envelope, got %q", w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(response.RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Body.String() == "" || w.Header().Get(RequestIDHeader) != w.Body.String() {
		t.Fatalf("request id not propagated: %q / %q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}

	const inbound = "2f1b7c1e-8a4c-4f55-9b0d-0c1d2e3f4a5b"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, inbound)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != inbound {
		t.Fatalf("expected inbound id to be reused, got %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() == "<script>" {
		t.Fatalf("malformed inbound id must be replaced")
	}
}

func ipEngine(t *testing.T, trusted []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := TrustProxies(r, trusted); err != nil {
		t.Fatalf("trust proxies: %v", err)
	}
	r.Use(RealIP())
	allow := AllowPrivateIP()
	key := KeyByIPAndPath()
	r.POST("/login", func(c *gin.Context) {
		kind := "public"
		if allow(c) {
			kind = "private"
		}
		c.String(http.StatusOK, kind+" "+key(c))
	})
	return r
}

func TestRealIP_UntrustedPeerCannotSpoof(t *testing.T) {
	r := ipEngine(t, nil)

	// httptest requests come from 192.0.2.1
	for _, hdr := range []struct{ name, value string }{
		{"X-Forwarded-For", "1.2.3.4"},
		{"X-Forwarded-For", "5.6.7.8"},
		{"X-Forwarded-For", "127.0.0.1"},
		{"CF-Connecting-IP", "10.0.0.1"},
	} {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set(hdr.name, hdr.value)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Body.String(); got != "public rl:path:/login:ip:192.0.2.1" {
			t.Fatalf("%s=%s changed the client: %q", hdr.name, hdr.value, got)
		}
	}
}

func TestRealIP_TrustedProxy(t *testing.T) {
	r := ipEngine(t, []string{"192.0.2.0/24"})

	cases := []struct {
		header, value, want string
	}{
		{"CF-Connecting-IP", "203.0.113.9", "public rl:path:/login:ip:203.0.113.9"},
		{"X-Forwarded-For", "10.1.2.3", "private rl:path:/login:ip:10.1.2.3"},
		// only the hop appended by our proxy counts
		{"X-Forwarded-For", "127.0.0.1, 203.0.113.9", "public rl:path:/login:ip:203.0.113.9"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set(tc.header, tc.value)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Body.String() != tc.want {
			t.Fatalf("%s=%s: got %q want %q", tc.header, tc.value, w.Body.String(), tc.want)
		}
	}
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(nil, 1, time.Minute, KeyByIPAndPath(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("attempt %d: expected passthrough, got %d", i, w.Code)
		}
	}
}

func TestRemaining(t *testing.T) {
	if remaining(10, 3) != 7 || remaining(10, 10) != 0 || remaining(10, 12) != 0 {
		t.Fatalf("remaining must never go negative")
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLog(logger))
	r.GET("/api/invoices", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices?query=secret", nil))

	out := buf.String()
	if !strings.Contains(out, `"path":"/api/invoices"`) || !strings.Contains(out, `"status":200`) {
		t.Fatalf("unexpected log line %s", out)
	}
	if strings.Contains(out, "secret") {
		t.Fatalf("query string leaked into access log: %s", out)
	}
}
