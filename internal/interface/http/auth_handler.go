package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/invoice-dashboard/internal/application"
	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/response"
	"github.com/oksasatya/invoice-dashboard/pkg/validation"
)

// AuthService is the session surface the auth endpoints need.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*app.LoginResponse, app.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (app.TokenPair, string, error)
	Logout(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}

type AuthHandler struct {
	Svc     AuthService
	Logger  logrus.FieldLogger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc AuthService, logger logrus.FieldLogger, cookies *helpers.Manager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, res, "login successful", map[string]any{"access_expires_at": pair.AccessTokenExpiry, "refresh_expires_at": pair.RefreshTokenExpiry})
}

// Refresh POST /api/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(helpers.RefreshCookie)
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, _, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		writeError(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success[any](c, http.StatusOK, map[string]any{"refreshed": true}, "token refreshed", map[string]any{"access_expires_at": pair.AccessTokenExpiry, "refresh_expires_at": pair.RefreshTokenExpiry})
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context(), c.GetString("userID")); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("session delete failed")
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// GetProfile GET /api/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}, "profile", nil)
}
