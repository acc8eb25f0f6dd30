package application

import (
	"context"
	"errors"
	"expvar"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/invoice-dashboard/internal/domain/repository"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/validation"
)

const (
	MinPasswordLength = 6

	msgInvalidShape   = "Invalid credentials."
	msgBackendFailure = "Something went wrong."
)

// loginStats is published at /api/debug/vars.
var loginStats = expvar.NewMap("login")

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// dummyPasswordHash is compared against when the email is unknown so both
// failure paths pay for one bcrypt comparison.
func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = helpers.HashPassword(uuid.NewString())
	})
	return dummyHash
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type LoginResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type AuthService struct {
	Repo       repo.UserRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	SessionTTL time.Duration
	Logger     logrus.FieldLogger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, sessionTTL time.Duration, logger logrus.FieldLogger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{Repo: r, JWT: jwt, Redis: rdb, SessionTTL: sessionTTL, Logger: logger}
}

// CheckCredentialsShape validates email syntax and minimum password length.
func CheckCredentialsShape(email, password string) error {
	fe := validation.FieldErrors{}
	if !validation.IsEmail(email) {
		fe.Add("email", "Please enter a valid email address.")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		fe.Add("password", "Password must be at least 6 characters.")
	}
	if fe.Empty() {
		return nil
	}
	return &ValidationError{Sentinel: ErrInvalidCredentialsShape, Message: msgInvalidShape, Fields: fe}
}

// Authenticate validates email/password and returns the user without issuing tokens.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	if err := CheckCredentialsShape(email, password); err != nil {
		loginStats.Add("rejected_shape", 1)
		return nil, err
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && u == nil) {
		helpers.CompareHashAndPassword(dummyPasswordHash(), password)
		loginStats.Add("failed", 1)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		loginStats.Add("backend_error", 1)
		return nil, dataAccess(s.Logger, ErrBackendUnavailable, msgBackendFailure, err, logrus.Fields{"op": "Authenticate"})
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		loginStats.Add("failed", 1)
		return nil, ErrInvalidCredentials
	}
	loginStats.Add("succeeded", 1)
	return u, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	pair, err := s.tokens(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"sid":        sid,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &LoginResponse{UserID: u.ID, Email: u.Email, Name: u.Name}, pair, nil
}

// Refresh rotates the token pair. The refresh token's sid must match the stored session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && u == nil) {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, "", dataAccess(s.Logger, ErrBackendUnavailable, msgBackendFailure, err, logrus.Fields{"op": "Refresh"})
	}
	if !s.SessionActive(ctx, u.ID, claims.SessionID) {
		return TokenPair{}, "", ErrInvalidCredentials
	}

	sid := uuid.NewString()
	pair, err := s.tokens(u.ID, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"sid":        sid,
			"updated_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, s.SessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return pair, u.ID, nil
}

// SessionActive reports whether sid is the current session of userID.
// Without Redis every signed token is accepted.
func (s *AuthService) SessionActive(ctx context.Context, userID, sid string) bool {
	if s.Redis == nil {
		return true
	}
	cur, err := s.Redis.HGet(ctx, sessionKey(userID), "sid").Result()
	return err == nil && cur != "" && cur == sid
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if s.Redis == nil || userID == "" {
		return nil
	}
	return helpers.RedisDel(ctx, s.Redis, sessionKey(userID))
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && u == nil) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, dataAccess(s.Logger, ErrBackendUnavailable, msgBackendFailure, err, logrus.Fields{"op": "GetProfile"})
	}
	return u, nil
}

func (s *AuthService) tokens(userID, sid string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(userID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(userID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}
