package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
)

const seededUserID = "410544b2-4001-4271-9855-fec4b6a6442a"

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	hash, err := helpers.HashPasswordCost("123456", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := &fakeUserRepo{users: map[string]*entity.User{
		"user@nextmail.com": {ID: seededUserID, Name: "User", Email: "user@nextmail.com", Password: hash},
	}}
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	return NewAuthService(users, jwt, nil, 0, nil), users
}

func TestAuthenticate_ScenarioC(t *testing.T) {
	svc, _ := newAuthFixture(t)
	u, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != seededUserID {
		t.Fatalf("unexpected id %q", u.ID)
	}
}

func TestAuthenticate_NonEnumeration(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, errUnknown := svc.Authenticate(ctx, "unknown@x.com", "whatever1")
	_, errWrong := svc.Authenticate(ctx, "user@nextmail.com", "wrongpass")

	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v / %v", errUnknown, errWrong)
	}
	if errUnknown != errWrong || errUnknown.Error() != errWrong.Error() {
		t.Fatalf("failures are distinguishable: %q vs %q", errUnknown, errWrong)
	}
}

func TestAuthenticate_ExactEmailMatch(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, err := svc.Authenticate(context.Background(), "User@NextMail.com", "123456")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected case-sensitive lookup to fail, got %v", err)
	}
}

func TestAuthenticate_ShapeRejectedBeforeStore(t *testing.T) {
	svc, users := newAuthFixture(t)
	cases := []struct {
		email, password string
		fields          []string
	}{
		{"not-an-email", "123456", []string{"email"}},
		{"user@nextmail.com", "12345", []string{"password"}},
		{"", "", []string{"email", "password"}},
	}
	for _, tc := range cases {
		_, err := svc.Authenticate(context.Background(), tc.email, tc.password)
		var ve *ValidationError
		if !errors.As(err, &ve) || !errors.Is(err, ErrInvalidCredentialsShape) {
			t.Fatalf("(%q,%q) expected shape error, got %v", tc.email, tc.password, err)
		}
		for _, f := range tc.fields {
			if len(ve.Fields[f]) == 0 {
				t.Fatalf("(%q,%q) expected %s error, got %v", tc.email, tc.password, f, ve.Fields)
			}
		}
	}
	if users.calls != 0 {
		t.Fatalf("store was queried %d times for malformed input", users.calls)
	}
}

func TestAuthenticate_PasswordLengthCountsRunes(t *testing.T) {
	if err := CheckCredentialsShape("a@b.co", "ñññññ"); err == nil {
		t.Fatalf("five runes must be rejected even though they are ten bytes")
	}
	if err := CheckCredentialsShape("a@b.co", "ññññññ"); err != nil {
		t.Fatalf("six runes must pass, got %v", err)
	}
}

func TestAuthenticate_BackendUnavailable(t *testing.T) {
	svc, users := newAuthFixture(t)
	users.err = errors.New("dial tcp: connection refused")

	_, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("expected backend unavailable, got %v", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("backend failure must be distinct from bad credentials")
	}
	if err.Error() != "Something went wrong." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestLoginAndRefresh(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, pair, err := svc.Login(ctx, "user@nextmail.com", "123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.UserID != seededUserID || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("unexpected login result %+v %+v", resp, pair)
	}

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	if err != nil || claims.UserID != seededUserID || claims.SessionID == "" {
		t.Fatalf("bad access token: %+v %v", claims, err)
	}

	next, uid, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil || uid != seededUserID || next.AccessToken == "" {
		t.Fatalf("refresh: %v", err)
	}
	if _, _, err := svc.Refresh(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("access token must not refresh, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	svc, _ := newAuthFixture(t)
	u, err := svc.GetProfile(context.Background(), seededUserID)
	if err != nil || u.Email != "user@nextmail.com" {
		t.Fatalf("profile: %+v %v", u, err)
	}
	if _, err := svc.GetProfile(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
	if err := svc.Logout(context.Background(), seededUserID); err != nil {
		t.Fatalf("logout without redis: %v", err)
	}
}
