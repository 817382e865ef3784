package auth

import (
	"context"
	"testing"
	"time"

	"github.com/gulpcr/digitalslips-sub001/internal/config"
	"github.com/gulpcr/digitalslips-sub001/internal/identity"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:       "test-access-secret",
		RefreshSecret:   "test-refresh-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	claims := map[string]any{"sub": "u1", "ver": 0}
	token, err := SignHS256(claims, []byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := ParseAndVerifyHS256(token, []byte("secret"))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if parsed["sub"] != "u1" {
		t.Fatalf("expected sub u1, got %v", parsed["sub"])
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	token, err := SignHS256(map[string]any{"sub": "u1"}, []byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseAndVerifyHS256(token, []byte("other-secret")); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
	if _, err := ParseAndVerifyHS256(token+"x", []byte("secret")); err == nil {
		t.Fatalf("expected verification failure with corrupted signature")
	}
}

func TestLoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	repo := identity.NewMemoryRepository()
	ids := identity.NewService(repo)
	svc := NewService(testConfig(), repo)

	user, err := ids.Register(ctx, identity.Credentials{Email: "amina@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	pair, err := svc.Login(user)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens issued")
	}
	if pair.ExpiresIn <= 0 {
		t.Fatalf("expected positive expiry, got %d", pair.ExpiresIn)
	}

	access, exp, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || exp <= 0 {
		t.Fatalf("expected refreshed access token")
	}

	if err := svc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// Old refresh token now carries a stale version.
	if _, _, err := svc.Refresh(ctx, pair.RefreshToken); err == nil {
		t.Fatalf("expected refresh rejection after logout")
	}
}
