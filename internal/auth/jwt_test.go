package auth

import (
	"testing"
	"time"
)

func testManager() *Manager {
	return &Manager{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "lexsite-backend",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()
	token, err := m.NewAccessToken("admin-1")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := m.ParseAccess(token)
	if err != nil {
		t.Fatalf("ParseAccess error: %v", err)
	}
	if claims.Subject != "admin-1" {
		t.Fatalf("expected subject admin-1, got %q", claims.Subject)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := testManager()
	token, err := m.NewRefreshToken("admin-1")
	if err != nil {
		t.Fatalf("NewRefreshToken error: %v", err)
	}

	claims, err := m.ParseRefresh(token)
	if err != nil {
		t.Fatalf("ParseRefresh error: %v", err)
	}
	if claims.Subject != "admin-1" {
		t.Fatalf("expected subject admin-1, got %q", claims.Subject)
	}
}

func TestAccessTokenRejectedByRefreshSecret(t *testing.T) {
	m := testManager()
	access, err := m.NewAccessToken("admin-1")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := m.ParseRefresh(access); err == nil {
		t.Fatalf("expected access token to fail refresh verification")
	}

	refresh, err := m.NewRefreshToken("admin-1")
	if err != nil {
		t.Fatalf("NewRefreshToken error: %v", err)
	}
	if _, err := m.ParseAccess(refresh); err == nil {
		t.Fatalf("expected refresh token to fail access verification")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := testManager()
	m.AccessTTL = -1 * time.Minute

	token, err := m.NewAccessToken("admin-1")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := m.ParseAccess(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestForgedTokenRejected(t *testing.T) {
	m := testManager()
	other := testManager()
	other.AccessSecret = []byte("some-other-secret")

	token, err := other.NewAccessToken("admin-1")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := m.ParseAccess(token); err == nil {
		t.Fatalf("expected token from another secret to be rejected")
	}
}

func TestVerifyAccessReturnsAdminID(t *testing.T) {
	m := testManager()
	token, err := m.NewAccessToken("admin-7")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	id, err := m.VerifyAccess(token)
	if err != nil {
		t.Fatalf("VerifyAccess error: %v", err)
	}
	if id != "admin-7" {
		t.Fatalf("expected admin-7, got %q", id)
	}
}
