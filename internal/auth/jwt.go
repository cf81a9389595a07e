package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies the two session credentials. Access and refresh
// tokens use distinct secrets, so one can never stand in for the other.
type Manager struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

type Claims struct {
	jwt.RegisteredClaims
}

func (m *Manager) newToken(adminID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			Issuer:    m.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *Manager) NewAccessToken(adminID string) (string, error) {
	return m.newToken(adminID, m.AccessSecret, m.AccessTTL)
}

func (m *Manager) NewRefreshToken(adminID string) (string, error) {
	return m.newToken(adminID, m.RefreshSecret, m.RefreshTTL)
}

func (m *Manager) parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (m *Manager) ParseAccess(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, m.AccessSecret)
}

func (m *Manager) ParseRefresh(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, m.RefreshSecret)
}

// VerifyAccess returns the admin id carried by a valid access token. The
// admin middleware consumes this shape so it never depends on this package's
// handler types.
func (m *Manager) VerifyAccess(tokenStr string) (string, error) {
	claims, err := m.ParseAccess(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
