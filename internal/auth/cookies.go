package auth

import (
	"net/http"
	"time"
)

const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

func accessCookie(value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     AccessCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	}
}

func refreshCookie(value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	}
}

func setSessionCookies(w http.ResponseWriter, access, refresh string, m *Manager, secure bool) {
	http.SetCookie(w, accessCookie(access, m.AccessTTL, secure))
	http.SetCookie(w, refreshCookie(refresh, m.RefreshTTL, secure))
}

func setAccessCookie(w http.ResponseWriter, access string, m *Manager, secure bool) {
	http.SetCookie(w, accessCookie(access, m.AccessTTL, secure))
}

func clearSessionCookies(w http.ResponseWriter, secure bool) {
	expire := time.Now().Add(-1 * time.Hour)
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			Expires:  expire,
			MaxAge:   -1,
		})
	}
}
