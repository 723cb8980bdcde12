// Package auth resolves the authenticated user for each request.
//
// The identity provider itself (OAuth login, account management) lives
// outside this service. What arrives here is its session cookie: an
// HMAC-signed — and, when an encryption key is configured, AES-encrypted —
// cookie whose session carries the user's UUID. This package only verifies
// the cookie and injects the resolved user ID into the request context; it
// never sees credentials.
//
// Keys must be 32 or 64 bytes for HMAC authentication and 16, 24, or 32
// bytes for AES encryption. Generate production keys with:
//
//	openssl rand -base64 32
package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie name shared with the external identity provider.
const SessionName = "roteiros_session"

// sessionUserIDKey is the session value key holding the user's UUID string.
const sessionUserIDKey = "user_id"

// NewSessionStore creates the cookie-backed session store.
//
// Parameters:
//   - authKey: 32 or 64 bytes, verifies cookie integrity. Required.
//   - encryptionKey: 16, 24, or 32 bytes, encrypts the cookie payload.
//     Pass nil to sign without encrypting (acceptable for local development).
//   - secureCookie: set true in production (HTTPS only); false for localhost.
//
// Sessions are HttpOnly with SameSite Lax and a 7-day expiration.
func NewSessionStore(authKey, encryptionKey []byte, secureCookie bool) sessions.Store {
	var store *sessions.CookieStore
	if len(encryptionKey) > 0 {
		store = sessions.NewCookieStore(authKey, encryptionKey)
	} else {
		store = sessions.NewCookieStore(authKey)
	}
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,            // 7 days
		HttpOnly: true,                 // no JavaScript access (XSS protection)
		Secure:   secureCookie,         // HTTPS only in production
		SameSite: http.SameSiteLaxMode, // CSRF protection, allows top-level navigation
	}
	return store
}
