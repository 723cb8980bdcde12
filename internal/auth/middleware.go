package auth

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/rsilveira/roteiros-api/internal/httpx"
)

// msgUnauthorized is the fixed body returned for every authentication failure,
// matching the product's user-facing language.
const msgUnauthorized = "Não autorizado"

// RequireAuth is a chi middleware that enforces authentication via the
// session cookie. It reads the session, extracts the user ID, and injects it
// into the request context. Returns 401 Unauthorized — before any data access
// happens — if the session is missing, invalid, or lacks a valid user_id.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			userIDStr, ok := session.Values[sessionUserIDKey].(string)
			if !ok || userIDStr == "" {
				httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid user_id in session", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
