package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/taskdeck/pkg/httpx"
	"github.com/ghuser/taskdeck/pkg/logger"
)

const sessionName = "taskdeck_session"
const sessionUsernameKey = "username"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the username, and injects it into the
// request context. Returns 401 Unauthorized if the session is missing, invalid,
// or lacks a username.
//
// After this middleware, handlers can safely call auth.UsernameFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			username, ok := session.Values[sessionUsernameKey].(string)
			if !ok || username == "" {
				log.WarnContext(r.Context(), "session missing username")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Login writes the username into the request's session and persists it.
// Called by the login handler after credentials are verified.
func Login(store sessions.Store, w http.ResponseWriter, r *http.Request, username string) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.Values[sessionUsernameKey] = username
	return session.Save(r, w)
}

// Logout expires the session cookie and deletes the server-side session.
func Logout(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
