package middleware

import (
	"context"
	"net/http"

	"bookreviews/session"
)

type contextKey string

const sessionKey contextKey = "session"

// Sessions attaches a server-side session to every request, creating one (and
// setting the cookie) when the client presents none or an unknown ID. Mounted
// on the /customer subtree only, matching the original surface.
func Sessions(store session.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess session.Session
			if id, ok := session.IDFromRequest(r); ok {
				if existing, found := store.Get(id); found {
					sess = existing
				}
			}
			if sess.ID == "" {
				sess = store.Create()
				session.SetCookie(w, sess.ID)
			}
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session attached by Sessions.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(session.Session)
	return s, ok
}
