package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

const usernameKey contextKey = "username"

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Auth gates the protected review routes. The access token comes from the
// session's authorization sub-object, not from a header; verification itself
// is stateless (signature + expiry only).
func Auth(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok || sess.Authorization == nil || sess.Authorization.AccessToken == "" {
				writeUnauthorized(w, "User not logged in")
				return
			}
			token, err := jwt.ParseWithClaims(sess.Authorization.AccessToken, &Claims{}, func(t *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				writeUnauthorized(w, "Invalid or expired token")
				return
			}
			claims, ok := token.Claims.(*Claims)
			if !ok || claims.Username == "" {
				writeUnauthorized(w, "Invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the username verified by Auth.
func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"` + msg + `"}`))
}
