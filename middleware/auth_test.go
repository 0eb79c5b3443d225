package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookreviews/session"
)

const testSecret = "access"

func signToken(t *testing.T, secret, username string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func gatedRequest(t *testing.T, sess *session.Session) *httptest.ResponseRecorder {
	t.Helper()
	var seen string
	gate := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UsernameFromContext(r.Context())
		w.Write([]byte(seen))
	}))

	req := httptest.NewRequest(http.MethodPut, "/customer/auth/review/1", nil)
	if sess != nil {
		ctx := context.WithValue(req.Context(), sessionKey, *sess)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)
	return rec
}

func TestAuthAcceptsValidToken(t *testing.T) {
	tok := signToken(t, testSecret, "alice", time.Hour)
	sess := &session.Session{ID: "s1", Authorization: &session.Authorization{AccessToken: tok, Username: "alice"}}

	rec := gatedRequest(t, sess)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "alice" {
		t.Fatalf("username not propagated: %q", rec.Body.String())
	}
}

func TestAuthRejectsMissingSessionOrAuthorization(t *testing.T) {
	rec := gatedRequest(t, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no session: want 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not logged in") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = gatedRequest(t, &session.Session{ID: "s2"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous session: want 401, got %d", rec.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	tok := signToken(t, testSecret, "alice", -time.Minute)
	sess := &session.Session{ID: "s3", Authorization: &session.Authorization{AccessToken: tok, Username: "alice"}}

	rec := gatedRequest(t, sess)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: want 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid or expired token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	tok := signToken(t, testSecret, "alice", time.Hour)
	tampered := tok + "AAAA"
	sess := &session.Session{ID: "s4", Authorization: &session.Authorization{AccessToken: tampered, Username: "alice"}}

	rec := gatedRequest(t, sess)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: want 401, got %d", rec.Code)
	}
}

func TestAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	tok := signToken(t, "not-the-secret", "alice", time.Hour)
	sess := &session.Session{ID: "s5", Authorization: &session.Authorization{AccessToken: tok, Username: "alice"}}

	rec := gatedRequest(t, sess)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: want 401, got %d", rec.Code)
	}
}
