package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookreviews/middleware"
	"bookreviews/session"
	"bookreviews/store"
)

type AuthHandler struct {
	Users     *store.Registry
	Sessions  session.Store
	JWTSecret string
	TokenTTL  time.Duration
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register creates a new credential pair. Duplicate usernames answer 400,
// not 409; existing clients check for that status.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if err := h.Users.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			writeMessage(w, http.StatusBadRequest, "Username already exists")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusCreated, registerResponse{
		Message:  "User registered successfully",
		Username: req.Username,
	})
}

// Login checks the credential pair, mints an access token, and binds it into
// the caller's session. The token is also returned in the body for clients
// that manage it out-of-band.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if !h.Users.Authenticate(req.Username, req.Password) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.createToken(req.Username)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		sess.Authorization = &session.Authorization{
			AccessToken: token,
			Username:    req.Username,
		}
		h.Sessions.Update(sess)
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "User logged in successfully",
		Token:   token,
	})
}

func (h *AuthHandler) createToken(username string) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.JWTSecret))
}
