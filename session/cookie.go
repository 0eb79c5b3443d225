package session

import "net/http"

const CookieName = "session_id"

// SetCookie issues the session cookie. No Expires: the cookie lives as long
// as the browser session, the server side as long as the process.
func SetCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// IDFromRequest extracts the session ID from the request cookie.
func IDFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
