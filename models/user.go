package models

// Credential is a registered user. Passwords are stored and compared as
// plaintext; hardening is explicitly out of scope for this service.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
