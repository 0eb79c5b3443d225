// Package session implements the server-side session state bound to a client
// cookie. A session starts anonymous and gains an Authorization once the user
// logs in; the access token inside it is verified independently per request.
package session

import "time"

// Authorization is the sub-object a successful login binds into the session.
type Authorization struct {
	AccessToken string
	Username    string
}

type Session struct {
	ID            string
	CreatedAt     time.Time
	Authorization *Authorization
}

// Store defines how sessions are created and retrieved. Sessions are values;
// mutations go back through Update.
type Store interface {
	Create() Session
	Get(id string) (Session, bool)
	Update(s Session)
	Delete(id string)
}
