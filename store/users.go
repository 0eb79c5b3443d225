package store

import (
	"errors"
	"sync"

	"bookreviews/models"
)

var ErrUsernameTaken = errors.New("username already exists")

// Registry holds registered credentials in memory. Usernames are unique;
// entries are never updated or removed.
type Registry struct {
	mu    sync.RWMutex
	users []models.Credential
}

func NewRegistry() *Registry {
	return &Registry{}
}

// IsAvailable reports whether no registered user has the given username.
func (r *Registry) IsAvailable(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.taken(username)
}

// Register adds a credential pair. Field presence is the caller's problem;
// the registry only enforces username uniqueness.
func (r *Registry) Register(username, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(username) {
		return ErrUsernameTaken
	}
	r.users = append(r.users, models.Credential{Username: username, Password: password})
	return nil
}

// Authenticate reports whether the exact credential pair is registered.
// Plaintext comparison is the literal contract of this service.
func (r *Registry) Authenticate(username, password string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return true
		}
	}
	return false
}

// Count returns the number of registered users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *Registry) taken(username string) bool {
	for _, u := range r.users {
		if u.Username == username {
			return true
		}
	}
	return false
}
