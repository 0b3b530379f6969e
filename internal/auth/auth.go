package auth

import (
	"sync"

	"github.com/google/uuid"
)

// Registry is an in-memory session store. Tokens are opaque UUIDs
// handed out at login and dropped at logout or restart.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]int64),
	}
}

func (r *Registry) Issue(userID int64) string {
	token := uuid.NewString()
	r.mu.Lock()
	r.sessions[token] = userID
	r.mu.Unlock()
	return token
}

func (r *Registry) Resolve(token string) (int64, bool) {
	r.mu.RLock()
	userID, ok := r.sessions[token]
	r.mu.RUnlock()
	return userID, ok
}

func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
