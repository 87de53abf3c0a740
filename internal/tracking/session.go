// Package tracking implements the shipment tracking view: fetching a record,
// subscribing to live updates, keeping the map in sync, and rendering a
// printable receipt. The backend is an external collaborator reached over
// HTTP and redis pub/sub.
package tracking

import "sync"

// Session holds the bearer credential shared by every outgoing API call.
// Public tracking lookups run without one; the admin-side client sets it
// after login. The credential is an explicit injected dependency rather
// than ambient process-wide state.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession() *Session {
	return &Session{}
}

// SetCredential stores the bearer token attached to subsequent requests.
func (s *Session) SetCredential(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// ClearCredential drops the stored token; subsequent requests go out anonymous.
func (s *Session) ClearCredential() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// Credential returns the current token and whether one is set.
func (s *Session) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}
