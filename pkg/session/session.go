// Package session models the client-side authentication state: the cached
// bearer token and resolved identity for the lifetime of a client session.
//
// The state machine is explicit rather than ambient globals:
//
//	Anonymous -> Authenticating -> Authenticated
//	Authenticated --unauthenticated response--> Anonymous
//
// A forbidden response is a per-action result and never changes state.
package session

import (
	"net/http"
	"sync"

	"github.com/kaifmomin2004/EHR-Project/internal/models"
)

// State is the observable client session state.
type State int

const (
	// Anonymous holds no token; only login and register are reachable.
	Anonymous State = iota
	// Authenticating means credentials were submitted and the token
	// service result is pending.
	Authenticating
	// Authenticated holds a token that is replayed on every request.
	Authenticated
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session caches the current token and identity. Safe for concurrent use:
// a client may fire parallel requests while another goroutine reacts to an
// unauthenticated response.
type Session struct {
	mu       sync.RWMutex
	state    State
	token    string
	identity *models.User
}

// New returns a session in the Anonymous state.
func New() *Session {
	return &Session{state: Anonymous}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the cached bearer token, empty unless Authenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the cached identity, nil unless Authenticated.
func (s *Session) Identity() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Begin marks credentials as submitted. Returns false if a login or
// register attempt is already in flight from the Authenticating state.
func (s *Session) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Authenticating {
		return false
	}
	s.state = Authenticating
	return true
}

// Succeed stores the issued token and identity and enters Authenticated.
func (s *Session) Succeed(token string, identity *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Authenticated
	s.token = token
	s.identity = identity
}

// Fail surfaces an authentication error and returns to Anonymous.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Anonymous
	s.token = ""
	s.identity = nil
}

// HandleUnauthenticated reacts to a 401 from any protected call: the token
// is treated as compromised or expired, discarded, and the session drops to
// Anonymous. The same token is never retried.
func (s *Session) HandleUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Anonymous
	s.token = ""
	s.identity = nil
}

// HandleForbidden reacts to a 403. Deliberately a no-op on state: a
// forbidden action does not invalidate the session.
func (s *Session) HandleForbidden() {}

// Attach sets the bearer header on an outbound request when a token is
// held. Returns true if the request carries credentials.
func (s *Session) Attach(req *http.Request) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated || s.token == "" {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	return true
}
