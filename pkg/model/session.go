package model

// SessionKey is the local storage key holding the authentication flag.
const SessionKey = "warehouse_auth"

type SessionState int

const (
	Anonymous SessionState = iota
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session is the process wide authentication state.
type Session struct {
	Authenticated bool `json:"authenticated"`
}

func (s Session) State() SessionState {
	if s.Authenticated {
		return Authenticated
	}
	return Anonymous
}

// Flag returns the persisted representation
func (s Session) Flag() string {
	if s.Authenticated {
		return "true"
	}
	return "false"
}

// Restore seeds the session from a persisted flag, only the
// literal "true" counts as authenticated.
func (s *Session) Restore(flag string) {
	s.Authenticated = flag == "true"
}
