package models

// Session holds the opaque bearer token issued by the auth API. It is the
// only secret the client ever persists.
type Session struct {
	Token string `json:"token"`
}

// AuthStatus is the lifecycle phase of the session state machine.
type AuthStatus string

const (
	// StatusInitializing is the state before stored-token hydration completes.
	StatusInitializing AuthStatus = "initializing"
	// StatusUnauthenticated means no valid session exists.
	StatusUnauthenticated AuthStatus = "unauthenticated"
	// StatusAuthenticated means both a user and a token are held.
	StatusAuthenticated AuthStatus = "authenticated"
)

// AuthState is an immutable snapshot of the session state machine.
// Authenticated holds exactly when both User and Session are non-nil.
type AuthState struct {
	Status  AuthStatus `json:"status"`
	User    *User      `json:"user,omitempty"`
	Session *Session   `json:"session,omitempty"`
	Loading bool       `json:"loading"`
}

// IsAuthenticated reports whether the snapshot carries a complete session.
func (s AuthState) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil && s.Session != nil
}
