package models

// User represents the authenticated account as reported by the auth API.
// The client keeps no identity beyond this.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials carries sign-up or login input. It is never persisted and
// must never be logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}
