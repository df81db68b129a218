package models

// SignUpRequest is the body for POST /signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SignUpResponse acknowledges a sign-up and names the email the OTP went to.
type SignUpResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and signup-OTP verification: the
// authenticated user together with a fresh bearer token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// ValidateTokenResponse is returned by POST /validate-token.
type ValidateTokenResponse struct {
	User *User `json:"user"`
}

// PasswordResetRequest is the body for POST /request-pass-reset.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body for POST /reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse is the generic acknowledgement shape used by the password
// reset endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error shape the auth API returns on non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
