package session

import (
	"context"

	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// SessionUC is the session manager surface consumed by UI layers. Reads go
// through State; every write operation goes through the manager so the
// (user, token) pair can never be observed half-updated.
type SessionUC interface {
	// Start hydrates the session from the token store. It runs once per
	// process and clears Loading regardless of outcome.
	Start(ctx context.Context) error

	// State returns an immutable snapshot of the session state.
	State() models.AuthState
	IsAuthenticated() bool

	// OnChange registers an observer invoked after every committed state
	// transition. The returned func cancels the registration.
	OnChange(fn func(models.AuthState)) (cancel func())

	// SignUp starts registration; it never changes session state. Success
	// opens a signup OTP challenge.
	SignUp(ctx context.Context, creds *models.Credentials) (*models.SignUpResponse, error)

	// VerifyOTP resolves an open challenge. Signup purpose adopts the
	// returned user and token atomically; reset purpose only acknowledges.
	VerifyOTP(ctx context.Context, v *models.OTPVerification) (*models.MessageResponse, error)

	// Login authenticates and atomically adopts user, token and persistence.
	Login(ctx context.Context, creds *models.Credentials) error

	// RequestPasswordReset opens a password-reset OTP challenge.
	RequestPasswordReset(ctx context.Context, email string) (*models.MessageResponse, error)

	// ResetPassword commits a new password after a verified reset challenge.
	// It never transitions session state.
	ResetPassword(ctx context.Context, email, newPassword string) (*models.MessageResponse, error)

	// Logout clears the session. Best-effort on storage; always succeeds
	// from the caller's point of view.
	Logout(ctx context.Context)

	// Challenge reports the live challenge for a purpose, if any.
	Challenge(purpose models.OTPPurpose) (models.OTPChallenge, bool)

	// AbandonChallenge drops the live challenge for a purpose.
	AbandonChallenge(purpose models.OTPPurpose)
}
