package models

import (
	"time"
)

// OTPPurpose tags which flow an outstanding one-time passcode serves. A code
// issued for one purpose is never accepted for the other.
type OTPPurpose string

const (
	// OTPPurposeSignup verifies a new account's email address.
	OTPPurposeSignup OTPPurpose = "signup"
	// OTPPurposePasswordReset proves email control before a password reset.
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

// OTPChallengeState is the lifecycle phase of a live OTP challenge.
type OTPChallengeState string

const (
	OTPStateRequested OTPChallengeState = "requested"
	OTPStateVerified  OTPChallengeState = "verified"
	OTPStateAbandoned OTPChallengeState = "abandoned"
)

// OTPChallenge tracks one outstanding passcode between request and
// verification. It lives only in memory; losing it forces the user to
// restart that flow.
type OTPChallenge struct {
	Email       string            `json:"email"`
	Purpose     OTPPurpose        `json:"purpose"`
	State       OTPChallengeState `json:"state"`
	Attempts    int               `json:"attempts"`
	RequestedAt time.Time         `json:"requested_at"`
}

// VerifyOTPRequest is the body for both OTP verification endpoints.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// OTPVerification is the manager-level verification input. Purpose routes
// the code to the right endpoint and decides what success means.
type OTPVerification struct {
	Email   string
	Code    string
	Purpose OTPPurpose
}
