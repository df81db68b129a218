package apierrors

// Operation names used across the session core. The gateway and the session
// manager tag every error with one of these.
const (
	OpSignUp               = "signup"
	OpVerifySignupOTP      = "verify_signup_otp"
	OpLogin                = "login"
	OpValidateToken        = "validate_token"
	OpRequestPasswordReset = "request_pass_reset"
	OpVerifyPassResetOTP   = "verify_pass_reset_otp"
	OpResetPassword        = "reset_password"
	OpLogout               = "logout"
	OpHydrate              = "hydrate"
)

const genericFallback = "Something went wrong. Please try again."

// fallbackMessages guarantees every operation has a user-facing string even
// when the server gives none.
var fallbackMessages = map[string]string{
	OpSignUp:               "Sign-up failed. Please try again.",
	OpVerifySignupOTP:      "OTP verification failed. Please try again.",
	OpLogin:                "Login failed. Please try again.",
	OpValidateToken:        "Your session has expired. Please log in again.",
	OpRequestPasswordReset: "Could not send the reset code. Please try again.",
	OpVerifyPassResetOTP:   "OTP verification failed. Please try again.",
	OpResetPassword:        "Password reset failed. Please try again.",
	OpLogout:               "Logout failed. Please try again.",
	OpHydrate:              "Could not restore your session. Please log in.",
}

// Fallback returns the default user-facing message for an operation.
func Fallback(op string) string {
	if msg, ok := fallbackMessages[op]; ok {
		return msg
	}
	return genericFallback
}
