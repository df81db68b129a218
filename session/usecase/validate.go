package usecase

import (
	"regexp"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
)

// Client-side input checks. These catch obviously malformed input before a
// network round-trip; the server revalidates everything.

const minPasswordLength = 6

var (
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	otpCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

func validateEmail(op, email string) error {
	if email == "" || !emailPattern.MatchString(email) {
		return apierrors.New(apierrors.KindValidation, op, "Enter a valid email address.")
	}
	return nil
}

func validatePassword(op, password string) error {
	if len(password) < minPasswordLength {
		return apierrors.New(apierrors.KindValidation, op,
			"Password must be at least 6 characters.")
	}
	return nil
}

func validateOTPCode(op, code string) error {
	if !otpCodePattern.MatchString(code) {
		return apierrors.New(apierrors.KindValidation, op, "Enter the 6-digit code.")
	}
	return nil
}
