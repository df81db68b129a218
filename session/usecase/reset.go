package usecase

import (
	"context"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// Password reset is deliberately decoupled from login: none of these
// operations issue a token or transition session state. The user logs in
// with the new password afterwards.

// RequestPasswordReset asks the server to mail a reset OTP and opens the
// password-reset challenge.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) (*models.MessageResponse, error) {
	if err := validateEmail(apierrors.OpRequestPasswordReset, email); err != nil {
		return nil, err
	}
	if err := m.checkResendCooldown(apierrors.OpRequestPasswordReset, models.OTPPurposePasswordReset); err != nil {
		return nil, err
	}

	if err := m.beginOp(); err != nil {
		return nil, err
	}
	defer m.endOp()

	resp, err := m.gateway.RequestPasswordReset(ctx, &models.PasswordResetRequest{Email: email})
	if err != nil {
		return nil, err
	}

	m.openChallenge(email, models.OTPPurposePasswordReset)

	logger.Info("password reset OTP requested", logger.String("email", email))
	return resp, nil
}

// ResetPassword commits a new password. It requires a verified reset
// challenge for the same email; skipping the OTP step fails immediately,
// mirroring the server's own check.
func (m *Manager) ResetPassword(ctx context.Context, email, newPassword string) (*models.MessageResponse, error) {
	if err := validateEmail(apierrors.OpResetPassword, email); err != nil {
		return nil, err
	}
	if err := validatePassword(apierrors.OpResetPassword, newPassword); err != nil {
		return nil, err
	}
	if err := m.requireVerifiedReset(email); err != nil {
		return nil, err
	}

	if err := m.beginOp(); err != nil {
		return nil, err
	}
	defer m.endOp()

	resp, err := m.gateway.ResetPassword(ctx, &models.ResetPasswordRequest{
		Email:       email,
		NewPassword: newPassword,
	})
	if err != nil {
		return nil, err
	}

	// The challenge is spent; session state stays whatever it was.
	m.AbandonChallenge(models.OTPPurposePasswordReset)

	logger.Info("password reset completed", logger.String("email", email))
	return resp, nil
}

func (m *Manager) requireVerifiedReset(email string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.challenges[models.OTPPurposePasswordReset]
	if !ok || c.Email != email || c.State != models.OTPStateVerified {
		return apierrors.New(apierrors.KindValidation, apierrors.OpResetPassword,
			"Please verify the OTP sent to your email first.")
	}
	return nil
}
