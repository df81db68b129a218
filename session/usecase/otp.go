package usecase

import (
	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// At most one live challenge exists per purpose. Re-requesting replaces the
// challenge (a resend), it never creates a second one.

// Challenge reports the live challenge for a purpose, if any.
func (m *Manager) Challenge(purpose models.OTPPurpose) (models.OTPChallenge, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.challenges[purpose]
	if !ok {
		return models.OTPChallenge{}, false
	}
	return *c, true
}

// AbandonChallenge drops the live challenge for a purpose. The user will
// have to restart that flow.
func (m *Manager) AbandonChallenge(purpose models.OTPPurpose) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.challenges[purpose]; ok {
		delete(m.challenges, purpose)
		logger.Debug("OTP challenge abandoned", logger.String("purpose", string(purpose)))
	}
}

// openChallenge starts (or resends) the challenge for email+purpose.
func (m *Manager) openChallenge(email string, purpose models.OTPPurpose) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.challenges[purpose] = &models.OTPChallenge{
		Email:       email,
		Purpose:     purpose,
		State:       models.OTPStateRequested,
		RequestedAt: m.clock(),
	}
}

// checkResendCooldown rejects a request made too soon after the previous
// one for the same purpose.
func (m *Manager) checkResendCooldown(op string, purpose models.OTPPurpose) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.challenges[purpose]
	if !ok {
		return nil
	}
	if m.clock().Sub(c.RequestedAt) < m.cfg.OTP.ResendCooldown {
		return apierrors.New(apierrors.KindValidation, op,
			"Please wait before requesting another OTP.")
	}
	return nil
}

// liveChallenge fetches the challenge a verification must resolve. Expired
// challenges are discarded on sight; the server remains the authority on
// code expiry, this only stops a round-trip that cannot succeed.
func (m *Manager) liveChallenge(op string, v *models.OTPVerification) (*models.OTPChallenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.challenges[v.Purpose]
	if !ok || c.Email != v.Email {
		return nil, apierrors.New(apierrors.KindValidation, op,
			"No pending verification for this email. Request a new OTP.")
	}

	if m.clock().Sub(c.RequestedAt) > m.cfg.OTP.Expiry {
		delete(m.challenges, v.Purpose)
		return nil, apierrors.New(apierrors.KindValidation, op,
			"OTP has expired. Please request a new one.")
	}

	return c, nil
}

// recordFailedAttempt counts a server rejection against the challenge and
// abandons it once the attempt cap is reached.
func (m *Manager) recordFailedAttempt(op string, purpose models.OTPPurpose) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.challenges[purpose]
	if !ok {
		return nil
	}

	c.Attempts++
	if c.Attempts >= m.cfg.OTP.MaxAttempts {
		delete(m.challenges, purpose)
		logger.Info("OTP challenge abandoned after repeated failures",
			logger.String("purpose", string(purpose)),
			logger.Int("attempts", c.Attempts))
		return apierrors.New(apierrors.KindValidation, op,
			"Too many incorrect attempts. Request a new OTP.")
	}
	return nil
}

// resolveChallenge marks the challenge verified. Reset challenges stay
// around in the verified state because ResetPassword requires one; signup
// challenges are spent immediately.
func (m *Manager) resolveChallenge(purpose models.OTPPurpose) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.challenges[purpose]
	if !ok {
		return
	}

	if purpose == models.OTPPurposeSignup {
		delete(m.challenges, purpose)
		return
	}
	c.State = models.OTPStateVerified
}
