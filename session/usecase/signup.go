package usecase

import (
	"context"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// SignUp starts registration. The session state does not change; a
// successful request opens a signup OTP challenge that VerifyOTP resolves.
func (m *Manager) SignUp(ctx context.Context, creds *models.Credentials) (*models.SignUpResponse, error) {
	if err := validateEmail(apierrors.OpSignUp, creds.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(apierrors.OpSignUp, creds.Password); err != nil {
		return nil, err
	}
	if err := m.checkResendCooldown(apierrors.OpSignUp, models.OTPPurposeSignup); err != nil {
		return nil, err
	}

	if err := m.beginOp(); err != nil {
		return nil, err
	}
	defer m.endOp()

	resp, err := m.gateway.SignUp(ctx, &models.SignUpRequest{
		Email:    creds.Email,
		Name:     creds.Name,
		Password: creds.Password,
	})
	if err != nil {
		return nil, err
	}

	email := resp.Email
	if email == "" {
		email = creds.Email
	}
	m.openChallenge(email, models.OTPPurposeSignup)

	logger.Info("sign-up accepted, OTP challenge opened", logger.String("email", email))
	return resp, nil
}

// VerifyOTP resolves the live challenge for the given purpose. A signup
// verification adopts the returned user and token exactly like a login; a
// password-reset verification only acknowledges and never touches session
// state. Failed codes keep the challenge open until the attempt cap.
func (m *Manager) VerifyOTP(ctx context.Context, v *models.OTPVerification) (*models.MessageResponse, error) {
	op := apierrors.OpVerifySignupOTP
	if v.Purpose == models.OTPPurposePasswordReset {
		op = apierrors.OpVerifyPassResetOTP
	}

	if err := validateEmail(op, v.Email); err != nil {
		return nil, err
	}
	if err := validateOTPCode(op, v.Code); err != nil {
		return nil, err
	}
	if _, err := m.liveChallenge(op, v); err != nil {
		return nil, err
	}

	if err := m.beginOp(); err != nil {
		return nil, err
	}
	defer m.endOp()

	switch v.Purpose {
	case models.OTPPurposeSignup:
		return m.verifySignup(ctx, v)
	case models.OTPPurposePasswordReset:
		return m.verifyPassReset(ctx, v)
	default:
		return nil, apierrors.New(apierrors.KindInvariant, op, "unknown OTP purpose")
	}
}

func (m *Manager) verifySignup(ctx context.Context, v *models.OTPVerification) (*models.MessageResponse, error) {
	resp, err := m.gateway.VerifySignupOTP(ctx, &models.VerifyOTPRequest{
		Email: v.Email,
		Code:  v.Code,
	})
	if err != nil {
		return nil, m.verificationFailure(apierrors.OpVerifySignupOTP, v.Purpose, err)
	}

	if err := m.adoptSession(ctx, apierrors.OpVerifySignupOTP, resp.User, resp.Token); err != nil {
		return nil, err
	}
	m.resolveChallenge(v.Purpose)

	logger.Info("signup OTP verified", logger.String("email", v.Email))
	return &models.MessageResponse{Message: "Email verified. You are now signed in."}, nil
}

func (m *Manager) verifyPassReset(ctx context.Context, v *models.OTPVerification) (*models.MessageResponse, error) {
	resp, err := m.gateway.VerifyPassResetOTP(ctx, &models.VerifyOTPRequest{
		Email: v.Email,
		Code:  v.Code,
	})
	if err != nil {
		return nil, m.verificationFailure(apierrors.OpVerifyPassResetOTP, v.Purpose, err)
	}

	m.resolveChallenge(v.Purpose)

	logger.Info("password reset OTP verified", logger.String("email", v.Email))
	return resp, nil
}

// verificationFailure books a failed attempt when the server rejected the
// code. Network failures do not count against the cap; hitting the cap
// replaces the server's error with the abandonment message.
func (m *Manager) verificationFailure(op string, purpose models.OTPPurpose, err error) error {
	if !apierrors.IsKind(err, apierrors.KindServerRejection) {
		return err
	}
	if capErr := m.recordFailedAttempt(op, purpose); capErr != nil {
		return capErr
	}
	return err
}
