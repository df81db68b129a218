package gateway_http

import (
	"context"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// SignUp registers a new account. The server answers with an
// acknowledgement and mails a signup OTP; no token is issued yet.
func (c *AuthClient) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	var resp models.SignUpResponse
	if err := c.client.PostJSON(ctx, apierrors.OpSignUp, "/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifySignupOTP completes registration. Success carries the new user and
// a fresh bearer token.
func (c *AuthClient) VerifySignupOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.client.PostJSON(ctx, apierrors.OpVerifySignupOTP, "/verify-signup-otp", req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.Token == "" {
		return nil, apierrors.New(apierrors.KindInvariant, apierrors.OpVerifySignupOTP,
			"incomplete verification response")
	}
	return &resp, nil
}

// Login exchanges credentials for the user and a bearer token.
func (c *AuthClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.client.PostJSON(ctx, apierrors.OpLogin, "/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil || resp.Token == "" {
		return nil, apierrors.New(apierrors.KindInvariant, apierrors.OpLogin,
			"incomplete login response")
	}
	return &resp, nil
}

// ValidateToken checks a stored bearer token. A rejection means the caller
// must discard the token.
func (c *AuthClient) ValidateToken(ctx context.Context, token string) (*models.ValidateTokenResponse, error) {
	var resp models.ValidateTokenResponse
	if err := c.client.PostJSONWithToken(ctx, apierrors.OpValidateToken, "/validate-token", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, apierrors.New(apierrors.KindInvariant, apierrors.OpValidateToken,
			"validation response carried no user")
	}
	return &resp, nil
}

// RequestPasswordReset asks the server to mail a reset OTP. No token is
// issued at any point in the reset flow.
func (c *AuthClient) RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.client.PostJSON(ctx, apierrors.OpRequestPasswordReset, "/request-pass-reset", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPassResetOTP proves email control for a pending reset. Success is
// an acknowledgement only.
func (c *AuthClient) VerifyPassResetOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.client.PostJSON(ctx, apierrors.OpVerifyPassResetOTP, "/verify-pass-reset-otp", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword commits a new password. The server rejects the call when
// the OTP step was skipped.
func (c *AuthClient) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.client.PostJSON(ctx, apierrors.OpResetPassword, "/reset-password", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
