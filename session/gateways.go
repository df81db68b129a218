package session

import (
	"context"

	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kuppi-app/kuppi-go/session AuthGateway

// AuthGateway defines the auth API operations, one per endpoint. All
// implementations are stateless; persistence belongs to the session manager.
type AuthGateway interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error)
	VerifySignupOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*models.ValidateTokenResponse, error)
	RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) (*models.MessageResponse, error)
	VerifyPassResetOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.MessageResponse, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) (*models.MessageResponse, error)
}
