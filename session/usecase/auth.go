package usecase

import (
	"context"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// Login authenticates with the auth API. On success the user and token are
// adopted together and the token persisted; on any failure the session
// state is exactly what it was before the call.
func (m *Manager) Login(ctx context.Context, creds *models.Credentials) error {
	if err := validateEmail(apierrors.OpLogin, creds.Email); err != nil {
		return err
	}
	// Length rules apply when choosing a password, not when presenting one.
	if creds.Password == "" {
		return apierrors.New(apierrors.KindValidation, apierrors.OpLogin,
			"Enter your password.")
	}

	if err := m.beginOp(); err != nil {
		return err
	}
	defer m.endOp()

	resp, err := m.gateway.Login(ctx, &models.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	if err != nil {
		return err
	}

	if err := m.adoptSession(ctx, apierrors.OpLogin, resp.User, resp.Token); err != nil {
		return err
	}

	logger.Info("login succeeded", logger.String("email", resp.User.Email))
	return nil
}

// Logout ends the session. Clearing the persisted token is best-effort: a
// storage failure is logged and swallowed because the in-memory session is
// authoritative for gating navigation, and the next startup validation
// catches a stale token anyway. Calling Logout twice is safe.
func (m *Manager) Logout(ctx context.Context) {
	// Queue behind any running operation rather than racing it.
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		logger.Warn("failed to clear persisted token on logout", logger.Err(err))
	}

	m.commit(models.AuthState{Status: models.StatusUnauthenticated})
	logger.Info("logged out")
}

// adoptSession persists the token and commits the complete session in one
// step. Persistence failure leaves the state untouched so a half-adopted
// session is never observable.
func (m *Manager) adoptSession(ctx context.Context, op string, user *models.User, token string) error {
	if user == nil || token == "" {
		return apierrors.New(apierrors.KindInvariant, op, "incomplete session material")
	}

	if err := m.store.Set(ctx, token); err != nil {
		return err
	}

	m.commit(models.AuthState{
		Status:  models.StatusAuthenticated,
		User:    user,
		Session: &models.Session{Token: token},
	})
	return nil
}
