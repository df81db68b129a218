package usecase

import (
	"context"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// Start hydrates the session from the token store. It runs once per
// process: a stored token is validated against the server and adopted on
// success; on any failure the token is cleared and the session lands in
// Unauthenticated. A token that cannot be verified is treated as invalid.
// Loading is cleared no matter which branch runs.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return apierrors.New(apierrors.KindInvariant, apierrors.OpHydrate,
			"session manager already started")
	}
	m.started = true
	m.mu.Unlock()

	if err := m.beginOp(); err != nil {
		return err
	}
	defer m.endOp()

	defer m.clearLoading()

	token, err := m.store.Get(ctx)
	if err != nil {
		logger.Warn("failed to read stored session", logger.Err(err))
		m.commit(models.AuthState{Status: models.StatusUnauthenticated})
		return err
	}

	if token == "" {
		m.commit(models.AuthState{Status: models.StatusUnauthenticated})
		return nil
	}

	resp, err := m.gateway.ValidateToken(ctx, token)
	if err != nil {
		logger.Info("stored session rejected, clearing token",
			logger.String("kind", apierrors.KindOf(err).String()),
			logger.Err(err))
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			logger.Warn("failed to clear rejected token", logger.Err(clearErr))
		}
		m.commit(models.AuthState{Status: models.StatusUnauthenticated})
		return nil
	}

	m.commit(models.AuthState{
		Status:  models.StatusAuthenticated,
		User:    resp.User,
		Session: &models.Session{Token: token},
	})
	logger.Info("session restored", logger.String("email", resp.User.Email))
	return nil
}

// clearLoading drops the Loading flag without touching anything else.
func (m *Manager) clearLoading() {
	m.mu.Lock()
	if !m.state.Loading {
		m.mu.Unlock()
		return
	}
	m.state.Loading = false
	snap := cloneState(m.state)
	m.mu.Unlock()
	m.notify(snap)
}
