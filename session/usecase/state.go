package usecase

import (
	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// ErrOperationInFlight rejects a mutating call while another one is still
// running. The state machine has exactly one writer slot.
var ErrOperationInFlight = apierrors.New(apierrors.KindValidation, "session",
	"Another operation is in progress. Please wait.")

// beginOp claims the single operation slot without blocking.
func (m *Manager) beginOp() error {
	if !m.opMu.TryLock() {
		return ErrOperationInFlight
	}
	return nil
}

// endOp releases the operation slot.
func (m *Manager) endOp() {
	m.opMu.Unlock()
}

// State returns an immutable snapshot of the session state.
func (m *Manager) State() models.AuthState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneState(m.state)
}

// IsAuthenticated reports whether a complete session is held.
func (m *Manager) IsAuthenticated() bool {
	return m.State().IsAuthenticated()
}

// OnChange registers an observer invoked synchronously after every
// committed transition. The returned func cancels the registration.
func (m *Manager) OnChange(fn func(models.AuthState)) func() {
	m.obsMu.Lock()
	id := m.nextObsID
	m.nextObsID++
	m.observers[id] = fn
	m.obsMu.Unlock()

	return func() {
		m.obsMu.Lock()
		delete(m.observers, id)
		m.obsMu.Unlock()
	}
}

// commit replaces the state and notifies observers. The snapshot handed to
// observers is detached from manager-owned memory.
func (m *Manager) commit(next models.AuthState) {
	authenticated := next.Status == models.StatusAuthenticated
	complete := next.User != nil && next.Session != nil
	if authenticated != complete {
		// Programming error; never reaches a user.
		logger.Error("session state invariant violated",
			logger.String("status", string(next.Status)),
			logger.Bool("has_user", next.User != nil),
			logger.Bool("has_token", next.Session != nil))
		return
	}

	m.mu.Lock()
	m.state = next
	snap := cloneState(next)
	m.mu.Unlock()

	m.notify(snap)
}

func (m *Manager) notify(snap models.AuthState) {
	m.obsMu.Lock()
	fns := make([]func(models.AuthState), 0, len(m.observers))
	for _, fn := range m.observers {
		fns = append(fns, fn)
	}
	m.obsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func cloneState(s models.AuthState) models.AuthState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	if s.Session != nil {
		t := *s.Session
		s.Session = &t
	}
	return s
}
