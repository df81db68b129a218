// Package usecase implements the session state machine. It owns the
// in-memory (user, token) pair, orchestrates the auth gateway, and is the
// only writer of the token store.
package usecase

import (
	"sync"
	"time"

	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
	"github.com/kuppi-app/kuppi-go/session"
)

// Manager is the session manager. All mutating operations are serialized:
// a second concurrent network operation is rejected with
// ErrOperationInFlight instead of racing the state machine.
type Manager struct {
	gateway session.AuthGateway
	store   session.TokenStore
	cfg     *models.Config

	// opMu is the single-slot operation guard.
	opMu sync.Mutex

	mu         sync.RWMutex
	state      models.AuthState
	started    bool
	challenges map[models.OTPPurpose]*models.OTPChallenge

	obsMu     sync.Mutex
	observers map[int]func(models.AuthState)
	nextObsID int

	clock func() time.Time
}

var _ session.SessionUC = (*Manager)(nil)

// NewManager creates a session manager with injected dependencies. The
// returned manager is in the Initializing state until Start runs.
func NewManager(
	gateway session.AuthGateway,
	store session.TokenStore,
	cfg *models.Config,
) *Manager {
	return &Manager{
		gateway: gateway,
		store:   store,
		cfg:     cfg,
		state: models.AuthState{
			Status:  models.StatusInitializing,
			Loading: true,
		},
		challenges: make(map[models.OTPPurpose]*models.OTPChallenge),
		observers:  make(map[int]func(models.AuthState)),
		clock:      time.Now,
	}
}
