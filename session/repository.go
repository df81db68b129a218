package session

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kuppi-app/kuppi-go/session TokenStore

// TokenStore is durable storage for exactly one secret: the current session
// token. Absence is a normal return (empty string, nil error), never a
// failure. Clear is idempotent.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
