package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
)

const storeOp = "session_store"

// FileStore keeps the session token in a single file. Writes go through a
// temp file plus rename so a partial write is never observable. A missing
// file is the normal "no session" case, not a failure.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed token store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the stored token, or empty string when none is stored.
func (s *FileStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to read token file: %w", err))
	}

	return strings.TrimSpace(string(data)), nil
}

// Set durably replaces the stored token.
func (s *FileStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to create store directory: %w", err))
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to create temp file: %w", err))
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to set token file mode: %w", err))
	}

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to write token file: %w", err))
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to close token file: %w", err))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to commit token file: %w", err))
	}

	return nil
}

// Clear removes the stored token. Clearing an empty store is a no-op.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return apierrors.Wrap(apierrors.KindStorage, storeOp, "",
			fmt.Errorf("failed to remove token file: %w", err))
	}
	return nil
}
