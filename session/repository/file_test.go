package repository

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
)

func TestFileStore_AbsentIsNotAnError(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session"))

	token, err := store.Get(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "session"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok-abc"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "old"))
	require.NoError(t, store.Set(ctx, "new"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok"))
	require.NoError(t, store.Clear(ctx))
	// Clearing an already-empty store succeeds too.
	require.NoError(t, store.Clear(ctx))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_TokenFileIsPrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "session")
	store := NewFileStore(path)
	require.NoError(t, store.Set(context.Background(), "tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ReadFailureIsStorageError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores permission bits")
	}

	path := filepath.Join(t.TempDir(), "session")
	require.NoError(t, os.WriteFile(path, []byte("tok"), 0o000))

	store := NewFileStore(path)
	_, err := store.Get(context.Background())

	require.Error(t, err)
	assert.Equal(t, apierrors.KindStorage, apierrors.KindOf(err))
}
