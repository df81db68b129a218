package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

func newMockRedisStore(t *testing.T) (*RedisStore, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return &RedisStore{client: db, key: sessionKey("default")}, mock
}

func TestRedisStore_AbsentKeyIsNotAnError(t *testing.T) {
	store, mock := newMockRedisStore(t)

	mock.ExpectGet(store.key).RedisNil()

	token, err := store.Get(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, token)
}

func TestRedisStore_SetGet(t *testing.T) {
	store, mock := newMockRedisStore(t)
	ctx := context.Background()

	mock.ExpectSet(store.key, "tok-abc", 0).SetVal("OK")
	mock.ExpectGet(store.key).SetVal("tok-abc")

	require.NoError(t, store.Set(ctx, "tok-abc"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestRedisStore_Clear(t *testing.T) {
	store, mock := newMockRedisStore(t)

	mock.ExpectDel(store.key).SetVal(1)

	assert.NoError(t, store.Clear(context.Background()))
}

func TestRedisStore_FailuresAreStorageErrors(t *testing.T) {
	store, mock := newMockRedisStore(t)
	ctx := context.Background()

	mock.ExpectGet(store.key).SetErr(errors.New("connection reset"))
	_, err := store.Get(ctx)
	require.Error(t, err)
	assert.Equal(t, apierrors.KindStorage, apierrors.KindOf(err))

	mock.ExpectSet(store.key, "tok", 0).SetErr(errors.New("connection reset"))
	err = store.Set(ctx, "tok")
	require.Error(t, err)
	assert.Equal(t, apierrors.KindStorage, apierrors.KindOf(err))
}

func TestNewRedisStore_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		PoolSize: 10,
	}

	store, err := NewRedisStore(config, "default")

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestSessionKey_ProfileNamespacing(t *testing.T) {
	assert.Equal(t, "kuppi:session:default:token", sessionKey(""))
	assert.Equal(t, "kuppi:session:work:token", sessionKey("work"))
}
