package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
)

type echoBody struct {
	Value string `json:"value"`
}

func TestClient_PostJSON_Success(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body echoBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(echoBody{Value: body.Value + "-ack"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	var result echoBody
	err := client.PostJSON(context.Background(), apierrors.OpLogin, "/echo", &echoBody{Value: "ping"}, &result)

	require.NoError(t, err)
	assert.Equal(t, "ping-ack", result.Value)
}

func TestClient_PostJSONWithToken_SetsBearer(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.PostJSONWithToken(context.Background(), apierrors.OpValidateToken, "/validate-token", "tok-123", nil, nil)
	assert.NoError(t, err)
}

func TestClient_ServerMessagePassedThrough(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.PostJSON(context.Background(), apierrors.OpLogin, "/login", nil, nil)

	require.Error(t, err)
	assert.Equal(t, apierrors.KindServerRejection, apierrors.KindOf(err))
	assert.Equal(t, "Invalid credentials", apierrors.DisplayMessage(err))
}

func TestClient_UnusableErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusInternalServerError)
		w.Write([]byte(`<html>gateway exploded</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.PostJSON(context.Background(), apierrors.OpLogin, "/login", nil, nil)

	require.Error(t, err)
	assert.Equal(t, apierrors.KindServerRejection, apierrors.KindOf(err))
	assert.Equal(t, "Login failed. Please try again.", apierrors.DisplayMessage(err))
}

func TestClient_UnreachableHostIsNetworkError(t *testing.T) {
	// Grab a port nothing listens on.
	server := httptest.NewServer(nethttp.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)

	err := client.PostJSON(context.Background(), apierrors.OpSignUp, "/signup", nil, nil)

	require.Error(t, err)
	assert.Equal(t, apierrors.KindNetwork, apierrors.KindOf(err))
	assert.Equal(t, "Sign-up failed. Please try again.", apierrors.DisplayMessage(err))
}

func TestClient_TimeoutIsNetworkError(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		<-block
	}))
	defer func() {
		close(block)
		server.Close()
	}()

	client := NewClient(server.URL, 50*time.Millisecond)

	err := client.PostJSON(context.Background(), apierrors.OpLogin, "/login", nil, nil)

	require.Error(t, err)
	assert.Equal(t, apierrors.KindNetwork, apierrors.KindOf(err))
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		<-block
	}))
	defer func() {
		close(block)
		server.Close()
	}()

	client := NewClient(server.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := client.PostJSON(ctx, apierrors.OpLogin, "/login", nil, nil)

	require.Error(t, err)
	assert.Equal(t, apierrors.KindNetwork, apierrors.KindOf(err))
}
