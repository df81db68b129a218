package gateway_http

import (
	"time"

	httpclient "github.com/kuppi-app/kuppi-go/internal/pkg/http"
)

// AuthClient is the HTTP client for the Kuppi auth API.
type AuthClient struct {
	client *httpclient.Client
}

// NewAuthClient creates a new auth API client bound to baseURL.
func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		client: httpclient.NewClient(baseURL, timeout),
	}
}
