// Package http is the JSON client used for every auth API call. It owns
// request timeouts and normalizes transport and HTTP-status failures into
// the apierrors taxonomy so no raw transport error crosses its boundary.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

const (
	// DefaultTimeout bounds every request when no timeout is configured.
	DefaultTimeout = 10 * time.Second
)

// Client is a JSON HTTP client bound to one base URL.
type Client struct {
	client  *nethttp.Client
	baseURL string
}

// NewClient creates a new client with a bounded per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client: &nethttp.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// PostJSON performs a POST request and decodes the JSON response into result.
// op tags any resulting error with the calling operation.
func (c *Client) PostJSON(ctx context.Context, op, endpoint string, body, result interface{}) error {
	return c.do(ctx, op, endpoint, "", body, result)
}

// PostJSONWithToken performs a POST request carrying a bearer token.
func (c *Client) PostJSONWithToken(ctx context.Context, op, endpoint, token string, body, result interface{}) error {
	return c.do(ctx, op, endpoint, token, body, result)
}

func (c *Client) do(ctx context.Context, op, endpoint, token string, body, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return apierrors.Wrap(apierrors.KindValidation, op, "", fmt.Errorf("failed to marshal request body: %w", err))
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, url, reqBody)
	if err != nil {
		return apierrors.Wrap(apierrors.KindValidation, op, "", fmt.Errorf("failed to create request: %w", err))
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("auth API request",
		logger.String("op", op),
		logger.String("endpoint", endpoint),
		logger.String("request_id", requestID))

	resp, err := c.client.Do(req)
	if err != nil {
		// Timeouts and unreachable hosts are one taxonomy member.
		logger.Warn("auth API request failed",
			logger.String("op", op),
			logger.String("endpoint", endpoint),
			logger.String("request_id", requestID),
			logger.Err(err))
		return apierrors.Wrap(apierrors.KindNetwork, op, "", err)
	}
	defer resp.Body.Close()

	logger.Debug("auth API response",
		logger.String("op", op),
		logger.String("endpoint", endpoint),
		logger.String("request_id", requestID),
		logger.Int("status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejectionError(op, resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return apierrors.Wrap(apierrors.KindNetwork, op, "", fmt.Errorf("failed to decode response: %w", err))
		}
	}

	return nil
}

// rejectionError maps a non-2xx response to a ServerRejection carrying the
// server-supplied message, or the operation's fallback string when the body
// is unusable.
func (c *Client) rejectionError(op string, resp *nethttp.Response) error {
	message := ""

	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
		message = errResp.Error
	}

	return apierrors.Wrap(apierrors.KindServerRejection, op, message,
		fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status))
}
