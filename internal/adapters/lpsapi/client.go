package lpsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"lps-admin/internal/core/domain"
	"lps-admin/internal/pkg/logger"
)

var (
	// ErrUnauthorized is returned for a 401 on an authenticated call.
	// The session has already been handed to the UnauthorizedHandler.
	ErrUnauthorized = errors.New("lps api: unauthorized")

	// ErrNetwork is returned when no response reached the client
	ErrNetwork = errors.New("lps api: network failure")

	// ErrInvalidResponse is returned when a success body is not usable JSON
	ErrInvalidResponse = errors.New("lps api: invalid response")
)

// APIError is a non-2xx response carrying the backend's message
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lps api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("lps api: status %d", e.StatusCode)
}

// NotFound reports a 404
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// UnauthorizedHandler is called for every 401 on an authenticated call
type UnauthorizedHandler func(ctx context.Context, sess *domain.Session)

// Options configures a Client
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	HTTPClient   *http.Client
}

// Client talks to the LPS backend. Every authenticated call takes the
// session explicitly; the client keeps no per-user state.
type Client struct {
	baseURL    string
	http       *http.Client
	maxRetries int
	backoff    time.Duration

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHandler
}

// New creates a new LPS API client
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		http:       httpClient,
		maxRetries: opts.MaxRetries,
		backoff:    opts.RetryBackoff,
	}
}

// SetUnauthorizedHandler installs the global 401 policy
func (c *Client) SetUnauthorizedHandler(h UnauthorizedHandler) {
	c.mu.Lock()
	c.onUnauthorized = h
	c.mu.Unlock()
}

// BaseURL returns the configured origin
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request and returns the raw JSON body of a 2xx response.
// GET is retried on network errors and 502/503/504; other methods never are.
func (c *Client) do(ctx context.Context, sess *domain.Session, method, path string, body interface{}) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	attempts := 1
	if method == http.MethodGet {
		attempts += c.maxRetries
	}

	var (
		status  int
		raw     []byte
		lastErr error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := c.wait(ctx, attempt); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
			}
		}

		status, raw, lastErr = c.roundTrip(ctx, sess, method, path, payload)
		if lastErr != nil {
			continue
		}
		if retryableStatus(status) && attempt < attempts {
			continue
		}
		break
	}
	if lastErr != nil {
		return nil, lastErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	switch {
	case status == http.StatusUnauthorized && sess != nil:
		c.unauthorized(ctx, sess)
		if msg := messageOf(raw); msg != "" {
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return nil, ErrUnauthorized
	case status < 200 || status > 299:
		return nil, &APIError{StatusCode: status, Message: messageOf(raw), Body: raw}
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrInvalidResponse)
	}
	return raw, nil
}

func (c *Client) roundTrip(ctx context.Context, sess *domain.Session, method, path string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithFields(logrus.Fields{"method": method, "path": path}).Warnf("⚠️ LPS API unreachable: %v", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}

	logger.WithFields(logrus.Fields{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	}).Debug("LPS API call")

	return resp.StatusCode, raw, nil
}

func (c *Client) wait(ctx context.Context, attempt int) error {
	delay := c.backoff * time.Duration(attempt-1)
	if delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) unauthorized(ctx context.Context, sess *domain.Session) {
	c.mu.RLock()
	h := c.onUnauthorized
	c.mu.RUnlock()
	if h != nil {
		h(ctx, sess)
	}
}

func retryableStatus(status int) bool {
	return status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}

// messageOf extracts "message" (or a string "error") from a JSON body
func messageOf(raw []byte) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	var s string
	if len(body.Error) > 0 && json.Unmarshal(body.Error, &s) == nil {
		return s
	}
	return ""
}
