// Package api is the HTTP/JSON client for the external commerce and IoT
// backend. One Client carries the shared transport state (base URL, bounded
// timeout, bearer token, global 401 watch); the per-concern API types in this
// package issue the actual requests through it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"mycomart/config"
	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"

	"github.com/pkg/errors"
)

// Client is the shared backend transport. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.RWMutex
	token  string
	subs   map[int]func()
	nextID int
}

// NewClient builds the backend client. The request timeout is mandatory; the
// browser storefront this engine replaces could hang forever on a dead
// backend.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		logger: logger,
		subs:   make(map[int]func()),
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the default bearer token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// OnUnauthorized registers a callback fired whenever any backend response
// comes back 401. Callbacks run on their own goroutine, never on the one
// issuing the request. Returns an unsubscribe function; call it on shutdown
// only.
func (c *Client) OnUnauthorized(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Client) notifyUnauthorized() {
	c.mu.RLock()
	callbacks := make([]func(), 0, len(c.subs))
	for _, fn := range c.subs {
		callbacks = append(callbacks, fn)
	}
	c.mu.RUnlock()

	// Subscribers may take locks held by the code path that issued the
	// failing request, so delivery happens off the request goroutine.
	go func() {
		for _, fn := range callbacks {
			fn()
		}
	}()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// backendRejection is the error envelope the backend uses for 4xx/5xx answers.
// Field names vary across endpoints, so every known spelling is accepted.
type backendRejection struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func (r backendRejection) text() string {
	switch {
	case r.Message != "":
		return r.Message
	case r.Detail != "":
		return r.Detail
	default:
		return r.Error
	}
}

// doJSON issues one request and decodes the response body into out (when out
// is non-nil). Transport failures map to NetworkError, 401 fires the global
// watch, and other non-2xx answers map to BackendError carrying the backend's
// own message where one was provided.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s %s request", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.NewNetworkError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Info("Backend returned 401, notifying unauthorized watchers",
			slog.String("path", path),
		)
		c.notifyUnauthorized()

		return errors.Wrapf(repository.ErrUnauthorized, "%s %s", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var rejection backendRejection
		// Best effort; a non-JSON error body still maps to a BackendError.
		_ = json.Unmarshal(data, &rejection)

		return domainerrors.NewBackendError(resp.StatusCode, rejection.Code, rejection.text(), string(data))
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "failed to decode %s %s response", method, path)
		}
	}

	return nil
}
