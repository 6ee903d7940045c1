// Package authsvc checks staff sessions against the external auth service.
package authsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/complaints-backend/internal/config"
	"github.com/heartmarshall/complaints-backend/pkg/ctxutil"
)

const (
	sessionPath         = "/api/auth/session/"
	correlationIDHeader = "X-Correlation-Id"
	maxBodyBytes        = 64 << 10
)

// Client asks the auth service whether a user currently has an active session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from AuthConfig.
func NewClient(cfg config.AuthConfig, logger *slog.Logger) *Client {
	return NewClientWithURL(cfg.ServiceURL, cfg.Timeout, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "authsvc"),
	}
}

type sessionResponse struct {
	IsActive bool `json:"isActive"`
}

// IsSessionActive reports whether username has an active session.
// 401 and 404 mean "not active"; any other non-200 status or a transport
// failure is returned as an error.
func (c *Client) IsSessionActive(ctx context.Context, username string) (bool, error) {
	reqURL := c.baseURL + sessionPath + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("authsvc: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id := ctxutil.CorrelationIDFromCtx(ctx); id != "" {
		req.Header.Set(correlationIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("authsvc: request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "authsvc response",
		slog.String("username", username),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("authsvc: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, fmt.Errorf("authsvc: read body: %w", err)
	}

	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return false, fmt.Errorf("authsvc: decode json: %w", err)
	}

	return session.IsActive, nil
}
