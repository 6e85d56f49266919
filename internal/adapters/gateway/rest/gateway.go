package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/lifedash/internal/apperrors"
	"github.com/SscSPs/lifedash/internal/core/ports"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/middleware"
	"github.com/google/uuid"
)

// Gateway is the HTTP implementation of ports.Gateway.
type Gateway struct {
	baseURL     string
	client      *http.Client
	credentials ports.CredentialSource
	navigator   ports.Navigator
}

var _ ports.Gateway = (*Gateway)(nil)

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		c := *g.client
		c.Timeout = d
		g.client = &c
	}
}

// WithNavigator enables the redirect to the login page on 401 responses.
func WithNavigator(n ports.Navigator) Option {
	return func(g *Gateway) { g.navigator = n }
}

// NewGateway creates a gateway rooted at baseURL (for example http://localhost:3000/api).
// credentials may be nil for anonymous use.
func NewGateway(baseURL string, credentials ports.CredentialSource, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      &http.Client{},
		credentials: credentials,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Do sends one request and unwraps the response envelope.
func (g *Gateway) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	requestID := uuid.NewString()
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
	)

	req, err := g.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, apperrors.NewNetworkError(err)
	}
	req.Header.Set(middleware.RequestIDHeader, requestID)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		logger.Warn("Request failed", slog.String("error", err.Error()))
		return nil, apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("Failed to read response body", slog.String("error", err.Error()))
		return nil, apperrors.NewNetworkError(err)
	}
	logger.Debug("Request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	var env dto.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		g.handleUnauthorized(ctx, logger)
		return nil, apperrors.NewGatewayError(resp.StatusCode, env.ServerMessage())
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewGatewayError(resp.StatusCode, env.ServerMessage())
	}
	if decodeErr != nil {
		return nil, apperrors.NewNetworkError(fmt.Errorf("decode response envelope: %w", decodeErr))
	}
	if !env.Success {
		return nil, apperrors.NewGatewayError(resp.StatusCode, env.ServerMessage())
	}
	if len(env.Data) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Data, nil
}

func (g *Gateway) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.credentials != nil {
		if token := g.credentials.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// handleUnauthorized drops the stored credential and leaves protected pages.
func (g *Gateway) handleUnauthorized(ctx context.Context, logger *slog.Logger) {
	logger.Warn("Credential rejected by server")
	if g.credentials != nil {
		if err := g.credentials.Invalidate(ctx); err != nil {
			logger.Error("Failed to clear session", slog.String("error", err.Error()))
		}
	}
	if g.navigator != nil && g.navigator.CurrentPath() != middleware.LoginPath {
		g.navigator.Redirect(middleware.LoginPath)
	}
}
