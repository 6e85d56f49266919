package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/SscSPs/lifedash/internal/core/ports"
)

// fetchInto loads path into c through normalize. A result that arrives after a
// newer fetch was started is dropped.
func fetchInto[T any](ctx context.Context, base *BaseService, gw ports.Gateway, c *Collection[T], path string, normalize func(json.RawMessage) []T) error {
	token := c.begin()
	data, err := gw.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		if c.fail(token, err) {
			base.LogError(ctx, err, "Fetch failed", slog.String("path", path))
		}
		return err
	}
	if !c.apply(token, normalize(data)) {
		base.LogDebug(ctx, "Discarded stale fetch result", slog.String("path", path))
	}
	return nil
}

// write validates req, sends it and records a failure on c. Nothing is
// patched locally; callers refetch on success.
func write[T any](ctx context.Context, base *BaseService, gw ports.Gateway, c *Collection[T], validate func(any) error, method, path string, req any) error {
	c.clearError()
	if req != nil && validate != nil {
		if err := validate(req); err != nil {
			c.recordError(err)
			return err
		}
	}
	if _, err := gw.Do(ctx, method, path, req); err != nil {
		base.LogError(ctx, err, "Write failed", slog.String("method", method), slog.String("path", path))
		c.recordError(err)
		return err
	}
	return nil
}

// firstErr returns the first non-nil error. Refetches are all attempted
// before it is called.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
