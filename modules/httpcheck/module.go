// Package httpcheck provides an HTTP GET check with a shared client so
// repeated checks reuse TCP connections.
package httpcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vk/specrungo/internal/ctxlog"
	"github.com/vk/specrungo/internal/registry"
	"github.com/vk/specrungo/internal/result"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// client is shared by all http.get executions to reuse connections.
var client = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Register registers the HTTP checks.
func (m *Module) Register(r *registry.Registry) {
	r.Register("http.get", checkGet)
}

// checkGet performs a GET against `url` and asserts the response status.
// `expect_status` defaults to 200; `timeout` is a duration string,
// defaulting to 10s.
func checkGet(ctx context.Context, args cty.Value) (any, error) {
	logger := ctxlog.FromContext(ctx)

	url := registry.AttrString(args, "url", "")
	if url == "" {
		return nil, fmt.Errorf("http.get: missing 'url' argument")
	}
	expectStatus := registry.AttrInt(args, "expect_status", http.StatusOK)

	timeout, err := time.ParseDuration(registry.AttrString(args, "timeout", "10s"))
	if err != nil {
		return nil, fmt.Errorf("http.get: invalid timeout: %w", err)
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Debug("Making HTTP request.", "method", http.MethodGet, "url", url)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("Received HTTP response.", "status", resp.Status)
	return result.Expectf(resp.StatusCode == expectStatus,
		"GET %s: expected status %d, got %d", url, expectStatus, resp.StatusCode), nil
}
