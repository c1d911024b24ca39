// Package socketio provides a socket.io round-trip check: connect,
// optionally emit an event, and wait for a response event.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/vk/specrungo/internal/ctxlog"
	"github.com/vk/specrungo/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the socket.io checks.
func (m *Module) Register(r *registry.Registry) {
	r.Register("socketio.roundtrip", checkRoundtrip)
}

// opResult is a private struct to safely pass results through the done channel.
type opResult struct {
	value any
	err   error
}

// checkRoundtrip connects to `url` (namespace `namespace`), emits
// `emit_event` with `emit_data` once connected, and succeeds when
// `on_event` arrives before `timeout` (default 10s) expires.
func checkRoundtrip(ctx context.Context, args cty.Value) (any, error) {
	rawURL := registry.AttrString(args, "url", "")
	if rawURL == "" {
		return nil, fmt.Errorf("socketio.roundtrip: missing 'url' argument")
	}
	namespace := registry.AttrString(args, "namespace", "/")
	onEvent := registry.AttrString(args, "on_event", "")
	if onEvent == "" {
		return nil, fmt.Errorf("socketio.roundtrip: missing 'on_event' argument")
	}
	emitEvent := registry.AttrString(args, "emit_event", "")

	logger := ctxlog.FromContext(ctx).With("check", "socketio.roundtrip", "url", rawURL, "onEvent", onEvent, "emitEvent", emitEvent)
	logger.Debug("Check started")
	defer logger.Debug("Check finished")

	var isConnected atomic.Bool

	timeout, err := time.ParseDuration(registry.AttrString(args, "timeout", "10s"))
	if err != nil {
		return nil, fmt.Errorf("socketio.roundtrip: invalid timeout: %w", err)
	}

	var emitData any
	if args != cty.NilVal && !args.IsNull() && args.Type().IsObjectType() && args.Type().HasAttribute("emit_data") {
		emitData, err = registry.FromCty(args.GetAttr("emit_data"))
		if err != nil {
			return nil, fmt.Errorf("socketio.roundtrip: invalid emit_data: %w", err)
		}
	}

	done := make(chan opResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if registry.AttrBool(args, "insecure_skip_verify", false) {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Debug("Connected.", "namespace", namespace, "sid", io.Id())
		if emitEvent != "" {
			io.Emit(emitEvent, emitData)
		}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		done <- opResult{err: errs[0].(error)}
	})

	io.On(types.EventName(onEvent), func(data ...any) {
		var responseData any
		if len(data) > 0 {
			responseData = data[0]
		}
		done <- opResult{value: responseData}
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return nil, fmt.Errorf("timed out after connecting while waiting for event '%s'", onEvent)
		}
		return nil, fmt.Errorf("timed out while waiting for initial connection")
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return true, nil
	}
}
