// Package socketio resolves external types through a remote service over
// socket.io.
//
// Every request is emitted as a "resolve_type" event carrying
// {id, kind, type}. The service answers with a "type_resolved" event carrying
// {id, descriptor} or {id, error}. Requests share one connection and are
// matched to replies by id, so any number may be outstanding at once.
package socketio

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/typecodec/internal/ctxlog"
	"github.com/vk/typecodec/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

const (
	defaultTimeout = 10 * time.Second
	connectTimeout = 15 * time.Second
)

// Dial connects to the resolver service at opts.URL and waits for the
// connection to be established.
func Dial(ctx context.Context, opts registry.Options) (*Resolver, error) {
	logger := ctxlog.FromContext(ctx).With("resolver", "socketio", "url", opts.URL)
	logger.Info("Connecting to type resolver service...")

	if opts.URL == "" {
		return nil, fmt.Errorf("socket.io resolver requires a URL")
	}
	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	sopts := socket.DefaultOptions()
	sopts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sopts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sopts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sopts)
	io := manager.Socket(opts.Namespace, sopts)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	r := newResolver(
		func(payload map[string]any) { io.Emit(EventResolve, payload) },
		func() { io.Disconnect() },
		timeout,
		logger,
	)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		logger.Debug("EVENT HANDLER: 'connect_error' event fired", "error", err)
		connectChan <- err
	})
	io.On(types.EventName(EventResolved), func(args ...any) {
		r.dispatch(args...)
	})
	io.On(types.EventName("disconnect"), func(args ...any) {
		logger.Debug("EVENT HANDLER: 'disconnect' event fired", "reason", args)
		r.failAll(ErrDisconnected)
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return r, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(connectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}
}

// Register registers the resolver with the application.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterResolver("socketio", &registry.RegisteredResolver{
		Description: "asks a remote service over socket.io",
		New: func(ctx context.Context, opts registry.Options) (registry.Resolver, error) {
			return Dial(ctx, opts)
		},
	})
}
