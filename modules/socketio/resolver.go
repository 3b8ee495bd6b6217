package socketio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vk/typecodec/internal/compiler"
)

// Event names of the resolver protocol.
const (
	EventResolve  = "resolve_type"
	EventResolved = "type_resolved"
)

var (
	// ErrClosed is returned for requests made or pending when the resolver
	// is closed.
	ErrClosed = errors.New("socket.io resolver closed")
	// ErrDisconnected is returned for requests pending when the connection
	// drops.
	ErrDisconnected = errors.New("socket.io resolver disconnected")
)

// RemoteError is an error reported by the resolver service.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "resolver service: " + e.Message
}

type reply struct {
	descriptor string
	err        error
}

// Resolver is a compiler.Resolver backed by a remote service.
type Resolver struct {
	emit       func(payload map[string]any)
	disconnect func()
	timeout    time.Duration
	logger     *slog.Logger

	nextID atomic.Uint64

	mu      sync.Mutex
	pending map[string]chan reply
	closed  bool
}

var _ compiler.Resolver = (*Resolver)(nil)

func newResolver(emit func(map[string]any), disconnect func(), timeout time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		emit:       emit,
		disconnect: disconnect,
		timeout:    timeout,
		logger:     logger,
		pending:    make(map[string]chan reply),
	}
}

// Resolve sends one request and waits for its reply, the per-request
// timeout, or ctx.
func (r *Resolver) Resolve(ctx context.Context, kind compiler.Kind, externalType string) (string, error) {
	id := strconv.FormatUint(r.nextID.Add(1), 10)
	ch := make(chan reply, 1)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", ErrClosed
	}
	r.pending[id] = ch
	r.mu.Unlock()
	defer r.forget(id)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Debug("Emitting resolve request.", "id", id, "kind", kind, "type", externalType)
	r.emit(map[string]any{"id": id, "kind": string(kind), "type": externalType})

	select {
	case rep := <-ch:
		return rep.descriptor, rep.err
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for resolution of %q: %w", externalType, ctx.Err())
	}
}

func (r *Resolver) forget(id string) {
	r.mu.Lock()
	delete(r.pending, id)
	r.mu.Unlock()
}

// dispatch routes a type_resolved event to the request waiting for it.
func (r *Resolver) dispatch(args ...any) {
	if len(args) == 0 {
		r.logger.Warn("Ignoring empty resolver reply.")
		return
	}
	id, rep, err := decodeReply(args[0])
	if err != nil {
		r.logger.Warn("Ignoring malformed resolver reply.", "error", err)
		return
	}

	r.mu.Lock()
	ch, ok := r.pending[id]
	delete(r.pending, id)
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("Ignoring reply for unknown request.", "id", id)
		return
	}
	ch <- rep
}

// failAll completes every pending request with err.
func (r *Resolver) failAll(err error) {
	r.mu.Lock()
	pending := r.pending
	r.pending = make(map[string]chan reply)
	r.mu.Unlock()

	for _, ch := range pending {
		ch <- reply{err: err}
	}
}

// Close disconnects and fails outstanding requests.
func (r *Resolver) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	r.failAll(ErrClosed)
	r.disconnect()
	return nil
}

type wireReply struct {
	ID         string `json:"id"`
	Descriptor string `json:"descriptor"`
	Error      string `json:"error"`
}

// decodeReply accepts the reply as the decoded JSON object socket.io
// delivers, or as raw JSON text.
func decodeReply(arg any) (string, reply, error) {
	var raw []byte
	switch v := arg.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", reply{}, err
		}
		raw = b
	}

	var w wireReply
	if err := json.Unmarshal(raw, &w); err != nil {
		return "", reply{}, err
	}
	if w.ID == "" {
		return "", reply{}, errors.New("reply has no id")
	}
	switch {
	case w.Error != "":
		return w.ID, reply{err: &RemoteError{Message: w.Error}}, nil
	case w.Descriptor == "":
		return w.ID, reply{err: &RemoteError{Message: "empty descriptor"}}, nil
	}
	return w.ID, reply{descriptor: w.Descriptor}, nil
}
