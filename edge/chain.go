// Copyright 2026 The Anvil Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package edge

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation ID through the chain.
const RequestIDHeader = "X-Request-ID"

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Listener is one stage of the edge pipeline. The error return is the escape
// hatch for faults the listener does not own; the Chain routes them to its
// error handler and stops the request.
type Listener interface {
	Handle(w http.ResponseWriter, r *http.Request) (Verdict, error)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(w http.ResponseWriter, r *http.Request) (Verdict, error)

// Handle implements Listener.
func (f ListenerFunc) Handle(w http.ResponseWriter, r *http.Request) (Verdict, error) {
	return f(w, r)
}

// ErrorHandler is the chain's top-level error boundary for listener faults.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithFallback sets the handler invoked when every listener answers NotMine.
// Defaults to a plain 404.
func WithFallback(h http.Handler) ChainOption {
	return func(c *Chain) {
		if h != nil {
			c.fallback = h
		}
	}
}

// WithErrorHandler sets the chain's error boundary. The default logs the fault
// and writes a JSON 500.
func WithErrorHandler(h ErrorHandler) ChainOption {
	return func(c *Chain) {
		if h != nil {
			c.onError = h
		}
	}
}

// WithLogger sets the structured logger for chain-level events.
func WithLogger(logger *slog.Logger) ChainOption {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Chain is an ordered sequence of listeners sharing one inbound request
// stream. Listeners are tried in registration order; Handled and Rejected
// verdicts terminate the walk, NotMine falls through. A request no listener
// claims goes to the fallback handler.
//
// Thread safety: listeners are appended during setup, before the chain
// serves; ServeHTTP only reads the slice and is safe for concurrent use.
type Chain struct {
	listeners []Listener
	fallback  http.Handler
	onError   ErrorHandler
	logger    *slog.Logger
}

// NewChain creates a Chain with the given options.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{
		fallback: http.NotFoundHandler(),
		logger:   noopLogger,
	}
	c.onError = c.defaultErrorHandler
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append adds listeners to the end of the chain. Must be called during setup,
// before the chain starts serving.
func (c *Chain) Append(listeners ...Listener) *Chain {
	c.listeners = append(c.listeners, listeners...)
	return c
}

// ServeHTTP walks the chain for one request. Each request is tagged with an
// X-Request-ID when the caller did not supply one, so chain log lines and the
// response correlate.
func (c *Chain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		r.Header.Set(RequestIDHeader, requestID)
	}
	w.Header().Set(RequestIDHeader, requestID)

	for _, l := range c.listeners {
		verdict, err := l.Handle(w, r)
		if err != nil {
			c.onError(w, r, err)
			return
		}

		switch verdict.Kind {
		case KindHandled:
			return
		case KindRejected:
			c.logger.Debug("request rejected by listener",
				"method", r.Method, "path", r.URL.Path,
				"status", verdict.Status, "request_id", requestID)
			writeStatus(w, verdict.Status)
			return
		case KindNotMine:
			// Try the next listener.
		}
	}

	c.fallback.ServeHTTP(w, r)
}

// defaultErrorHandler logs the fault and answers with a JSON 500.
func (c *Chain) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	c.logger.Error("listener fault",
		"method", r.Method, "path", r.URL.Path,
		"request_id", r.Header.Get(RequestIDHeader), "err", err)
	writeStatus(w, http.StatusInternalServerError)
}

// writeStatus writes a minimal JSON error body for a terminal status.
func writeStatus(w http.ResponseWriter, status int) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"status":%d,"message":%q}`, status, http.StatusText(status))
}
