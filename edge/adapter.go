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
	"errors"
	"log/slog"
	"net/http"
	"time"

	"anvil.dev/internalhttp/router"
)

// RouterListenerOption configures a RouterListener.
type RouterListenerOption func(*RouterListener)

// WithRouterLogger sets the structured logger for adapter events.
func WithRouterLogger(logger *slog.Logger) RouterListenerOption {
	return func(l *RouterListener) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRecorder sets the observability recorder for dispatch outcomes.
func WithRecorder(rec Recorder) RouterListenerOption {
	return func(l *RouterListener) {
		if rec != nil {
			l.recorder = rec
		}
	}
}

// RouterListener adapts the internal resource router to the edge chain.
//
// Verdict policy:
//   - route hit: dispatch, write the response, Handled
//   - route miss inside the reserved namespace: Rejected(404) — the namespace
//     is owned exclusively, later stages must never claim it
//   - route miss outside the namespace: NotMine
//
// Recognized dispatch conditions (405, handler 404/400) are written as
// responses and count as Handled: the route matched, so the request is ours.
// Unrecognized handler faults are returned to the chain's error boundary.
type RouterListener struct {
	router     *router.Router
	dispatcher *router.Dispatcher
	logger     *slog.Logger
	recorder   Recorder
}

// NewRouterListener creates the adapter for a configured router. The router
// should be frozen before the listener starts serving.
func NewRouterListener(rt *router.Router, opts ...RouterListenerOption) *RouterListener {
	l := &RouterListener{
		router:   rt,
		logger:   noopLogger,
		recorder: NoopRecorder(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.dispatcher = router.NewDispatcher(router.WithDispatchLogger(l.logger))
	return l
}

// Handle implements Listener.
func (l *RouterListener) Handle(w http.ResponseWriter, r *http.Request) (Verdict, error) {
	match, err := l.router.Lookup(r.Method, r.URL.Path)
	if err != nil {
		if !errors.Is(err, router.ErrRouteNotFound) {
			return Verdict{}, err
		}
		if l.router.Owns(r.URL.Path) {
			l.logger.Warn("no handler for internal path", "method", r.Method, "path", r.URL.Path)
			l.recorder.RecordMiss(r.Context(), r.Method, true)
			return Rejected(http.StatusNotFound), nil
		}
		l.recorder.RecordMiss(r.Context(), r.Method, false)
		return NotMine(), nil
	}

	req := router.NewRequest(r, match.Params)
	start := time.Now()
	resp, err := l.dispatcher.Dispatch(match.Resource, req)
	if err != nil {
		return Verdict{}, err
	}

	l.recorder.RecordDispatch(r.Context(), r.Method, match.Pattern, resp.StatusOrDefault(), time.Since(start))
	if err := resp.Write(w); err != nil {
		l.logger.Error("failed to write response", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	return Handled(), nil
}
