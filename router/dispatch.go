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

package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Dispatcher invokes the handler a resource exposes for the request verb and
// normalizes the return value into a Response.
//
// Normalization rules, checked in order:
//  1. A *Response passes through unchanged.
//  2. Any other non-error return value is serialized as JSON with status 200.
//  3. A NotFoundError becomes a 404 with the message as body; a BadRequestError
//     becomes a 400.
//  4. Any other error is returned to the caller's own error boundary.
//
// A resource that lacks the requested verb yields a 405 response carrying an
// Allow header with the resource's capability set.
type Dispatcher struct {
	logger *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithDispatchLogger sets the structured logger for dispatch-time conditions.
func WithDispatchLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{logger: noopLogger}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch resolves the request verb against the resource's capability set,
// invokes the handler, and normalizes its return value. Dispatch has no side
// effects beyond invoking the handler.
func (d *Dispatcher) Dispatch(res Resource, req *Request) (*Response, error) {
	handler, ok := res.Handler(req.Method)
	if !ok {
		d.logger.Debug("verb not in capability set",
			"method", req.Method, "path", req.Path, "allow", res.Methods())
		return methodNotAllowed(res), nil
	}

	out, err := handler(req)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return Text(http.StatusNotFound, notFound.Message), nil
		}
		var badRequest *BadRequestError
		if errors.As(err, &badRequest) {
			return Text(http.StatusBadRequest, badRequest.Message), nil
		}
		// Unrecognized handler fault: not ours to swallow.
		return nil, err
	}

	switch v := out.(type) {
	case *Response:
		return v, nil
	case nil:
		return NewResponse(http.StatusOK, "", nil), nil
	default:
		body, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("serialize handler result for %s %s: %w", req.Method, req.Path, err)
		}
		return NewResponse(http.StatusOK, ContentTypeJSON, body), nil
	}
}

// methodNotAllowed builds the 405 response for a verb outside the capability
// set, advertising the supported verbs.
func methodNotAllowed(res Resource) *Response {
	resp := Text(http.StatusMethodNotAllowed, ErrMethodNotSupported.Error())
	resp.Header = http.Header{"Allow": []string{strings.Join(res.Methods(), ", ")}}
	return resp
}
