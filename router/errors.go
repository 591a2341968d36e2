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
	"errors"
	"fmt"
)

var (
	// ErrRouteNotFound indicates that no registered route matches the request path.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotSupported indicates that the matched resource does not implement
	// the requested verb.
	ErrMethodNotSupported = errors.New("method not supported")

	// ErrRoutesFrozen indicates a route registration after Freeze.
	ErrRoutesFrozen = errors.New("route table is frozen")

	// ErrDuplicateRoute indicates that a pattern is already registered.
	ErrDuplicateRoute = errors.New("route already registered")

	// ErrNilResource indicates a registration with a nil resource.
	ErrNilResource = errors.New("resource must not be nil")

	// ErrNoHandlers indicates a registration with a resource that implements no verbs.
	ErrNoHandlers = errors.New("resource implements no verb handlers")

	// ErrEmptyPrefix indicates an invalid reserved prefix configuration.
	ErrEmptyPrefix = errors.New("reserved prefix must start with '/'")
)

// NotFoundError is the recognized "not found" condition a handler can return.
// The dispatcher translates it into a 404 response carrying the message as body
// instead of propagating it as a fault.
type NotFoundError struct {
	Message string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a NotFoundError with a formatted message.
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// BadRequestError is the recognized "invalid request" condition a handler can
// return. The dispatcher translates it into a 400 response.
type BadRequestError struct {
	Message string
}

// Error implements the error interface.
func (e *BadRequestError) Error() string {
	return e.Message
}

// NewBadRequestError creates a BadRequestError with a formatted message.
func NewBadRequestError(format string, args ...any) *BadRequestError {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// IsBadRequest reports whether err is or wraps a BadRequestError.
func IsBadRequest(err error) bool {
	var br *BadRequestError
	return errors.As(err, &br)
}
