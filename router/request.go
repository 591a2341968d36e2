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
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// Params holds the named path parameters bound during route resolution.
type Params map[string]string

// Get returns the value bound to the named parameter, or "".
func (p Params) Get(name string) string {
	return p[name]
}

// Request is the view of an inbound HTTP request handed to resource handlers:
// the method and path, the bound path parameters, and accessors for query
// values and the JSON body.
type Request struct {
	Method string
	Path   string
	Params Params

	raw *http.Request
}

// NewRequest wraps an *http.Request with the parameters bound by Resolve.
func NewRequest(r *http.Request, params Params) *Request {
	if params == nil {
		params = Params{}
	}
	return &Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Params: params,
		raw:    r,
	}
}

// Query returns the first query value for key, or "".
func (r *Request) Query(key string) string {
	if r.raw == nil {
		return ""
	}
	return r.raw.URL.Query().Get(key)
}

// DecodeJSON decodes the request body into v. A malformed body yields a
// BadRequestError; an empty body leaves v untouched and returns nil.
func (r *Request) DecodeJSON(v any) error {
	if r.raw == nil || r.raw.Body == nil {
		return nil
	}
	body, err := io.ReadAll(r.raw.Body)
	if err != nil {
		return NewBadRequestError("unable to read request body: %v", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return NewBadRequestError("invalid JSON body: %v", err)
	}
	return nil
}

// HTTP returns the underlying *http.Request for handlers that need direct
// access to headers or the request context.
func (r *Request) HTTP() *http.Request {
	return r.raw
}

// Context returns the underlying request context. Synthetic requests without a
// backing *http.Request get context.Background.
func (r *Request) Context() context.Context {
	if r.raw == nil {
		return context.Background()
	}
	return r.raw.Context()
}
