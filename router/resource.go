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

import "net/http"

// HandlerFunc is a verb handler on a resource. The return value is normalized
// by the Dispatcher: a *Response passes through unchanged, any other value is
// serialized as JSON with status 200.
type HandlerFunc func(req *Request) (any, error)

// Resource exposes a capability set: the verb handlers an endpoint implements.
// Handler returns the handler for a verb and whether the verb is present;
// Methods lists the present verbs in canonical order.
type Resource interface {
	Handler(method string) (HandlerFunc, bool)
	Methods() []string
}

// Verb interfaces. An endpoint type implements any subset of these; AsResource
// collects the implemented subset into a Resource at registration time.
type (
	// GetHandler handles GET requests.
	GetHandler interface {
		OnGet(req *Request) (any, error)
	}

	// PostHandler handles POST requests.
	PostHandler interface {
		OnPost(req *Request) (any, error)
	}

	// PutHandler handles PUT requests.
	PutHandler interface {
		OnPut(req *Request) (any, error)
	}

	// DeleteHandler handles DELETE requests.
	DeleteHandler interface {
		OnDelete(req *Request) (any, error)
	}

	// HeadHandler handles HEAD requests.
	HeadHandler interface {
		OnHead(req *Request) (any, error)
	}

	// PatchHandler handles PATCH requests.
	PatchHandler interface {
		OnPatch(req *Request) (any, error)
	}

	// OptionsHandler handles OPTIONS requests.
	OptionsHandler interface {
		OnOptions(req *Request) (any, error)
	}
)

// verbOrder is the canonical ordering used by Methods and the Allow header.
var verbOrder = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// capabilitySet is the Resource built by AsResource: an explicit verb→handler
// table assembled once at registration time.
type capabilitySet struct {
	handlers map[string]HandlerFunc
	methods  []string
}

// Handler returns the handler for the given verb, if present.
func (c *capabilitySet) Handler(method string) (HandlerFunc, bool) {
	h, ok := c.handlers[method]
	return h, ok
}

// Methods returns the verbs present in the capability set, in canonical order.
func (c *capabilitySet) Methods() []string {
	return c.methods
}

// AsResource converts an endpoint value into a Resource. A value that already
// implements Resource is returned as-is; otherwise the capability set is built
// from the verb interfaces the value implements. Returns ErrNoHandlers when the
// value implements none of them.
func AsResource(v any) (Resource, error) {
	if v == nil {
		return nil, ErrNilResource
	}
	if res, ok := v.(Resource); ok {
		return res, nil
	}

	handlers := make(map[string]HandlerFunc, 4)
	if h, ok := v.(GetHandler); ok {
		handlers[http.MethodGet] = h.OnGet
	}
	if h, ok := v.(HeadHandler); ok {
		handlers[http.MethodHead] = h.OnHead
	}
	if h, ok := v.(PostHandler); ok {
		handlers[http.MethodPost] = h.OnPost
	}
	if h, ok := v.(PutHandler); ok {
		handlers[http.MethodPut] = h.OnPut
	}
	if h, ok := v.(PatchHandler); ok {
		handlers[http.MethodPatch] = h.OnPatch
	}
	if h, ok := v.(DeleteHandler); ok {
		handlers[http.MethodDelete] = h.OnDelete
	}
	if h, ok := v.(OptionsHandler); ok {
		handlers[http.MethodOptions] = h.OnOptions
	}
	if len(handlers) == 0 {
		return nil, ErrNoHandlers
	}

	methods := make([]string, 0, len(handlers))
	for _, m := range verbOrder {
		if _, ok := handlers[m]; ok {
			methods = append(methods, m)
		}
	}

	return &capabilitySet{handlers: handlers, methods: methods}, nil
}

// MustResource is AsResource for static registrations where a conversion error
// is a programming mistake.
func MustResource(v any) Resource {
	res, err := AsResource(v)
	if err != nil {
		panic("router.MustResource: " + err.Error())
	}
	return res
}
