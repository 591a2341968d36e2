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
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultReservedPrefix is the URL prefix under which all routes are rooted
// unless configured otherwise.
const DefaultReservedPrefix = "/_internal"

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NoopLogger returns the singleton no-op logger.
func NoopLogger() *slog.Logger {
	return noopLogger
}

// Option defines functional options for router configuration.
type Option func(*Router)

// WithReservedPrefix sets the reserved namespace prefix (default "/_internal").
// Every Add-registered path is rooted under it, and Owns reports true only for
// paths inside it.
func WithReservedPrefix(prefix string) Option {
	return func(r *Router) {
		r.prefix = prefix
	}
}

// WithLogger sets the structured logger used for registration warnings.
// Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Match is the result of a successful route lookup.
type Match struct {
	// Resource is the registered resource object.
	Resource Resource

	// Params holds the values bound to <name> parameter segments.
	Params Params

	// Pattern is the registered route pattern (e.g. "/_internal/init/<stage>").
	// Use the pattern, not the raw path, for metrics to keep cardinality bounded.
	Pattern string
}

// Router is the prefix-scoped route table. It matches request paths to
// registered resources and extracts path parameters; verb resolution is the
// Dispatcher's job.
//
// Lifecycle: construct with New, register routes with Add/AddLegacy, then call
// Freeze. Registration is a single-threaded configuration phase; after Freeze
// the table is immutable and Resolve is safe for unlocked concurrent use.
type Router struct {
	prefix string
	logger *slog.Logger

	mu     sync.Mutex // guards root during the configuration phase
	root   *node
	frozen atomic.Bool
}

// New creates a Router. The returned router owns no routes yet; it only
// answers Owns for its reserved prefix.
func New(opts ...Option) (*Router, error) {
	r := &Router{
		prefix: DefaultReservedPrefix,
		logger: noopLogger,
		root:   &node{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("router configuration validation failed: %w", err)
	}
	return r, nil
}

// MustNew creates a Router and panics on invalid configuration.
func MustNew(opts ...Option) *Router {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("router.MustNew: %v", err))
	}
	return r
}

// validate checks the router configuration for common errors.
func (r *Router) validate() error {
	if !strings.HasPrefix(r.prefix, "/") || r.prefix == "/" {
		return fmt.Errorf("%w: got %q", ErrEmptyPrefix, r.prefix)
	}
	if strings.HasSuffix(r.prefix, "/") {
		return fmt.Errorf("%w: must not end with '/': %q", ErrEmptyPrefix, r.prefix)
	}
	return nil
}

// Prefix returns the reserved namespace prefix.
func (r *Router) Prefix() string {
	return r.prefix
}

// Owns reports whether path falls inside the reserved namespace. Ownership of
// that namespace is total: a lookup miss for an owned path must become a
// definitive 404, never a fall-through.
func (r *Router) Owns(path string) bool {
	return path == r.prefix || strings.HasPrefix(path, r.prefix+"/")
}

// Add registers a resource under the reserved prefix. The path may contain
// <name> parameter segments. The resource may be a Resource or any value
// implementing one or more verb interfaces.
func (r *Router) Add(path string, resource any) error {
	return r.addPattern(r.prefix+path, resource)
}

// AddLegacy registers a resource outside the reserved prefix. This exists only
// for deprecated aliases of moved endpoints (see Deprecated); everything else
// belongs under the prefix, where the router's namespace ownership applies.
func (r *Router) AddLegacy(path string, resource any) error {
	return r.addPattern(path, resource)
}

func (r *Router) addPattern(pattern string, resource any) error {
	if r.frozen.Load() {
		return fmt.Errorf("%w: cannot add %q", ErrRoutesFrozen, pattern)
	}
	res, err := AsResource(resource)
	if err != nil {
		return fmt.Errorf("register %q: %w", pattern, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.root.add(pattern, res); err != nil {
		return fmt.Errorf("register %q: %w", pattern, err)
	}
	r.logger.Debug("registered internal route", "pattern", pattern, "methods", res.Methods())
	return nil
}

// Freeze ends the configuration phase. Registrations after Freeze fail with
// ErrRoutesFrozen; lookups after Freeze need no locking. Freeze is idempotent.
func (r *Router) Freeze() {
	r.frozen.Store(true)
}

// Resolve matches method+path against the route table and returns the
// registered resource with its bound path parameters. The method is carried
// for the caller's logging; a missing verb on the matched resource surfaces at
// dispatch time as a 405, not here. A miss returns ErrRouteNotFound.
func (r *Router) Resolve(method, path string) (Resource, Params, error) {
	match, err := r.Lookup(method, path)
	if err != nil {
		return nil, nil, err
	}
	return match.Resource, match.Params, nil
}

// Lookup is Resolve returning the full Match, including the registered
// pattern for observability.
func (r *Router) Lookup(method, path string) (*Match, error) {
	if !r.frozen.Load() {
		// Lookups during the configuration phase take the registration lock.
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	params := Params{}
	res, pattern, ok := r.root.lookup(path, params)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrRouteNotFound, method, path)
	}
	return &Match{Resource: res, Params: params, Pattern: pattern}, nil
}

// Routes returns the registered patterns in lexical order, for introspection.
func (r *Router) Routes() []string {
	if !r.frozen.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	var out []string
	r.root.patterns(&out)
	sort.Strings(out)
	return out
}
