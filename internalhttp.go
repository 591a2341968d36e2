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

package internalhttp

import (
	"errors"
	"fmt"
	"net/http"

	"anvil.dev/internalhttp/edge"
	"anvil.dev/internalhttp/resources"
	"anvil.dev/internalhttp/router"
	"anvil.dev/internalhttp/state"
)

// Configuration errors reported by New.
var (
	// ErrEmptyVersion indicates WithVersion was given an empty string.
	ErrEmptyVersion = errors.New("version must not be empty")

	// ErrInvalidFetchTimeout indicates a non-positive template fetch timeout.
	ErrInvalidFetchTimeout = errors.New("template fetch timeout must be positive")
)

// LegacyHealthPath is the pre-namespacing location of the health endpoint,
// kept alive as a deprecated alias.
const LegacyHealthPath = "/health"

// Resources is the assembled internal resource layer: the frozen route table,
// the persistent status document, and the edge chain serving both. Hosts embed
// it into their pipeline via Listener, or mount it directly via ServeHTTP.
//
// Build it once at startup; all methods are safe for concurrent use afterward.
type Resources struct {
	router   *router.Router
	doc      *state.Document
	listener *edge.RouterListener
	chain    *edge.Chain
}

// New assembles the resource layer: it builds the status document and the
// router, registers the default route set, freezes the table, and wires the
// edge chain around it.
func New(opts ...Option) (*Resources, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("internalhttp configuration validation failed: %w", err)
	}

	rt, err := router.New(
		router.WithReservedPrefix(cfg.prefix),
		router.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, err
	}

	doc := state.NewDocument(cfg.version)
	if err := registerRoutes(rt, doc, cfg); err != nil {
		return nil, err
	}
	rt.Freeze()

	listenerOpts := []edge.RouterListenerOption{edge.WithRouterLogger(cfg.logger)}
	if cfg.recorder != nil {
		listenerOpts = append(listenerOpts, edge.WithRecorder(cfg.recorder))
	}
	listener := edge.NewRouterListener(rt, listenerOpts...)
	chain := edge.NewChain(edge.WithLogger(cfg.logger)).Append(listener)

	return &Resources{router: rt, doc: doc, listener: listener, chain: chain}, nil
}

// MustNew assembles the resource layer and panics on invalid configuration.
func MustNew(opts ...Option) *Resources {
	r, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("internalhttp.MustNew: %v", err))
	}
	return r
}

// registerRoutes adds the default route set.
func registerRoutes(rt *router.Router, doc *state.Document, cfg *config) error {
	health := resources.NewHealth(cfg.services, cfg.shutdown, doc, cfg.logger)
	if err := rt.Add("/health", health); err != nil {
		return err
	}

	legacyHealth, err := router.Deprecated(health, router.DeprecationRecord{
		PreviousPath:       LegacyHealthPath,
		DeprecationVersion: cfg.deprecationVersion,
		NewPath:            rt.Prefix() + "/health",
	}, cfg.logger)
	if err != nil {
		return err
	}
	if err := rt.AddLegacy(LegacyHealthPath, legacyHealth); err != nil {
		return err
	}

	if err := rt.Add("/plugins", resources.NewPlugins(cfg.pluginManagers...)); err != nil {
		return err
	}
	if err := rt.Add("/init", resources.NewInitScripts(cfg.initScripts)); err != nil {
		return err
	}
	if err := rt.Add("/init/<stage>", resources.NewInitScriptsStage(cfg.initScripts)); err != nil {
		return err
	}

	deployOpts := []resources.DeployUIOption{
		resources.WithRegions(cfg.deployRegions),
		resources.WithDeployLogger(cfg.logger),
	}
	if cfg.templateClient != nil {
		deployOpts = append(deployOpts, resources.WithTemplateClient(cfg.templateClient))
	} else {
		deployOpts = append(deployOpts, resources.WithTemplateClient(
			&http.Client{Timeout: cfg.templateFetchTimeout}))
	}
	if err := rt.Add("/cloudformation/deploy", resources.NewDeployUI(deployOpts...)); err != nil {
		return err
	}

	// The diagnose route exists only in debug mode. When absent, its path is
	// still inside the reserved namespace and answers 404, never 405.
	if cfg.debug {
		diagnose := resources.NewDiagnose(cfg.diagnostics, rt.Routes)
		if err := rt.Add("/diagnose", diagnose); err != nil {
			return err
		}
	} else if len(cfg.diagnostics) > 0 {
		cfg.logger.Warn("diagnostic collectors configured but debug is disabled, diagnose endpoint not registered")
	}

	return nil
}

// Listener returns the resource layer as one stage of a host edge chain.
func (r *Resources) Listener() edge.Listener {
	return r.listener
}

// ServeHTTP mounts the resource layer standalone: routed requests are served,
// everything else answers 404.
func (r *Resources) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.chain.ServeHTTP(w, req)
}

// Router exposes the frozen route table, e.g. for route introspection.
func (r *Resources) Router() *router.Router {
	return r.router
}

// State exposes the persistent status document so hosts can feed it outside
// the health endpoint's PUT.
func (r *Resources) State() *state.Document {
	return r.doc
}
