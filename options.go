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
	"log/slog"
	"net/http"
	"time"

	"anvil.dev/internalhttp/edge"
	"anvil.dev/internalhttp/resources"
	"anvil.dev/internalhttp/router"
)

// DefaultVersion tags status documents when the host does not set one.
const DefaultVersion = "dev"

// DefaultDeprecationVersion is the release that moved the legacy endpoints
// under the reserved prefix.
const DefaultDeprecationVersion = "1.3.0"

// Option defines functional options for the resource layer.
type Option func(*config)

type config struct {
	version            string
	deprecationVersion string
	debug              bool
	logger             *slog.Logger
	prefix             string

	services       resources.ServiceStateProvider
	shutdown       resources.ShutdownSignaler
	pluginManagers []resources.PluginManager
	initScripts    resources.InitScriptManager

	deployRegions        []string
	templateClient       *http.Client
	templateFetchTimeout time.Duration

	diagnostics map[string]resources.DiagnosticFunc
	recorder    edge.Recorder
}

func defaultConfig() *config {
	return &config{
		version:              DefaultVersion,
		deprecationVersion:   DefaultDeprecationVersion,
		logger:               router.NoopLogger(),
		prefix:               router.DefaultReservedPrefix,
		templateFetchTimeout: resources.DefaultTemplateFetchTimeout,
	}
}

func (c *config) validate() error {
	if c.version == "" {
		return ErrEmptyVersion
	}
	if c.templateFetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}
	return nil
}

// WithVersion sets the version tag attached to every status document snapshot.
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// WithDeprecationVersion sets the release named in deprecation notices for the
// legacy endpoint aliases.
func WithDeprecationVersion(version string) Option {
	return func(c *config) {
		if version != "" {
			c.deprecationVersion = version
		}
	}
}

// WithDebug enables the diagnose endpoint. Without it the route is never
// registered and the path answers 404.
func WithDebug(debug bool) Option {
	return func(c *config) {
		c.debug = debug
	}
}

// WithLogger sets the structured logger shared by the router, the edge chain,
// and every endpoint. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithReservedPrefix changes the reserved namespace prefix (default
// "/_internal").
func WithReservedPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithServiceStates wires the host's per-service state source into the health
// endpoint.
func WithServiceStates(provider resources.ServiceStateProvider) Option {
	return func(c *config) {
		c.services = provider
	}
}

// WithShutdownSignaler wires the receiver of the health endpoint's
// kill/restart commands.
func WithShutdownSignaler(signaler resources.ShutdownSignaler) Option {
	return func(c *config) {
		c.shutdown = signaler
	}
}

// WithPluginManagers wires the plugin namespaces listed by the plugins
// endpoint.
func WithPluginManagers(managers ...resources.PluginManager) Option {
	return func(c *config) {
		c.pluginManagers = append(c.pluginManagers, managers...)
	}
}

// WithInitScripts wires the init-script manager behind the init endpoints.
func WithInitScripts(manager resources.InitScriptManager) Option {
	return func(c *config) {
		c.initScripts = manager
	}
}

// WithDeployRegions sets the region names offered by the deploy form.
func WithDeployRegions(regions ...string) Option {
	return func(c *config) {
		c.deployRegions = append(c.deployRegions, regions...)
	}
}

// WithTemplateClient replaces the HTTP client used for deploy template
// downloads. Takes precedence over WithTemplateFetchTimeout.
func WithTemplateClient(client *http.Client) Option {
	return func(c *config) {
		c.templateClient = client
	}
}

// WithTemplateFetchTimeout bounds the deploy template download when no custom
// client is supplied.
func WithTemplateFetchTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.templateFetchTimeout = timeout
	}
}

// WithDiagnostics registers named diagnostic collectors for the diagnose
// endpoint. Only meaningful together with WithDebug.
func WithDiagnostics(sections map[string]resources.DiagnosticFunc) Option {
	return func(c *config) {
		if c.diagnostics == nil {
			c.diagnostics = make(map[string]resources.DiagnosticFunc, len(sections))
		}
		for name, collect := range sections {
			c.diagnostics[name] = collect
		}
	}
}

// WithObservability sets the recorder receiving dispatch and route-miss
// measurements. Defaults to a no-op recorder.
func WithObservability(recorder edge.Recorder) Option {
	return func(c *config) {
		c.recorder = recorder
	}
}
