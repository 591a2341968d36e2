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

package resources

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/spf13/cast"

	"anvil.dev/internalhttp/router"
	"anvil.dev/internalhttp/state"
)

// Health is the health and status endpoint. GET returns the service states
// merged with the persistent status document; PUT feeds arbitrary status data
// into that document (init-script runners use this to flag feature progress);
// POST carries the kill/restart backdoor; HEAD is the liveness probe.
type Health struct {
	services ServiceStateProvider
	shutdown ShutdownSignaler
	doc      *state.Document
	logger   *slog.Logger
}

// NewHealth creates the health endpoint. services and shutdown may be nil;
// the corresponding sections degrade to empty/no-op.
func NewHealth(services ServiceStateProvider, shutdown ShutdownSignaler, doc *state.Document, logger *slog.Logger) *Health {
	if logger == nil {
		logger = router.NoopLogger()
	}
	return &Health{services: services, shutdown: shutdown, doc: doc, logger: logger}
}

// OnGet returns the merged status document: live service states, accumulated
// status data, and the version tag. A "reload" marker in the path or query
// re-probes the services first.
func (h *Health) OnGet(req *router.Request) (any, error) {
	services := map[string]any{}
	if h.services != nil {
		if strings.Contains(req.Path, "reload") || req.HTTP() != nil && req.HTTP().URL.Query().Has("reload") {
			h.services.CheckAll()
		}
		for name, st := range h.services.States() {
			services[name] = st
		}
	}
	return h.doc.Snapshot(map[string]any{"services": services}), nil
}

// OnPost accepts a small command vocabulary: action kill or restart triggers
// external shutdown signaling. Any other well-formed body is a no-op "ok";
// a missing or malformed body is a 400.
func (h *Health) OnPost(req *router.Request) (any, error) {
	var data map[string]any
	if err := req.DecodeJSON(&data); err != nil || len(data) == 0 {
		return router.Text(http.StatusBadRequest, "invalid request"), nil
	}

	switch action := cast.ToString(data["action"]); action {
	case "kill", "restart":
		h.logger.Warn("shutdown requested via health endpoint", "action", action)
		if h.shutdown != nil {
			h.shutdown.SignalShutdown()
		}
	}

	return router.Text(http.StatusOK, "ok"), nil
}

// OnPut applies the JSON body to the status document. Keys may use the
// colon-delimited nested path syntax. A malformed body is tolerated as an
// empty update.
func (h *Health) OnPut(req *router.Request) (any, error) {
	var data map[string]any
	if err := req.DecodeJSON(&data); err != nil {
		data = nil
	}
	h.doc.ApplyUpdate(data)
	return map[string]string{"status": "OK"}, nil
}

// OnHead is the liveness probe: empty 200, always.
func (h *Health) OnHead(*router.Request) (any, error) {
	return router.Text(http.StatusOK, "ok"), nil
}
