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

// Package internalhttp assembles the host's internal diagnostic and control
// endpoints: health and status, plugin listings, init-script progress, the
// quick-deploy page, and (in debug mode) the diagnose report.
//
// All routes live under a reserved URL prefix (default "/_internal") that the
// layer owns exclusively. The one exception is the deprecated /health alias,
// which answers identically to /_internal/health while logging a deprecation
// notice per call.
//
// Build the layer once at startup and either embed it into an existing edge
// pipeline or mount it standalone:
//
//	res, err := internalhttp.New(
//		internalhttp.WithVersion("3.7.0"),
//		internalhttp.WithLogger(logger),
//		internalhttp.WithServiceStates(states),
//	)
//	if err != nil {
//		return err
//	}
//	http.ListenAndServe(":4566", res)
//
// Hosts with their own listener chain take res.Listener() instead and decide
// what happens to requests the layer answers NotMine for.
package internalhttp
