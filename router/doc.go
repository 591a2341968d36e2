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

// Package router maps verb+path requests to resource objects registered under a
// single reserved URL prefix, and dispatches the matched verb to the resource's
// handler.
//
// A Resource declares its capability set explicitly: the subset of HTTP verbs it
// implements. Concrete endpoint types implement any of the verb interfaces
// (GetHandler, PostHandler, ...) and are converted to a Resource at registration
// time via AsResource. The Dispatcher consults the capability set instead of
// probing for methods, so a missing verb is a 405 condition rather than a fault.
//
// Routing follows a two-phase lifecycle: routes are registered during a
// single-threaded configuration phase and the table is then frozen with Freeze.
// After Freeze the route tree is immutable and safe for concurrent lookups
// without locking. There is no dynamic unregistration.
//
// Matching policy: literal segments take precedence over <name> parameter
// segments at the same depth. When two parameterized patterns could both match,
// the first registration wins; this ordering tie-break is stable but
// implementation-defined, only the literal-over-parameter rule is contractual.
//
// Example:
//
//	rt := router.MustNew(router.WithReservedPrefix("/_internal"))
//	_ = rt.Add("/init/<stage>", stageResource)
//	rt.Freeze()
//
//	res, params, err := rt.Resolve(http.MethodGet, "/_internal/init/boot")
package router
