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

// Package edge lets the internal resource router participate as one stage of
// an ordered chain of request listeners in a hosting service's edge pipeline.
//
// A listener answers each request with a tri-state Verdict: Handled (response
// written, chain terminates), NotMine (fall through to the next listener), or
// Rejected (definitive failure status, chain terminates). The asymmetry is the
// key contract of the RouterListener: a routing miss inside the reserved
// namespace is Rejected with 404 because that namespace is owned exclusively,
// while a miss outside it is NotMine so normal traffic routing is undisturbed.
//
// Handler faults the router core does not recognize cross the Listener error
// return into the Chain's error handler, the hosting pipeline's boundary.
package edge
