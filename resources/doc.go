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

// Package resources implements the concrete internal endpoints: health,
// plugin introspection, init-script status, the template deploy UI, and the
// debug-only diagnose document.
//
// Endpoints are thin. They read collaborator state through the narrow
// interfaces in collaborators.go and compose the routing primitives from the
// router and state packages; all collaborators are optional and a nil one
// degrades to an empty section rather than a fault.
package resources
