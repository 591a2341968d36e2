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

// Package state aggregates heterogeneous status data into one in-memory JSON
// document keyed by nested string paths.
//
// Flat updates use colon-delimited keys: "features:initScripts" addresses
// {"features": {"initScripts": ...}}. Merging is leaf-overwrite: intermediate
// object nodes merge key-by-key while terminal values are replaced wholesale.
// The document lives for the process lifetime only; nothing is persisted.
//
// Snapshot reads never mutate the document: live collaborator data is merged
// into a deep copy, with existing document leaves winning conflicts, and the
// version tag attached last.
package state
