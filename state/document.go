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

package state

import (
	"strings"
	"sync"

	"dario.cat/mergo"
)

// KeyDelimiter separates path segments in flat update keys.
const KeyDelimiter = ":"

// VersionKey is the snapshot key carrying the version tag.
const VersionKey = "version"

// Document is the persistent in-memory status document. Updates and snapshots
// are serialized by one mutex: a snapshot observes an update entirely or not
// at all, never partially.
type Document struct {
	version string

	mu     sync.Mutex
	values map[string]any
}

// NewDocument creates an empty document. The version tag is attached to every
// snapshot under VersionKey.
func NewDocument(version string) *Document {
	return &Document{
		version: version,
		values:  map[string]any{},
	}
}

// ApplyUpdate expands each flat key on the delimiter into a path of segments
// and deep-merges the resulting nested structure into the document. Object
// nodes merge key-by-key; leaves are replaced wholesale, last writer wins.
func (d *Document) ApplyUpdate(update map[string]any) {
	if len(update) == 0 {
		return
	}
	expanded := expandKeys(update)

	d.mu.Lock()
	defer d.mu.Unlock()
	mergeOverwrite(d.values, expanded)
}

// Snapshot returns a copy of the document with live collaborator data merged
// in (existing document values win conflicts) and the version tag attached.
// The persistent document is never mutated.
func (d *Document) Snapshot(live map[string]any) map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	result := deepCopy(d.values)
	// Fill-missing merge: live data appears wherever the document is silent.
	if len(live) > 0 {
		if err := mergo.Merge(&result, live); err != nil {
			// Merge over plain nested maps cannot fail; keep the document copy.
			result = deepCopy(d.values)
		}
	}
	result[VersionKey] = d.version
	return result
}

// expandKeys builds a nested structure from a flat mapping whose keys may use
// the colon-delimited path syntax ("a:b:c" addresses {a:{b:{c: v}}}).
func expandKeys(flat map[string]any) map[string]any {
	nested := map[string]any{}
	for key, value := range flat {
		path := strings.Split(key, KeyDelimiter)

		node := nested
		for _, segment := range path[:len(path)-1] {
			child, ok := node[segment].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[segment] = child
			}
			node = child
		}
		node[path[len(path)-1]] = value
	}
	return nested
}

// mergeOverwrite merges src into dst with leaf-overwrite semantics: nested
// maps merge key-by-key, any other value replaces the destination wholesale
// (including false and zero values, which general-purpose merge options tend
// to treat as absent).
func mergeOverwrite(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeOverwrite(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = deepCopy(srcMap)
			continue
		}
		dst[key] = value
	}
}

// deepCopy clones a nested document so snapshot callers can never reach back
// into the persistent state through aliased maps or slices.
func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = copyValue(value)
	}
	return out
}

func copyValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return deepCopy(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
