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

	"github.com/spf13/cast"
)

// Get returns the value at the colon-delimited path, reporting whether the
// path resolves. Nested values are returned as copies so callers cannot
// mutate the document through them.
func (d *Document) Get(path string) (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	segments := strings.Split(path, KeyDelimiter)
	var current any = d.values
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return copyValue(current), true
}

// GetString returns the value at path coerced to a string, or "" when the
// path does not resolve.
func (d *Document) GetString(path string) string {
	v, ok := d.Get(path)
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

// GetBool returns the value at path coerced to a bool, or false when the path
// does not resolve.
func (d *Document) GetBool(path string) bool {
	v, ok := d.Get(path)
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// GetInt returns the value at path coerced to an int, or 0 when the path does
// not resolve.
func (d *Document) GetInt(path string) int {
	v, ok := d.Get(path)
	if !ok {
		return 0
	}
	return cast.ToInt(v)
}
