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
	"fmt"

	"anvil.dev/internalhttp/router"
)

// DiagnosticFunc produces one named section of the diagnose document.
type DiagnosticFunc func() (any, error)

// Diagnose aggregates diagnostic sections into one document. Each section is
// collected independently; a failing collector contributes an inline error
// entry instead of failing the whole document.
//
// The endpoint can expose sensitive information and is only routed when the
// debug flag is enabled at construction time.
type Diagnose struct {
	sections map[string]DiagnosticFunc
	routes   func() []string
}

// NewDiagnose creates the diagnose endpoint. routes, when non-nil, adds the
// registered internal route patterns as a section of their own.
func NewDiagnose(sections map[string]DiagnosticFunc, routes func() []string) *Diagnose {
	return &Diagnose{sections: sections, routes: routes}
}

// OnGet collects every section.
func (d *Diagnose) OnGet(*router.Request) (any, error) {
	result := make(map[string]any, len(d.sections)+1)
	for name, collect := range d.sections {
		result[name] = collectSafe(collect)
	}
	if d.routes != nil {
		result["routes"] = d.routes()
	}
	return result, nil
}

// collectSafe runs one collector, converting failures (including panics, some
// collectors shell out to fragile host tooling) into inline error values.
func collectSafe(collect DiagnosticFunc) (result any) {
	defer func() {
		if r := recover(); r != nil {
			result = map[string]string{"error": fmt.Sprintf("panic: %v", r)}
		}
	}()

	v, err := collect()
	if err != nil {
		return map[string]string{"error": err.Error()}
	}
	return v
}
