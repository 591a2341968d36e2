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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnoseCollectsSections(t *testing.T) {
	t.Parallel()
	d := NewDiagnose(map[string]DiagnosticFunc{
		"versions": func() (any, error) {
			return map[string]string{"image": "3.7.0"}, nil
		},
		"usage": func() (any, error) {
			return map[string]int{"containers": 2}, nil
		},
	}, nil)

	out, err := d.OnGet(nil)
	require.NoError(t, err)
	report, ok := out.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, map[string]string{"image": "3.7.0"}, report["versions"])
	assert.Equal(t, map[string]int{"containers": 2}, report["usage"])
	assert.NotContains(t, report, "routes")
}

func TestDiagnoseSectionErrorIsInline(t *testing.T) {
	t.Parallel()
	d := NewDiagnose(map[string]DiagnosticFunc{
		"docker": func() (any, error) {
			return nil, errors.New("docker socket unavailable")
		},
		"config": func() (any, error) {
			return map[string]bool{"debug": true}, nil
		},
	}, nil)

	out, err := d.OnGet(nil)
	require.NoError(t, err)
	report := out.(map[string]any)

	// One failing collector never poisons the rest of the report.
	assert.Equal(t, map[string]string{"error": "docker socket unavailable"}, report["docker"])
	assert.Equal(t, map[string]bool{"debug": true}, report["config"])
}

func TestDiagnoseSectionPanicIsInline(t *testing.T) {
	t.Parallel()
	d := NewDiagnose(map[string]DiagnosticFunc{
		"logs": func() (any, error) {
			panic("tail exploded")
		},
	}, nil)

	out, err := d.OnGet(nil)
	require.NoError(t, err)
	report := out.(map[string]any)
	assert.Equal(t, map[string]string{"error": "panic: tail exploded"}, report["logs"])
}

func TestDiagnoseIncludesRoutes(t *testing.T) {
	t.Parallel()
	d := NewDiagnose(nil, func() []string {
		return []string{"/_internal/health", "/_internal/plugins"}
	})

	out, err := d.OnGet(nil)
	require.NoError(t, err)
	report := out.(map[string]any)
	assert.Equal(t, []string{"/_internal/health", "/_internal/plugins"}, report["routes"])
}
