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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePluginManager is a PluginManager test double.
type fakePluginManager struct {
	namespace  string
	containers map[string]PluginContainer
	order      []string
}

func (f *fakePluginManager) Namespace() string { return f.namespace }
func (f *fakePluginManager) Names() []string   { return f.order }
func (f *fakePluginManager) Container(name string) (PluginContainer, bool) {
	c, ok := f.containers[name]
	return c, ok
}

func TestPluginsEnumeratesNamespaces(t *testing.T) {
	t.Parallel()
	services := &fakePluginManager{
		namespace: "host.services",
		order:     []string{"s3", "sqs"},
		containers: map[string]PluginContainer{
			"s3":  {Initialized: true, Loaded: true},
			"sqs": {Initialized: false, Loaded: true},
		},
	}
	hooks := &fakePluginManager{
		namespace:  "host.hooks.on_ready",
		order:      []string{"warm-cache"},
		containers: map[string]PluginContainer{"warm-cache": {}},
	}

	out, err := NewPlugins(services, hooks).OnGet(nil)
	require.NoError(t, err)

	result := out.(map[string][]pluginDetails)
	require.Len(t, result, 2)
	assert.Equal(t, []pluginDetails{
		{Name: "s3", IsInitialized: true, IsLoaded: true},
		{Name: "sqs", IsInitialized: false, IsLoaded: true},
	}, result["host.services"])
	assert.Equal(t, []pluginDetails{
		{Name: "warm-cache", IsInitialized: false, IsLoaded: false},
	}, result["host.hooks.on_ready"])
}

func TestPluginsSkipsUnknownContainers(t *testing.T) {
	t.Parallel()
	m := &fakePluginManager{
		namespace:  "host.services",
		order:      []string{"ghost"},
		containers: map[string]PluginContainer{},
	}

	out, err := NewPlugins(m).OnGet(nil)
	require.NoError(t, err)
	assert.Empty(t, out.(map[string][]pluginDetails)["host.services"])
}

func TestPluginsWithoutManagers(t *testing.T) {
	t.Parallel()
	out, err := NewPlugins().OnGet(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
