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

import "anvil.dev/internalhttp/router"

// Plugins enumerates the plugin-manager namespaces and each plugin's
// lifecycle flags. Read-only; it never loads or initializes anything.
type Plugins struct {
	managers []PluginManager
}

// NewPlugins creates the plugin introspection endpoint.
func NewPlugins(managers ...PluginManager) *Plugins {
	return &Plugins{managers: managers}
}

// pluginDetails is the per-plugin wire shape.
type pluginDetails struct {
	Name          string `json:"name"`
	IsInitialized bool   `json:"is_initialized"`
	IsLoaded      bool   `json:"is_loaded"`
}

// OnGet returns {namespace: [plugin details...]} for every manager.
func (p *Plugins) OnGet(*router.Request) (any, error) {
	result := make(map[string][]pluginDetails, len(p.managers))
	for _, manager := range p.managers {
		details := make([]pluginDetails, 0, len(manager.Names()))
		for _, name := range manager.Names() {
			container, ok := manager.Container(name)
			if !ok {
				continue
			}
			details = append(details, pluginDetails{
				Name:          name,
				IsInitialized: container.Initialized,
				IsLoaded:      container.Loaded,
			})
		}
		result[manager.Namespace()] = details
	}
	return result, nil
}
