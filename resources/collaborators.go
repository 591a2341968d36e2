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

// ServiceStateProvider exposes the hosting service's per-service states.
type ServiceStateProvider interface {
	// States returns the current state of every managed service by name.
	States() map[string]string

	// CheckAll re-probes every managed service before the next States call.
	CheckAll()
}

// ShutdownSignaler receives the health endpoint's kill/restart backdoor.
type ShutdownSignaler interface {
	SignalShutdown()
}

// PluginManager is one named plugin namespace of the hosting service's
// plugin-loading framework.
type PluginManager interface {
	// Namespace returns the manager's namespace name.
	Namespace() string

	// Names lists the plugins known to this manager.
	Names() []string

	// Container returns the load/init flags for a named plugin.
	Container(name string) (PluginContainer, bool)
}

// PluginContainer carries a plugin's lifecycle flags.
type PluginContainer struct {
	Initialized bool
	Loaded      bool
}

// Stage is an init-script lifecycle stage.
type Stage string

// The canonical lifecycle stages, in execution order.
const (
	StageBoot     Stage = "BOOT"
	StageStart    Stage = "START"
	StageReady    Stage = "READY"
	StageShutdown Stage = "SHUTDOWN"
)

// Script is one init script with its lifecycle position and completion state.
type Script struct {
	Stage Stage
	Path  string
	State string
}

// InitScriptManager exposes per-stage init-script completion.
type InitScriptManager interface {
	// Stages lists the stages in execution order.
	Stages() []Stage

	// StageCompleted reports whether all scripts of a stage have run.
	StageCompleted(stage Stage) bool

	// Scripts lists the scripts registered for a stage.
	Scripts(stage Stage) []Script
}
