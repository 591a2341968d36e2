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
	"path/filepath"
	"strings"

	"anvil.dev/internalhttp/router"
)

// scriptDetails is the per-script wire shape.
type scriptDetails struct {
	Stage string `json:"stage"`
	Name  string `json:"name"`
	State string `json:"state"`
}

func toScriptDetails(s Script) scriptDetails {
	return scriptDetails{
		Stage: string(s.Stage),
		Name:  filepath.Base(s.Path),
		State: s.State,
	}
}

// InitScripts lists init scripts grouped by lifecycle stage with per-script
// completion state.
type InitScripts struct {
	manager InitScriptManager
}

// NewInitScripts creates the init-script status endpoint. A nil manager
// yields empty listings.
func NewInitScripts(manager InitScriptManager) *InitScripts {
	return &InitScripts{manager: manager}
}

// OnGet returns completion flags for every stage plus the full script list.
func (r *InitScripts) OnGet(*router.Request) (any, error) {
	completed := map[string]bool{}
	scripts := []scriptDetails{}
	if r.manager != nil {
		for _, stage := range r.manager.Stages() {
			completed[string(stage)] = r.manager.StageCompleted(stage)
			for _, script := range r.manager.Scripts(stage) {
				scripts = append(scripts, toScriptDetails(script))
			}
		}
	}
	return map[string]any{
		"completed": completed,
		"scripts":   scripts,
	}, nil
}

// InitScriptsStage is the stage-scoped variant of InitScripts. The stage name
// in the path resolves case-insensitively.
type InitScriptsStage struct {
	manager InitScriptManager
}

// NewInitScriptsStage creates the stage-scoped init-script endpoint.
func NewInitScriptsStage(manager InitScriptManager) *InitScriptsStage {
	return &InitScriptsStage{manager: manager}
}

// OnGet returns the completion flag and scripts for the <stage> parameter,
// or a not-found condition naming the unrecognized stage.
func (r *InitScriptsStage) OnGet(req *router.Request) (any, error) {
	name := req.Params.Get("stage")
	stage, ok := r.resolveStage(name)
	if !ok {
		return nil, router.NewNotFoundError("no such stage %s", name)
	}

	scripts := make([]scriptDetails, 0, len(r.manager.Scripts(stage)))
	for _, script := range r.manager.Scripts(stage) {
		scripts = append(scripts, toScriptDetails(script))
	}
	return map[string]any{
		"completed": r.manager.StageCompleted(stage),
		"scripts":   scripts,
	}, nil
}

func (r *InitScriptsStage) resolveStage(name string) (Stage, bool) {
	if r.manager == nil {
		return "", false
	}
	for _, stage := range r.manager.Stages() {
		if strings.EqualFold(string(stage), name) {
			return stage, true
		}
	}
	return "", false
}
