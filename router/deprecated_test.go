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

package router

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler is a slog.Handler that captures records for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func (h *recordingHandler) attr(i int, key string) (value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records[i].Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}

func deprecationRecord() DeprecationRecord {
	return DeprecationRecord{
		PreviousPath:       "/health",
		DeprecationVersion: "1.3.0",
		NewPath:            "/_internal/health",
	}
}

func TestDeprecatedPreservesResponseContent(t *testing.T) {
	t.Parallel()
	handler := &recordingHandler{}
	plain := MustResource(&dispatchResource{})
	wrapped, err := Deprecated(&dispatchResource{}, deprecationRecord(), slog.New(handler))
	require.NoError(t, err)

	d := NewDispatcher()
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch} {
		want, err := d.Dispatch(plain, newTestRequest(t, method, "/health"))
		require.NoError(t, err)
		got, err := d.Dispatch(wrapped, newTestRequest(t, method, "/health"))
		require.NoError(t, err)

		// Byte-identical response, the notice is only a side effect.
		assert.Equal(t, want.Status, got.Status, method)
		assert.Equal(t, want.ContentType, got.ContentType, method)
		assert.Equal(t, want.Body, got.Body, method)
	}
}

func TestDeprecatedPreservesErrorBehavior(t *testing.T) {
	t.Parallel()
	wrapped, err := Deprecated(&dispatchResource{}, deprecationRecord(), slog.New(&recordingHandler{}))
	require.NoError(t, err)

	_, err = NewDispatcher().Dispatch(wrapped, newTestRequest(t, http.MethodDelete, "/health"))
	require.EqualError(t, err, "disk on fire")
}

func TestDeprecatedLogsOncePerInvocation(t *testing.T) {
	t.Parallel()
	handler := &recordingHandler{}
	wrapped, err := Deprecated(&dispatchResource{}, deprecationRecord(), slog.New(handler))
	require.NoError(t, err)

	d := NewDispatcher()
	for range 3 {
		_, err := d.Dispatch(wrapped, newTestRequest(t, http.MethodGet, "/health"))
		require.NoError(t, err)
	}

	// Not deduplicated: every call logs.
	require.Equal(t, 3, handler.len())
	assert.Equal(t, "/health", handler.attr(0, "previous_path"))
	assert.Equal(t, "1.3.0", handler.attr(0, "deprecation_version"))
	assert.Equal(t, "/_internal/health", handler.attr(0, "new_path"))
}

func TestDeprecatedDoesNotSynthesizeVerbs(t *testing.T) {
	t.Parallel()
	wrapped, err := Deprecated(&dispatchResource{}, deprecationRecord(), nil)
	require.NoError(t, err)

	// HEAD is absent on the source, so it stays absent on the wrapper.
	_, ok := wrapped.Handler(http.MethodHead)
	assert.False(t, ok)
	assert.Equal(t, MustResource(&dispatchResource{}).Methods(), wrapped.Methods())
}
