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
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dispatchResource exercises every normalization branch of the dispatcher.
type dispatchResource struct{}

func (d *dispatchResource) OnGet(*Request) (any, error) {
	return map[string]any{"status": "running"}, nil
}

func (d *dispatchResource) OnPost(*Request) (any, error) {
	return NewResponse(http.StatusAccepted, "text/plain", []byte("queued")), nil
}

func (d *dispatchResource) OnPut(*Request) (any, error) {
	return nil, NewNotFoundError("no such stage %s", "bogus")
}

func (d *dispatchResource) OnDelete(*Request) (any, error) {
	return nil, errors.New("disk on fire")
}

func (d *dispatchResource) OnPatch(*Request) (any, error) {
	return nil, NewBadRequestError("invalid request")
}

func TestDispatchSerializesPlainValuesAsJSON(t *testing.T) {
	t.Parallel()
	d := NewDispatcher()
	res := MustResource(&dispatchResource{})

	resp, err := d.Dispatch(res, newTestRequest(t, http.MethodGet, "/_internal/health"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusOrDefault())
	assert.Equal(t, ContentTypeJSON, resp.ContentType)
	assert.JSONEq(t, `{"status":"running"}`, string(resp.Body))
}

func TestDispatchPassesExplicitResponseThrough(t *testing.T) {
	t.Parallel()
	d := NewDispatcher()
	res := MustResource(&dispatchResource{})

	resp, err := d.Dispatch(res, newTestRequest(t, http.MethodPost, "/_internal/health"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.Status)
	assert.Equal(t, "text/plain", resp.ContentType)
	assert.Equal(t, "queued", string(resp.Body))
}

func TestDispatchTranslatesNotFound(t *testing.T) {
	t.Parallel()
	d := NewDispatcher()
	res := MustResource(&dispatchResource{})

	resp, err := d.Dispatch(res, newTestRequest(t, http.MethodPut, "/_internal/init/bogus"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "no such stage bogus", string(resp.Body))
}

func TestDispatchTranslatesBadRequest(t *testing.T) {
	t.Parallel()
	d := NewDispatcher()
	res := MustResource(&dispatchResource{})

	resp, err := d.Dispatch(res, newTestRequest(t, http.MethodPatch, "/_internal/health"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "invalid request", string(resp.Body))
}

func TestDispatchPropagatesUnrecognizedFaults(t *testing.T) {
	t.Parallel()
	d := NewDispatcher()
	res := MustResource(&dispatchResource{})

	resp, err := d.Dispatch(res, newTestRequest(t, http.MethodDelete, "/_internal/health"))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.EqualError(t, err, "disk on fire")
}

func TestDispatchMissingVerbIs405(t *testing.T) {
	t.Parallel()
	d := NewDispatcher()
	res := MustResource(&dispatchResource{})

	// HEAD is not in the capability set. This is a response, not a fault.
	resp, err := d.Dispatch(res, newTestRequest(t, http.MethodHead, "/_internal/health"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Status)
	assert.Equal(t, "GET, POST, PUT, PATCH, DELETE", resp.Header.Get("Allow"))
}

func TestDispatchNilResultIsEmpty200(t *testing.T) {
	t.Parallel()
	d := NewDispatcher()
	res := MustResource(&nilResource{})

	resp, err := d.Dispatch(res, newTestRequest(t, http.MethodGet, "/_internal/none"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusOrDefault())
	assert.Empty(t, resp.Body)
}

type nilResource struct{}

func (n *nilResource) OnGet(*Request) (any, error) { return nil, nil }
