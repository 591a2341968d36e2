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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsResourceBuildsCapabilitySet(t *testing.T) {
	t.Parallel()
	res, err := AsResource(&dispatchResource{})
	require.NoError(t, err)

	assert.Equal(t, []string{"GET", "POST", "PUT", "PATCH", "DELETE"}, res.Methods())

	_, ok := res.Handler(http.MethodGet)
	assert.True(t, ok)
	_, ok = res.Handler(http.MethodHead)
	assert.False(t, ok)
	_, ok = res.Handler(http.MethodOptions)
	assert.False(t, ok)
}

func TestAsResourcePassesResourceThrough(t *testing.T) {
	t.Parallel()
	built := MustResource(&echoResource{})
	res, err := AsResource(built)
	require.NoError(t, err)
	assert.Same(t, built, res)
}

func TestRequestDecodeJSON(t *testing.T) {
	t.Parallel()

	req := NewRequest(httptest.NewRequest(http.MethodPut, "/_internal/health",
		strings.NewReader(`{"status":"maintenance"}`)), nil)
	var data map[string]any
	require.NoError(t, req.DecodeJSON(&data))
	assert.Equal(t, "maintenance", data["status"])

	// Empty body is not an error.
	req = NewRequest(httptest.NewRequest(http.MethodPut, "/_internal/health", nil), nil)
	data = nil
	require.NoError(t, req.DecodeJSON(&data))
	assert.Nil(t, data)

	// Malformed body is a recognized bad-request condition.
	req = NewRequest(httptest.NewRequest(http.MethodPut, "/_internal/health",
		strings.NewReader(`{broken`)), nil)
	err := req.DecodeJSON(&data)
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))
}

func TestResponseWrite(t *testing.T) {
	t.Parallel()

	resp := NewResponse(0, ContentTypeJSON, []byte(`{"ok":true}`))
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Write(rec))

	// Unset status defaults to 200.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentTypeJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestResponseWriteExtraHeaders(t *testing.T) {
	t.Parallel()

	resp := Text(http.StatusMethodNotAllowed, "method not supported")
	resp.Header = http.Header{"Allow": []string{"GET, HEAD"}}
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Write(rec))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	nf := NewNotFoundError("no such stage %s", "bogus")
	assert.EqualError(t, nf, "no such stage bogus")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsNotFound(ErrRouteNotFound))

	br := NewBadRequestError("invalid request")
	assert.True(t, IsBadRequest(br))
	assert.False(t, IsBadRequest(nf))
}
