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
	"encoding/json"
	"net/http"
)

// ContentTypeJSON is the default content type for normalized responses.
const ContentTypeJSON = "application/json"

// Response is an explicit handler response: a raw body with status, content
// type, and optional extra headers. Handlers that return a *Response bypass
// the dispatcher's JSON normalization entirely.
type Response struct {
	Status      int
	ContentType string
	Header      http.Header
	Body        []byte
}

// NewResponse creates a response with the given status, content type and body.
func NewResponse(status int, contentType string, body []byte) *Response {
	return &Response{Status: status, ContentType: contentType, Body: body}
}

// Text creates a plain-text response.
func Text(status int, body string) *Response {
	return NewResponse(status, "text/plain; charset=utf-8", []byte(body))
}

// HTML creates a text/html response.
func HTML(status int, body []byte) *Response {
	return NewResponse(status, "text/html; charset=utf-8", body)
}

// JSON creates an application/json response from v.
func JSON(status int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return NewResponse(status, ContentTypeJSON, body), nil
}

// StatusOrDefault returns the explicit status, defaulting to 200.
func (r *Response) StatusOrDefault() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}

// Write writes the response to w: extra headers first, then content type,
// status, and body.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	if r.ContentType != "" {
		w.Header().Set("Content-Type", r.ContentType)
	}
	w.WriteHeader(r.StatusOrDefault())
	if len(r.Body) == 0 {
		return nil
	}
	_, err := w.Write(r.Body)
	return err
}
