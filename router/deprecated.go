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

import "log/slog"

// DeprecationRecord describes a moved endpoint: where it used to live, the
// version that deprecated it, and where callers should go instead. It is
// attached at wrap time and immutable; it only shapes the logged notice.
type DeprecationRecord struct {
	PreviousPath       string
	DeprecationVersion string
	NewPath            string
}

// deprecatedResource wraps a resource so that every invocation of a present
// handler emits a deprecation notice before delegating. The wrapped handler's
// return value, response content, and error behavior are preserved unchanged;
// verbs absent on the source stay absent on the wrapper.
type deprecatedResource struct {
	inner  Resource
	record DeprecationRecord
	logger *slog.Logger
}

// Deprecated wraps a resource for registration under its old path. Each call
// to any of its handlers logs one warning naming the previous path, the
// deprecating version, and the replacement path. Notices are emitted per
// invocation, not deduplicated.
func Deprecated(resource any, record DeprecationRecord, logger *slog.Logger) (Resource, error) {
	inner, err := AsResource(resource)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = noopLogger
	}
	return &deprecatedResource{inner: inner, record: record, logger: logger}, nil
}

// Methods returns the wrapped resource's capability set unchanged.
func (d *deprecatedResource) Methods() []string {
	return d.inner.Methods()
}

// Handler returns a logging wrapper around the inner handler, or reports the
// verb as absent exactly when the inner resource does.
func (d *deprecatedResource) Handler(method string) (HandlerFunc, bool) {
	inner, ok := d.inner.Handler(method)
	if !ok {
		return nil, false
	}
	return func(req *Request) (any, error) {
		d.logger.Warn("deprecated endpoint invoked",
			"previous_path", d.record.PreviousPath,
			"deprecation_version", d.record.DeprecationVersion,
			"new_path", d.record.NewPath,
			"method", method,
		)
		return inner(req)
	}, true
}
