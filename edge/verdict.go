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

package edge

import "fmt"

// VerdictKind discriminates the tri-state listener result.
type VerdictKind int

const (
	// KindNotMine signals the request is outside this listener's ownership and
	// the chain should try the next listener. Zero value on purpose: a listener
	// that returns without deciding falls through.
	KindNotMine VerdictKind = iota

	// KindHandled signals the listener wrote the response; the chain stops.
	KindHandled

	// KindRejected signals a definitive failure status the chain must write;
	// later listeners never see the request.
	KindRejected
)

// String makes VerdictKind satisfy fmt.Stringer.
func (k VerdictKind) String() string {
	switch k {
	case KindNotMine:
		return "not-mine"
	case KindHandled:
		return "handled"
	case KindRejected:
		return "rejected"
	default:
		return fmt.Sprintf("verdict(%d)", int(k))
	}
}

// Verdict is a listener's synchronous answer for one request. It replaces
// exception-driven "not found, try next" control flow with an explicit result
// passed up the chain.
type Verdict struct {
	Kind   VerdictKind
	Status int // set only for KindRejected
}

// Handled reports the response as written.
func Handled() Verdict {
	return Verdict{Kind: KindHandled}
}

// NotMine reports the request as outside this listener's ownership.
func NotMine() Verdict {
	return Verdict{Kind: KindNotMine}
}

// Rejected reports a definitive failure with the given HTTP status.
func Rejected(status int) Verdict {
	return Verdict{Kind: KindRejected, Status: status}
}
