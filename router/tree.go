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

import "strings"

// edge is a per-segment literal child (linear scan, no map hashing; the route
// set of an internal resource layer is a handful of entries).
type edge struct {
	label string
	node  *node
}

// node is a segment of the route tree. Each node has literal children plus at
// most one parameter child; a node with a non-nil resource terminates a route.
//
// Thread safety: nodes are mutated only during the single-threaded
// configuration phase, before Freeze. After Freeze the tree is immutable and
// safe for concurrent lookups without locking.
type node struct {
	edges    []edge
	param    *paramChild
	resource Resource
	pattern  string // full registered pattern, for logging and deduplication
}

// paramChild captures a dynamic segment such as <stage>. The key is the
// parameter name without the angle brackets.
type paramChild struct {
	key  string
	node *node
}

// findChild returns the literal child for the given segment, or nil.
func (n *node) findChild(segment string) *node {
	for i := range n.edges {
		if n.edges[i].label == segment {
			return n.edges[i].node
		}
	}
	return nil
}

// findOrCreateChild returns the literal child for the given segment, creating
// it if needed.
func (n *node) findOrCreateChild(segment string) *node {
	if child := n.findChild(segment); child != nil {
		return child
	}
	child := &node{}
	n.edges = append(n.edges, edge{label: segment, node: child})
	return child
}

// paramName extracts the name from a <name> segment, or "" for a literal.
func paramName(segment string) string {
	if len(segment) > 2 && segment[0] == '<' && segment[len(segment)-1] == '>' {
		return segment[1 : len(segment)-1]
	}
	return ""
}

// splitPath splits a path into its non-empty segments.
func splitPath(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// add registers a resource under the given pattern. Duplicate terminal
// patterns yield ErrDuplicateRoute. When two parameterized patterns share a
// position, the first registered parameter name is kept; the ordering
// tie-break is stable but implementation-defined.
func (n *node) add(pattern string, res Resource) error {
	current := n
	for _, segment := range splitPath(pattern) {
		if name := paramName(segment); name != "" {
			if current.param == nil {
				current.param = &paramChild{key: name, node: &node{}}
			}
			current = current.param.node
			continue
		}
		current = current.findOrCreateChild(segment)
	}

	if current.resource != nil {
		return ErrDuplicateRoute
	}
	current.resource = res
	current.pattern = pattern
	return nil
}

// lookup walks the tree for the given request path, binding parameter values
// into params. Literal children are tried before the parameter child at every
// depth; the walk is greedy and does not backtrack, so a path that dead-ends
// down a literal edge does not retry the parameter child.
func (n *node) lookup(path string, params Params) (Resource, string, bool) {
	current := n

	start := 0
	if start < len(path) && path[0] == '/' {
		start = 1
	}
	for start < len(path) {
		end := start
		for end < len(path) && path[end] != '/' {
			end++
		}
		segment := path[start:end]
		start = end + 1
		if segment == "" {
			continue
		}

		if next := current.findChild(segment); next != nil {
			current = next
			continue
		}
		if current.param != nil {
			params[current.param.key] = segment
			current = current.param.node
			continue
		}
		return nil, "", false
	}

	if current.resource == nil {
		return nil, "", false
	}
	return current.resource, current.pattern, true
}

// patterns collects all registered patterns below n, for introspection.
func (n *node) patterns(out *[]string) {
	if n.resource != nil {
		*out = append(*out, n.pattern)
	}
	for i := range n.edges {
		n.edges[i].node.patterns(out)
	}
	if n.param != nil {
		n.param.node.patterns(out)
	}
}
