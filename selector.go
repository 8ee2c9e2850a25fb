// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "slices"

// Selector specifies which declared attributes a render must include:
// either every declared attribute or an explicit set of names. The zero
// Selector is invalid; build one with AllAttributes or Attributes.
type Selector struct {
	set   bool
	all   bool
	names []string
}

// AllAttributes selects every declared non-identifier attribute.
func AllAttributes() Selector {
	return Selector{set: true, all: true}
}

// Attributes selects only the named declared attributes. The names use the
// declared snake_case spelling; output order still follows declaration order.
// An empty call selects no attributes at all, which is valid.
func Attributes(names ...string) Selector {
	return Selector{set: true, names: slices.Clone(names)}
}

// All reports whether the selector requests every declared attribute.
func (s Selector) All() bool {
	return s.all
}

// Names returns the explicit attribute names, nil for an all-selector.
func (s Selector) Names() []string {
	return slices.Clone(s.names)
}

// contains reports whether an explicit selector includes name.
func (s Selector) contains(name string) bool {
	return slices.Contains(s.names, name)
}
