// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import (
	"fmt"
	"maps"
)

// Instance is one concrete value set conforming to a resource definition.
type Instance struct {
	def    *Definition
	values map[string]any
}

// NewInstance builds an instance of the definition from named values.
//
// Every value name must be a declared field and every value must satisfy the
// declared type tag. A missing required field is accepted here and reported at
// render time, so partially populated instances can be assembled first.
func (d *Definition) NewInstance(values map[string]any) (*Instance, error) {
	if d.abstract {
		return nil, fmt.Errorf("%w: declare a concrete definition with Extend", ErrAbstractDefinition)
	}

	for name, value := range values {
		field, ok := d.field(name)
		if !ok {
			return nil, fmt.Errorf("%w %q for resource %q", ErrUnknownField, name, d.resourceName)
		}

		if !valueMatchesType(value, field.Type) {
			return nil, fmt.Errorf("%w: field %q declared %s, got %T",
				ErrFieldValue, name, field.Type, value)
		}
	}

	return &Instance{def: d, values: maps.Clone(values)}, nil
}

// Definition returns the definition this instance conforms to.
func (i *Instance) Definition() *Definition {
	return i.def
}

// ID returns the identifier value or nil when unset.
func (i *Instance) ID() any {
	return i.values[identifierFieldName]
}

// Get returns a field value and whether it is set on the instance.
func (i *Instance) Get(name string) (any, bool) {
	value, ok := i.values[name]
	return value, ok
}
