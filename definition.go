// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import (
	"fmt"
	"slices"
)

// Definition is the declared schema of one resource kind: an ordered field
// list plus the JSON:API type name shared by all instances.
//
// A definition is built once at model-declaration time and must be treated as
// immutable afterwards. RegisterLinkFactory and SetIdentifierMeta belong to
// that declaration phase; concurrent renders over a fully declared definition
// need no locking.
type Definition struct {
	resourceName   string
	fields         []Field
	fieldIndex     map[string]int
	linkNames      []string
	linkFactories  map[string]LinkFunc
	identifierMeta []string
	abstract       bool
}

// NewDefinition builds a concrete resource definition.
//
// Field declaration order is preserved and drives attribute order in rendered
// documents. The definition must declare a field named "id", the conventional
// identifier; it is never rendered inside attributes.
func NewDefinition(resourceName string, fields ...Field) (*Definition, error) {
	if resourceName == "" {
		return nil, ErrResourceName
	}

	def := &Definition{
		resourceName:  resourceName,
		linkFactories: make(map[string]LinkFunc),
	}

	if err := def.addFields(fields); err != nil {
		return nil, err
	}

	if _, ok := def.fieldIndex[identifierFieldName]; !ok {
		return nil, fmt.Errorf("%w: definition %q declares no %q field",
			ErrMissingIdentifier, resourceName, identifierFieldName)
	}

	return def, nil
}

// NewAbstractDefinition builds a field-only definition intended to be extended.
//
// An abstract definition has no resource name, needs no identifier field and
// cannot be instantiated; Extend derives concrete definitions from it.
func NewAbstractDefinition(fields ...Field) (*Definition, error) {
	def := &Definition{
		abstract:      true,
		linkFactories: make(map[string]LinkFunc),
	}

	if err := def.addFields(fields); err != nil {
		return nil, err
	}

	return def, nil
}

// Extend builds a concrete definition inheriting all fields of the receiver.
// Base fields keep their position before the extension fields.
func (d *Definition) Extend(resourceName string, fields ...Field) (*Definition, error) {
	combined := make([]Field, 0, len(d.fields)+len(fields))
	combined = append(combined, d.fields...)
	combined = append(combined, fields...)

	return NewDefinition(resourceName, combined...)
}

// addFields validates and indexes declared fields preserving order.
func (d *Definition) addFields(fields []Field) error {
	d.fields = make([]Field, 0, len(fields))
	d.fieldIndex = make(map[string]int, len(fields))

	for _, field := range fields {
		if err := field.validate(); err != nil {
			return err
		}

		if _, exists := d.fieldIndex[field.Name]; exists {
			return fmt.Errorf("%w %q", ErrDuplicateField, field.Name)
		}

		d.fieldIndex[field.Name] = len(d.fields)
		d.fields = append(d.fields, field)
	}

	return nil
}

// SetIdentifierMeta declares fields surfaced in the identifier "meta" object.
// Every name must be a declared field.
func (d *Definition) SetIdentifierMeta(names ...string) error {
	for _, name := range names {
		if _, ok := d.fieldIndex[name]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownMeta, name)
		}
	}

	d.identifierMeta = slices.Clone(names)
	return nil
}

// ResourceName returns the JSON:API type name of this definition.
func (d *Definition) ResourceName() string {
	return d.resourceName
}

// Abstract reports whether the definition can only be extended, not instantiated.
func (d *Definition) Abstract() bool {
	return d.abstract
}

// Fields returns declared fields in declaration order.
func (d *Definition) Fields() []Field {
	return slices.Clone(d.fields)
}

// AttributeNames returns declared non-identifier field names in declaration order.
func (d *Definition) AttributeNames() []string {
	names := make([]string, 0, len(d.fields))
	for _, field := range d.fields {
		if field.Name == identifierFieldName {
			continue
		}

		names = append(names, field.Name)
	}

	return names
}

// field returns the declared field descriptor by name.
func (d *Definition) field(name string) (Field, bool) {
	index, ok := d.fieldIndex[name]
	if !ok {
		return Field{}, false
	}

	return d.fields[index], true
}
