// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "fmt"

// Options configures rendering of one instance into a document.
type Options struct {
	// Attributes selects which declared attributes to include. Required.
	Attributes Selector
	// Links names registered link factories to evaluate for this document.
	Links []string
}

// Render transforms a resource instance into a JSON:API document.
//
// The selector's explicit names must be a subset of the definition's declared
// non-identifier attribute names, otherwise ErrUnknownAttribute is returned
// and no document is produced. A declared required field with no value on the
// instance fails with ErrMissingAttribute before assembly. Attribute keys are
// converted to camelCase and keep declaration order filtered by the selector.
func Render(instance *Instance, opt Options) (*Document, error) {
	def := instance.def

	if !opt.Attributes.set {
		return nil, fmt.Errorf("%w: use AllAttributes or Attributes", ErrNoSelector)
	}

	if err := checkSelector(def, opt.Attributes); err != nil {
		return nil, err
	}

	if err := checkRequired(instance); err != nil {
		return nil, err
	}

	id := instance.ID()
	if id == nil {
		return nil, fmt.Errorf("%w: instance of %q has no identifier value",
			ErrMissingIdentifier, def.resourceName)
	}

	attributes := &AttributeMap{}
	for _, field := range def.fields {
		if field.Name == identifierFieldName {
			continue
		}

		if !opt.Attributes.all && !opt.Attributes.contains(field.Name) {
			continue
		}

		value, ok := instance.values[field.Name]
		if !ok {
			continue
		}

		attributes.append(snakeToCamelCase(field.Name), value)
	}

	document := &Document{
		Type:       def.resourceName,
		ID:         id,
		Attributes: attributes,
	}

	links, err := def.resolveLinks(opt.Links, id)
	if err != nil {
		return nil, err
	}

	if links != nil {
		document.Links = &AttributeMap{items: links}
	}

	if meta := identifierMeta(instance); meta != nil {
		document.Meta = meta
	}

	return document, nil
}

// RenderJSON renders one instance and encodes the document as compact JSON.
func RenderJSON(instance *Instance, opt Options) ([]byte, error) {
	document, err := Render(instance, opt)
	if err != nil {
		return nil, err
	}

	data, err := document.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocument, err)
	}

	return data, nil
}

// RenderYAML renders one instance and encodes the document as YAML.
func RenderYAML(instance *Instance, opt Options) ([]byte, error) {
	document, err := Render(instance, opt)
	if err != nil {
		return nil, err
	}

	data, err := encodeYAML(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocument, err)
	}

	return data, nil
}

// checkSelector validates explicit selector names against declared attributes.
// The identifier is not an attribute, requesting it fails like any unknown name.
func checkSelector(def *Definition, selector Selector) error {
	if selector.all {
		return nil
	}

	for _, name := range selector.names {
		if name == identifierFieldName {
			return fmt.Errorf("%w %q", ErrUnknownAttribute, name)
		}

		if _, ok := def.field(name); !ok {
			return fmt.Errorf("%w %q for resource %q", ErrUnknownAttribute, name, def.resourceName)
		}
	}

	return nil
}

// checkRequired verifies every required declared field has a value on the instance.
func checkRequired(instance *Instance) error {
	for _, field := range instance.def.fields {
		if !field.Required {
			continue
		}

		if _, ok := instance.values[field.Name]; !ok {
			return fmt.Errorf("%w %q on resource %q",
				ErrMissingAttribute, field.Name, instance.def.resourceName)
		}
	}

	return nil
}

// identifierMeta builds the identifier meta object, nil when none is declared.
func identifierMeta(instance *Instance) *AttributeMap {
	names := instance.def.identifierMeta
	if len(names) == 0 {
		return nil
	}

	meta := &AttributeMap{}
	for _, name := range names {
		if value, ok := instance.values[name]; ok {
			meta.append(name, value)
		}
	}

	return meta
}
