// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "fmt"

// LinkFunc builds one link URL from an instance identifier value.
type LinkFunc func(id any) string

// RegisterLinkFactory registers a named link factory on the definition.
//
// Registration order is preserved in rendered "links" objects. Registering the
// same name twice is an error; factories belong to the declaration phase and
// must not be added once instances are being rendered.
func (d *Definition) RegisterLinkFactory(name string, fn LinkFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: link factory needs a name and a function", ErrUnknownLink)
	}

	if _, exists := d.linkFactories[name]; exists {
		return fmt.Errorf("%w %q", ErrDuplicateLink, name)
	}

	d.linkFactories[name] = fn
	d.linkNames = append(d.linkNames, name)

	return nil
}

// LinkNames returns registered link factory names in registration order.
func (d *Definition) LinkNames() []string {
	names := make([]string, len(d.linkNames))
	copy(names, d.linkNames)

	return names
}

// resolveLinks builds the ordered links attribute list for requested names.
func (d *Definition) resolveLinks(requested []string, id any) ([]Attribute, error) {
	if len(requested) == 0 {
		return nil, nil
	}

	want := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		if _, ok := d.linkFactories[name]; !ok {
			return nil, fmt.Errorf("%w %q for resource %q", ErrUnknownLink, name, d.resourceName)
		}

		want[name] = struct{}{}
	}

	links := make([]Attribute, 0, len(want))
	for _, name := range d.linkNames {
		if _, ok := want[name]; !ok {
			continue
		}

		links = append(links, Attribute{Key: name, Value: d.linkFactories[name](id)})
	}

	return links, nil
}
