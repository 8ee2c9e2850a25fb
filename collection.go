// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "fmt"

// Link is one named document-level link.
type Link struct {
	Name string
	URL  string
}

// Collection is a top-level JSON:API document wrapping rendered resources
// under a "data" member, optionally followed by document-level links.
type Collection struct {
	// Single emits Data[0] as a lone object instead of an array.
	Single bool
	Data   []*Document
	Links  []Link
}

// RenderCollection renders every instance with shared options and wraps the
// results as {"data": [...]}. All instances are rendered before anything is
// returned, so an error on any row produces no document at all.
func RenderCollection(instances []*Instance, opt Options, links ...Link) (*Collection, error) {
	documents := make([]*Document, 0, len(instances))
	for index, instance := range instances {
		document, err := Render(instance, opt)
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", index, err)
		}

		documents = append(documents, document)
	}

	return &Collection{Data: documents, Links: links}, nil
}

// RenderOne renders a single instance wrapped as {"data": {...}}.
func RenderOne(instance *Instance, opt Options, links ...Link) (*Collection, error) {
	document, err := Render(instance, opt)
	if err != nil {
		return nil, err
	}

	return &Collection{Single: true, Data: []*Document{document}, Links: links}, nil
}

// members lists top-level members in output order.
func (c *Collection) members() []Attribute {
	var data any
	switch {
	case c.Single && len(c.Data) > 0:
		data = c.Data[0]
	case c.Data == nil:
		// Empty collection stays an array, not null.
		data = []*Document{}
	default:
		data = c.Data
	}

	items := []Attribute{{Key: "data", Value: data}}

	if len(c.Links) > 0 {
		links := &AttributeMap{}
		for _, link := range c.Links {
			links.append(link.Name, link.URL)
		}

		items = append(items, Attribute{Key: "links", Value: links})
	}

	return items
}

// MarshalJSON encodes the top-level document with fixed member order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(c.members())
}

// MarshalYAML encodes the top-level document as an ordered yaml.Node mapping.
func (c *Collection) MarshalYAML() (any, error) {
	return yamlMappingNode(c.members())
}

// EncodeJSON serializes the collection as compact JSON bytes.
func (c *Collection) EncodeJSON() ([]byte, error) {
	data, err := c.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocument, err)
	}

	return data, nil
}

// EncodeYAML serializes the collection as YAML bytes.
func (c *Collection) EncodeYAML() ([]byte, error) {
	data, err := encodeYAML(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeDocument, err)
	}

	return data, nil
}
