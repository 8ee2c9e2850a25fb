// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attribute is one rendered key/value pair.
type Attribute struct {
	Key   string
	Value any
}

// AttributeMap is an insertion-ordered attribute mapping. JSON and YAML
// encodings emit keys in the stored order, which mirrors field declaration
// order filtered by the render selector.
type AttributeMap struct {
	items []Attribute
}

// Len returns the number of stored attributes.
func (a *AttributeMap) Len() int {
	return len(a.items)
}

// Keys returns attribute keys in stored order.
func (a *AttributeMap) Keys() []string {
	keys := make([]string, 0, len(a.items))
	for _, item := range a.items {
		keys = append(keys, item.Key)
	}

	return keys
}

// Get returns the value stored under key and whether the key exists.
func (a *AttributeMap) Get(key string) (any, bool) {
	for _, item := range a.items {
		if item.Key == key {
			return item.Value, true
		}
	}

	return nil, false
}

// append stores one pair at the end.
func (a *AttributeMap) append(key string, value any) {
	a.items = append(a.items, Attribute{Key: key, Value: value})
}

// MarshalJSON encodes the mapping as a JSON object in stored key order.
func (a *AttributeMap) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(a.items)
}

// MarshalYAML encodes the mapping as an ordered yaml.Node mapping.
func (a *AttributeMap) MarshalYAML() (any, error) {
	return yamlMappingNode(a.items)
}

// Document is the rendered form of one resource instance: the three-part
// {type, id, attributes} object, optionally followed by links and identifier
// meta. Member order in encodings is fixed.
type Document struct {
	Type       string
	ID         any
	Attributes *AttributeMap
	Links      *AttributeMap
	Meta       *AttributeMap
}

// members lists document members in output order, skipping absent optionals.
func (d *Document) members() []Attribute {
	items := []Attribute{
		{Key: "type", Value: d.Type},
		{Key: "id", Value: d.ID},
		{Key: "attributes", Value: d.Attributes},
	}

	if d.Links != nil && d.Links.Len() > 0 {
		items = append(items, Attribute{Key: "links", Value: d.Links})
	}

	if d.Meta != nil && d.Meta.Len() > 0 {
		items = append(items, Attribute{Key: "meta", Value: d.Meta})
	}

	return items
}

// MarshalJSON encodes the document with fixed member order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(d.members())
}

// MarshalYAML encodes the document as an ordered yaml.Node mapping.
func (d *Document) MarshalYAML() (any, error) {
	return yamlMappingNode(d.members())
}

// marshalOrderedJSON encodes key/value pairs as one JSON object preserving order.
func marshalOrderedJSON(items []Attribute) ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')

	for index, item := range items {
		if index > 0 {
			out.WriteByte(',')
		}

		key, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", item.Key, err)
		}

		out.Write(key)
		out.WriteByte(':')
		out.Write(value)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// yamlMappingNode builds an ordered YAML mapping node from key/value pairs.
func yamlMappingNode(items []Attribute) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, item := range items {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Key}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.Value); err != nil {
			return nil, fmt.Errorf("member %q: %w", item.Key, err)
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}

// encodeYAML serializes any yaml.Marshaler value with two-space indent.
func encodeYAML(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
