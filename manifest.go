// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFormatAuto detects the format from file extension or content.
	ManifestFormatAuto ManifestFormat = "auto"
	// ManifestFormatYAML decodes the manifest as YAML.
	ManifestFormatYAML ManifestFormat = "yaml"
	// ManifestFormatJSON decodes the manifest as JSON.
	ManifestFormatJSON ManifestFormat = "json"
	// ManifestFormatTOML decodes the manifest as TOML.
	ManifestFormatTOML ManifestFormat = "toml"
)

// ManifestFormat selects the manifest input codec.
type ManifestFormat string

// Manifest is a declarative resource description: one definition plus the
// instance rows to render. It is the file format consumed by cmd/jsonapidoc.
type Manifest struct {
	// Resource is the JSON:API type name.
	Resource string `yaml:"resource" json:"resource" toml:"resource"`
	// Fields declares the ordered field list.
	Fields []ManifestField `yaml:"fields" json:"fields" toml:"fields"`
	// Links declares named link URL templates with an "{id}" placeholder.
	Links []ManifestLink `yaml:"links,omitempty" json:"links,omitempty" toml:"links"`
	// IdentifierMeta names fields surfaced in the identifier meta object.
	IdentifierMeta []string `yaml:"identifier_meta,omitempty" json:"identifier_meta,omitempty" toml:"identifier_meta"`
	// Data holds one value mapping per instance.
	Data []map[string]any `yaml:"data" json:"data" toml:"data"`
}

// ManifestField declares one field of the manifest resource.
type ManifestField struct {
	Name     string `yaml:"name" json:"name" toml:"name"`
	Type     string `yaml:"type" json:"type" toml:"type"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty" toml:"required"`
}

// ManifestLink declares one link factory as a URL template.
type ManifestLink struct {
	Name string `yaml:"name" json:"name" toml:"name"`
	// Template is the link URL with "{id}" replaced by the instance identifier.
	Template string `yaml:"template" json:"template" toml:"template"`
}

// manifestTypeTags maps manifest type spellings to declared field type tags.
var manifestTypeTags = map[string]FieldType{
	"string":  TypeString,
	"str":     TypeString,
	"int":     TypeInt,
	"integer": TypeInt,
	"float":   TypeFloat,
	"number":  TypeFloat,
	"bool":    TypeBool,
	"boolean": TypeBool,
	"any":     TypeAny,
}

// ParseManifestFile reads and decodes a manifest from a file path.
// With ManifestFormatAuto the file extension picks the codec before
// content sniffing is attempted.
func ParseManifestFile(path string, format ManifestFormat) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadManifestFile, err)
	}

	if format == ManifestFormatAuto || format == "" {
		format = formatFromExtension(path)
	}

	return ParseManifest(data, format)
}

// ParseManifest decodes manifest bytes in the selected format.
//
// ManifestFormatAuto treats input starting with "{" as JSON, then tries YAML
// and falls back to TOML.
func ParseManifest(data []byte, format ManifestFormat) (*Manifest, error) {
	switch format {
	case ManifestFormatJSON:
		return decodeManifest(data, "json", func(out *Manifest) error {
			return json.Unmarshal(data, out)
		})
	case ManifestFormatYAML:
		return decodeManifest(data, "yaml", func(out *Manifest) error {
			return yaml.Unmarshal(data, out)
		})
	case ManifestFormatTOML:
		return decodeManifest(data, "toml", func(out *Manifest) error {
			return toml.Unmarshal(data, out)
		})
	case ManifestFormatAuto, "":
		return sniffManifest(data)
	default:
		return nil, fmt.Errorf("%w %q", ErrManifestFormat, format)
	}
}

// decodeManifest runs one codec and wraps its failure uniformly.
func decodeManifest(data []byte, codec string, decode func(*Manifest) error) (*Manifest, error) {
	manifest := &Manifest{}
	if err := decode(manifest); err != nil {
		return nil, fmt.Errorf("%w as %s: %w", ErrDecodeManifest, codec, err)
	}

	return manifest, nil
}

// sniffManifest detects the codec from content.
func sniffManifest(data []byte) (*Manifest, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		return ParseManifest(data, ManifestFormatJSON)
	}

	manifest, yamlErr := ParseManifest(data, ManifestFormatYAML)
	if yamlErr == nil {
		return manifest, nil
	}

	manifest, tomlErr := ParseManifest(data, ManifestFormatTOML)
	if tomlErr == nil {
		return manifest, nil
	}

	return nil, fmt.Errorf("%w: not yaml (%v), not toml (%v)", ErrDecodeManifest, yamlErr, tomlErr)
}

// formatFromExtension maps a manifest file extension to a codec.
func formatFromExtension(path string) ManifestFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ManifestFormatJSON
	case ".toml":
		return ManifestFormatTOML
	case ".yaml", ".yml":
		return ManifestFormatYAML
	default:
		return ManifestFormatAuto
	}
}

// Build constructs the declared definition and one instance per data row.
func (m *Manifest) Build() (*Definition, []*Instance, error) {
	fields := make([]Field, 0, len(m.Fields))
	for _, declared := range m.Fields {
		tag, ok := manifestTypeTags[strings.ToLower(strings.TrimSpace(declared.Type))]
		if !ok {
			return nil, nil, fmt.Errorf("%w %q: unknown type %q",
				ErrFieldName, declared.Name, declared.Type)
		}

		fields = append(fields, Field{
			Name:     declared.Name,
			Type:     tag,
			Required: declared.Required,
		})
	}

	def, err := NewDefinition(m.Resource, fields...)
	if err != nil {
		return nil, nil, err
	}

	for _, link := range m.Links {
		if err := def.RegisterLinkFactory(link.Name, linkTemplateFunc(link.Template)); err != nil {
			return nil, nil, err
		}
	}

	if len(m.IdentifierMeta) > 0 {
		if err := def.SetIdentifierMeta(m.IdentifierMeta...); err != nil {
			return nil, nil, err
		}
	}

	instances := make([]*Instance, 0, len(m.Data))
	for index, row := range m.Data {
		instance, err := def.NewInstance(row)
		if err != nil {
			return nil, nil, fmt.Errorf("data[%d]: %w", index, err)
		}

		instances = append(instances, instance)
	}

	return def, instances, nil
}

// linkTemplateFunc builds a link factory substituting "{id}" in the template.
func linkTemplateFunc(template string) LinkFunc {
	return func(id any) string {
		return strings.ReplaceAll(template, "{id}", fmt.Sprint(id))
	}
}
