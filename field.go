// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "fmt"

const (
	// TypeString declares a text field.
	TypeString FieldType = "string"
	// TypeInt declares an integer field.
	TypeInt FieldType = "int"
	// TypeFloat declares a floating point field.
	TypeFloat FieldType = "float"
	// TypeBool declares a boolean field.
	TypeBool FieldType = "bool"
	// TypeAny declares a field carried and encoded as-is without a kind check.
	// Composite values (maps, slices) pass through this tag untouched.
	TypeAny FieldType = "any"
)

// FieldType is a declared scalar kind tag for one resource field.
type FieldType string

// identifierFieldName is the conventional identifier field in every concrete definition.
const identifierFieldName = "id"

// reservedFieldNames are document member names that cannot be declared as fields.
var reservedFieldNames = map[string]struct{}{
	"type":          {},
	"links":         {},
	"relationships": {},
	"meta":          {},
}

// Field describes one declared resource field.
type Field struct {
	// Name is the snake_case field name as declared.
	Name string
	// Type is the declared kind tag checked on instance construction.
	Type FieldType
	// Required makes absence of a value a render-time error.
	Required bool
}

// validate checks field name and type tag validity.
func (f Field) validate() error {
	if !isSnakeCase(f.Name) {
		return fmt.Errorf("%w %q", ErrFieldName, f.Name)
	}

	if _, reserved := reservedFieldNames[f.Name]; reserved {
		return fmt.Errorf("%w %q", ErrReservedFieldName, f.Name)
	}

	switch f.Type {
	case TypeString, TypeInt, TypeFloat, TypeBool, TypeAny:
		return nil
	default:
		return fmt.Errorf("%w %q: unknown type tag %q", ErrFieldName, f.Name, f.Type)
	}
}

// isSnakeCase reports whether name is lower snake_case starting with a letter.
func isSnakeCase(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
			if i == 0 {
				return false
			}
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return name[len(name)-1] != '_'
}

// valueMatchesType reports whether a runtime value satisfies the declared tag.
// Nil values always pass; absence vs required is checked at render time.
func valueMatchesType(value any, tag FieldType) bool {
	if value == nil || tag == TypeAny {
		return true
	}

	switch tag {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeInt:
		switch v := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			// JSON delivers whole numbers as float64.
			return v == float64(int64(v))
		}

		return false
	case TypeFloat:
		switch value.(type) {
		case float32, float64, int, int64:
			return true
		}

		return false
	case TypeBool:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}
