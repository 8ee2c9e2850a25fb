// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "errors"

var (
	// ErrResourceName is returned when a concrete definition has no resource name.
	ErrResourceName = errors.New("resource name must not be empty")
	// ErrFieldName is returned when a field name is not valid snake_case.
	ErrFieldName = errors.New("invalid field name")
	// ErrReservedFieldName is returned when a field uses a reserved document member name.
	ErrReservedFieldName = errors.New("reserved field name")
	// ErrDuplicateField is returned when a definition declares the same field twice.
	ErrDuplicateField = errors.New("duplicate field")
	// ErrMissingIdentifier is returned when a concrete definition has no id field
	// or an instance has no identifier value at render time.
	ErrMissingIdentifier = errors.New("missing identifier")
	// ErrAbstractDefinition is returned when an abstract definition is instantiated.
	ErrAbstractDefinition = errors.New("abstract definition cannot be instantiated")
	// ErrUnknownField is returned when instance values name a field absent from the definition.
	ErrUnknownField = errors.New("unknown field")
	// ErrFieldValue is returned when an instance value contradicts the declared field type.
	ErrFieldValue = errors.New("invalid field value")
	// ErrUnknownAttribute is returned when an explicit selector names an attribute
	// absent from the definition.
	ErrUnknownAttribute = errors.New("unknown required attribute")
	// ErrMissingAttribute is returned when a required field has no value on the instance.
	ErrMissingAttribute = errors.New("missing required attribute")
	// ErrNoSelector is returned when render options carry no attribute selector.
	ErrNoSelector = errors.New("attribute selector must be set")
	// ErrUnknownLink is returned when a requested link has no registered factory.
	ErrUnknownLink = errors.New("unknown link")
	// ErrDuplicateLink is returned when a link factory name is registered twice.
	ErrDuplicateLink = errors.New("duplicate link")
	// ErrUnknownMeta is returned when identifier meta names a field absent from the definition.
	ErrUnknownMeta = errors.New("unknown identifier meta field")
	// ErrReadManifestFile is returned when manifest file loading fails.
	ErrReadManifestFile = errors.New("read manifest file")
	// ErrManifestFormat is returned when requested manifest format is not supported.
	ErrManifestFormat = errors.New("unknown manifest format")
	// ErrDecodeManifest is returned when manifest decoding fails.
	ErrDecodeManifest = errors.New("decode manifest")
	// ErrEncodeDocument is returned when rendered document encoding fails.
	ErrEncodeDocument = errors.New("encode document")
)
