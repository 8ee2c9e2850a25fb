// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "testing"

// BenchmarkRender measures the pure render path without encoding.
func BenchmarkRender(b *testing.B) {
	def := personDefinition(b)
	instance := guidoInstance(b, def)
	options := Options{Attributes: AllAttributes()}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Render(instance, options); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// BenchmarkRenderJSON measures render plus compact JSON encoding.
func BenchmarkRenderJSON(b *testing.B) {
	def := personDefinition(b)
	instance := guidoInstance(b, def)
	options := Options{Attributes: AllAttributes()}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := RenderJSON(instance, options); err != nil {
			b.Fatalf("RenderJSON: %v", err)
		}
	}
}

// BenchmarkRenderCollection measures the collection path over many rows.
func BenchmarkRenderCollection(b *testing.B) {
	def := personDefinition(b)
	instances := make([]*Instance, 0, 100)
	for i := 0; i < 100; i++ {
		instances = append(instances, guidoInstance(b, def))
	}

	options := Options{Attributes: AllAttributes()}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := RenderCollection(instances, options); err != nil {
			b.Fatalf("RenderCollection: %v", err)
		}
	}
}
