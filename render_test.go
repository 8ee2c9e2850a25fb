// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func assertContains(t *testing.T, got, want string) {
	t.Helper()

	if !strings.Contains(got, want) {
		t.Fatalf("output does not contain %q:\n%s", want, got)
	}
}

func assertNotContains(t *testing.T, got, unwanted string) {
	t.Helper()

	if strings.Contains(got, unwanted) {
		t.Fatalf("output must not contain %q:\n%s", unwanted, got)
	}
}

func TestRenderAllAttributes(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	document, err := Render(instance, Options{Attributes: AllAttributes()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if document.Type != "person" {
		t.Fatalf("type = %q, want %q", document.Type, "person")
	}

	if document.ID != 1 {
		t.Fatalf("id = %v, want 1", document.ID)
	}

	got := strings.Join(document.Attributes.Keys(), ",")
	want := "firstName,lastName"
	if got != want {
		t.Fatalf("attribute keys = %q, want %q", got, want)
	}

	if value, _ := document.Attributes.Get("firstName"); value != "Guido" {
		t.Fatalf("firstName = %v, want Guido", value)
	}

	if value, _ := document.Attributes.Get("lastName"); value != "Van Rossum" {
		t.Fatalf("lastName = %v, want Van Rossum", value)
	}
}

func TestRenderExplicitSelector(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	document, err := Render(instance, Options{Attributes: Attributes("first_name")})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := strings.Join(document.Attributes.Keys(), ",")
	if got != "firstName" {
		t.Fatalf("attribute keys = %q, want %q", got, "firstName")
	}
}

func TestRenderSelectorKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition("thing",
		Field{Name: "id", Type: TypeInt},
		Field{Name: "alpha", Type: TypeString},
		Field{Name: "beta", Type: TypeString},
		Field{Name: "gamma", Type: TypeString},
	)
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}

	instance, err := def.NewInstance(map[string]any{
		"id": 1, "alpha": "a", "beta": "b", "gamma": "c",
	})
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	// Selector order must not leak into output order.
	document, err := Render(instance, Options{Attributes: Attributes("gamma", "alpha")})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := strings.Join(document.Attributes.Keys(), ",")
	want := "alpha,gamma"
	if got != want {
		t.Fatalf("attribute keys = %q, want %q", got, want)
	}
}

func TestRenderUnknownSelectorName(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	document, err := Render(instance, Options{Attributes: Attributes("nickname")})
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("error = %v, want ErrUnknownAttribute", err)
	}

	if document != nil {
		t.Fatal("no document must be produced on configuration error")
	}
}

func TestRenderSelectorRejectsIdentifier(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	_, err := Render(instance, Options{Attributes: Attributes("id")})
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("error = %v, want ErrUnknownAttribute", err)
	}
}

func TestRenderMissingRequiredAttribute(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition("person",
		Field{Name: "id", Type: TypeInt},
		Field{Name: "first_name", Type: TypeString, Required: true},
	)
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}

	instance, err := def.NewInstance(map[string]any{"id": 1})
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	document, err := Render(instance, Options{Attributes: AllAttributes()})
	if !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("error = %v, want ErrMissingAttribute", err)
	}

	if document != nil {
		t.Fatal("no document must be produced when a required attribute is missing")
	}
}

func TestRenderRequiresSelector(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	if _, err := Render(instance, Options{}); !errors.Is(err, ErrNoSelector) {
		t.Fatalf("error = %v, want ErrNoSelector", err)
	}
}

func TestRenderMissingIdentifierValue(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance, err := def.NewInstance(map[string]any{"first_name": "Guido"})
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	if _, err := Render(instance, Options{Attributes: AllAttributes()}); !errors.Is(err, ErrMissingIdentifier) {
		t.Fatalf("error = %v, want ErrMissingIdentifier", err)
	}
}

func TestRenderEmptyExplicitSelector(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	document, err := Render(instance, Options{Attributes: Attributes()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if document.Attributes.Len() != 0 {
		t.Fatalf("attributes = %v, want empty", document.Attributes.Keys())
	}
}

func TestRenderSkipsUnsetOptionalAttribute(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance, err := def.NewInstance(map[string]any{"id": 1, "first_name": "Guido"})
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	document, err := Render(instance, Options{Attributes: AllAttributes()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if _, ok := document.Attributes.Get("lastName"); ok {
		t.Fatal("unset optional attribute must be absent, not null")
	}
}

func TestRenderJSONMemberOrder(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	data, err := RenderJSON(instance, Options{Attributes: AllAttributes()})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	got := string(data)
	want := `{"type":"person","id":1,"attributes":{"firstName":"Guido","lastName":"Van Rossum"}}`
	if got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestRenderWithLinks(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	err := def.RegisterLinkFactory("self", func(id any) string {
		return fmt.Sprintf("http://my.api/persons/%v", id)
	})
	if err != nil {
		t.Fatalf("RegisterLinkFactory: %v", err)
	}

	instance := guidoInstance(t, def)
	data, err := RenderJSON(instance, Options{
		Attributes: AllAttributes(),
		Links:      []string{"self"},
	})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	assertContains(t, string(data), `"links":{"self":"http://my.api/persons/1"}`)
}

func TestRenderUnknownLink(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	_, err := Render(instance, Options{
		Attributes: AllAttributes(),
		Links:      []string{"self"},
	})
	if !errors.Is(err, ErrUnknownLink) {
		t.Fatalf("error = %v, want ErrUnknownLink", err)
	}
}

func TestRenderLinksKeepRegistrationOrder(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	for _, name := range []string{"self", "related"} {
		err := def.RegisterLinkFactory(name, func(id any) string {
			return fmt.Sprintf("http://my.api/%s/%v", name, id)
		})
		if err != nil {
			t.Fatalf("RegisterLinkFactory %q: %v", name, err)
		}
	}

	instance := guidoInstance(t, def)
	document, err := Render(instance, Options{
		Attributes: AllAttributes(),
		Links:      []string{"related", "self"},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := strings.Join(document.Links.Keys(), ",")
	want := "self,related"
	if got != want {
		t.Fatalf("link order = %q, want %q", got, want)
	}
}

func TestRenderIdentifierMeta(t *testing.T) {
	t.Parallel()

	def, err := NewDefinition("person",
		Field{Name: "id", Type: TypeInt},
		Field{Name: "first_name", Type: TypeString},
		Field{Name: "generation", Type: TypeInt},
	)
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}

	if err := def.SetIdentifierMeta("generation"); err != nil {
		t.Fatalf("SetIdentifierMeta: %v", err)
	}

	instance, err := def.NewInstance(map[string]any{
		"id": 1, "first_name": "Guido", "generation": 1,
	})
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}

	data, err := RenderJSON(instance, Options{Attributes: AllAttributes()})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	assertContains(t, string(data), `"meta":{"generation":1}`)
}

func TestRenderYAMLKeepsMemberOrder(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	data, err := RenderYAML(instance, Options{Attributes: AllAttributes()})
	if err != nil {
		t.Fatalf("RenderYAML: %v", err)
	}

	got := string(data)
	want := "type: person\n" +
		"id: 1\n" +
		"attributes:\n" +
		"  firstName: Guido\n" +
		"  lastName: Van Rossum\n"
	if got != want {
		t.Fatalf("yaml output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIdentifierNeverInAttributes(t *testing.T) {
	t.Parallel()

	def := personDefinition(t)
	instance := guidoInstance(t, def)

	data, err := RenderJSON(instance, Options{Attributes: AllAttributes()})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	assertNotContains(t, string(data), `"attributes":{"id"`)

	document, err := Render(instance, Options{Attributes: AllAttributes()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if _, ok := document.Attributes.Get("id"); ok {
		t.Fatal("attributes must never contain the identifier")
	}
}
