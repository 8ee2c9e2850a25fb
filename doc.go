// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

/*
Package jsonapidoc renders declared resource models into JSON:API documents.

A resource kind is declared once as an immutable Definition: an ordered list
of typed fields plus the JSON:API type name. Instances of the definition are
rendered into {type, id, attributes} documents with snake_case field names
converted to camelCase attribute keys. Attribute order always follows field
declaration order.

Declare a resource and render an instance:

	person, err := jsonapidoc.NewDefinition("person",
		jsonapidoc.Field{Name: "id", Type: jsonapidoc.TypeInt},
		jsonapidoc.Field{Name: "first_name", Type: jsonapidoc.TypeString},
		jsonapidoc.Field{Name: "last_name", Type: jsonapidoc.TypeString},
	)
	if err != nil {
		return err
	}

	guido, err := person.NewInstance(map[string]any{
		"id": 1, "first_name": "Guido", "last_name": "Van Rossum",
	})
	if err != nil {
		return err
	}

	data, err := jsonapidoc.RenderJSON(guido, jsonapidoc.Options{
		Attributes: jsonapidoc.AllAttributes(),
	})
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	// {"type":"person","id":1,"attributes":{"firstName":"Guido","lastName":"Van Rossum"}}

Select a subset of attributes instead of all declared ones:

	doc, err := jsonapidoc.Render(guido, jsonapidoc.Options{
		Attributes: jsonapidoc.Attributes("first_name"),
	})

Register link factories on the definition and request them per render:

	err = person.RegisterLinkFactory("self", func(id any) string {
		return fmt.Sprintf("http://my.api/persons/%v", id)
	})

	doc, err := jsonapidoc.Render(guido, jsonapidoc.Options{
		Attributes: jsonapidoc.AllAttributes(),
		Links:      []string{"self"},
	})

Wrap one or many instances into a top-level document:

	collection, err := jsonapidoc.RenderCollection(instances, jsonapidoc.Options{
		Attributes: jsonapidoc.AllAttributes(),
	}, jsonapidoc.Link{Name: "self", URL: "http://my.api/persons"})
	if err != nil {
		return err
	}

	data, err := collection.EncodeJSON()

Load a declarative manifest (YAML, JSON or TOML) and render its rows:

	manifest, err := jsonapidoc.ParseManifestFile("persons.yaml", jsonapidoc.ManifestFormatAuto)
	if err != nil {
		return err
	}

	def, instances, err := manifest.Build()

Rendering is pure and synchronous. Definitions are declared once (including
link factories and identifier meta) and treated as read-only afterwards, so
any number of renders may run in parallel without coordination.

Relationship members are out of scope; attribute values are carried opaquely,
so composite values declared as TypeAny encode as-is without any recursion.
*/
package jsonapidoc
