// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import "testing"

func TestSnakeToCamelCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single segment", "id", "id"},
		{"two segments", "first_name", "firstName"},
		{"three segments", "home_street_number", "homeStreetNumber"},
		{"short segments", "a_b_c", "aBC"},
		{"consecutive separators collapse", "first__name", "firstName"},
		{"leading separator ignored", "_first_name", "firstName"},
		{"trailing separator ignored", "first_name_", "firstName"},
		{"only separators", "___", ""},
		{"no separator passes through", "alreadyCamel", "alreadyCamel"},
		{"digits kept", "line_2", "line2"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := snakeToCamelCase(tc.in); got != tc.want {
				t.Fatalf("snakeToCamelCase(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSnakeToCamelCaseIdempotentOnConvertedNames(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"first_name", "home_street_number", "a_b_c"} {
		once := snakeToCamelCase(in)
		if twice := snakeToCamelCase(once); twice != once {
			t.Fatalf("conversion of %q not idempotent: %q then %q", in, once, twice)
		}
	}
}
