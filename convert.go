// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

package jsonapidoc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// snakeToCamelCase converts a snake_case name into camelCase.
//
// The first segment keeps its case, every following segment gets its first
// letter upper-cased, separators are dropped. Consecutive separators collapse
// to nothing and a leading separator is ignored, so "first__name" and
// "_first_name" both convert the same as "first_name". A name without
// separators passes through unchanged.
func snakeToCamelCase(name string) string {
	if !strings.ContainsRune(name, '_') {
		return name
	}

	var out strings.Builder
	out.Grow(len(name))

	for _, segment := range strings.Split(name, "_") {
		if segment == "" {
			continue
		}

		if out.Len() == 0 {
			out.WriteString(segment)
			continue
		}

		first, size := utf8.DecodeRuneInString(segment)
		out.WriteRune(unicode.ToUpper(first))
		out.WriteString(segment[size:])
	}

	return out.String()
}
