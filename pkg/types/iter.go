// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"iter"
	"maps"
	"slices"
)

// Children returns an iterator over the immediate subschemas.
// The first iterator value is the name of the schema as used in a JSON pointer,
// with property names escaped; the second is the schema itself.
func (s *Schema) Children() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		for _, part := range s.Parts {
			switch part.Keyword.ArgType {
			case ArgTypeSchema:
				if !yield(part.Keyword.Name, part.Value.(PartSchema).S) {
					return
				}

			case ArgTypeMapSchema:
				// Sort for determinism.
				m := part.Value.(PartMapSchema)
				for _, key := range slices.Sorted(maps.Keys(m)) {
					if !yield(part.Keyword.Name+"/"+tokenEscaper.Replace(key), m[key]) {
						return
					}
				}
			}
		}
	}
}

// Walk calls fn for s and each of its descendants, depth first.
// The path is the JSON pointer of the schema relative to s.
// If fn returns false, the descendants of that schema are skipped.
func (s *Schema) Walk(fn func(path string, s *Schema) bool) {
	s.walk("", fn)
}

func (s *Schema) walk(path string, fn func(string, *Schema) bool) {
	if !fn(path, s) {
		return
	}
	for name, sub := range s.Children() {
		sub.walk(path+"/"+name, fn)
	}
}
