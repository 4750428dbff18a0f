// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder defines a [Builder] type that may be used
// to build a [types.Schema] step by step.
//
// It is usually more convenient to use the Builder defined by
// the vocabulary package, such as [draft07.Builder].
//
// Keyword arguments are checked as they are added.
// Adding a keyword with the wrong kind of argument,
// or with an argument the keyword rejects, is a programming
// error and panics.
package builder

import (
	"fmt"

	"github.com/altshiftab/eventschema/internal/argtype"
	"github.com/altshiftab/eventschema/pkg/types"
)

// Builder is a JSON schema builder.
// Builder provides a list of methods that may be used to add
// new elements to the schema.
// This should be used by programs that need to create a JSON schema
// from scratch, rather than unmarshaling it from a JSON representation.
type Builder struct {
	s types.Schema
	v *types.Vocabulary
}

// New returns a new [Builder] to build a [*types.Schema]
// described by the [*types.Vocabulary] v.
func New(v *types.Vocabulary) *Builder {
	return &Builder{v: v}
}

// Build builds and returns the [*types.Schema].
func (b *Builder) Build() *types.Schema {
	s := b.s.Clone()
	s.Finalize(b.v)
	return s
}

// NewBuilder returns a new Builder with the same vocabulary.
func (b *Builder) NewBuilder() *Builder {
	return New(b.v)
}

// AddBool adds a keyword whose argument is a bool.
// This panics if the keyword does not expect a bool.
func (b *Builder) AddBool(keyword *types.Keyword, v bool) *Builder {
	return b.add(keyword, types.ArgTypeBool, types.PartBool(v))
}

// AddString adds a keyword whose argument is a string.
func (b *Builder) AddString(keyword *types.Keyword, s string) *Builder {
	if keyword.ArgType == types.ArgTypeStringOrStrings {
		return b.add(keyword, types.ArgTypeStringOrStrings, types.PartStringOrStrings{String: s})
	}
	return b.add(keyword, types.ArgTypeString, types.PartString(s))
}

// AddStrings adds a keyword whose argument is an array of strings.
func (b *Builder) AddStrings(keyword *types.Keyword, s []string) *Builder {
	if keyword.ArgType == types.ArgTypeStringOrStrings {
		return b.add(keyword, types.ArgTypeStringOrStrings, types.PartStringOrStrings{Strings: s})
	}
	return b.add(keyword, types.ArgTypeStrings, types.PartStrings(s))
}

// AddInt adds a keyword whose argument is an int.
func (b *Builder) AddInt(keyword *types.Keyword, i int64) *Builder {
	return b.add(keyword, types.ArgTypeInt, types.PartInt(i))
}

// AddFloat adds a keyword whose argument is a float.
func (b *Builder) AddFloat(keyword *types.Keyword, f float64) *Builder {
	return b.add(keyword, types.ArgTypeFloat, types.PartFloat(f))
}

// AddSchema adds a keyword whose argument is a schema.
// This panics if the schema is nil.
func (b *Builder) AddSchema(keyword *types.Keyword, s *types.Schema) *Builder {
	if s == nil {
		panic(fmt.Sprintf("%s schema is nil", keyword.Name))
	}
	return b.add(keyword, types.ArgTypeSchema, types.PartSchema{S: s})
}

// AddMapSchema adds a keyword whose argument is a mapping
// from strings to schemas.
// This panics if any schema is nil.
func (b *Builder) AddMapSchema(keyword *types.Keyword, m map[string]*types.Schema) *Builder {
	for name, s := range m {
		if s == nil {
			panic(fmt.Sprintf("%s schema %q is nil", keyword.Name, name))
		}
	}
	return b.add(keyword, types.ArgTypeMapSchema, types.PartMapSchema(m))
}

// AddAny adds a keyword whose argument has any type.
func (b *Builder) AddAny(keyword *types.Keyword, v any) *Builder {
	return b.add(keyword, types.ArgTypeAny, types.PartAny{V: v})
}

// AddSchemaParts adds a list of parts.
func (b *Builder) AddSchemaParts(parts []types.Part) *Builder {
	b.s.Parts = append(b.s.Parts, parts...)
	return b
}

// add checks and appends a part.
func (b *Builder) add(keyword *types.Keyword, argType types.ArgType, pv types.PartValue) *Builder {
	b.check(keyword, argType)
	if keyword.Check != nil {
		if err := keyword.Check(pv); err != nil {
			panic(fmt.Sprintf("%s: %v", keyword.Name, err))
		}
	}
	b.s.Parts = append(b.s.Parts, types.MakePart(keyword, pv))
	return b
}

// check panics if a keyword is used with the wrong type.
func (b *Builder) check(keyword *types.Keyword, want types.ArgType) {
	switch keyword.ArgType {
	case want:
	case types.ArgTypeAny:
		if want != types.ArgTypeAny {
			panic(fmt.Sprintf("Add%s called for %s which expects Any", argtype.Name(want), keyword.Name))
		}
	default:
		panic(fmt.Sprintf("Add%s called for %s which expects %s", argtype.Name(want), keyword.Name, argtype.Name(keyword.ArgType)))
	}
}
