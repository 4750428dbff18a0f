// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft07

import (
	"github.com/altshiftab/eventschema/pkg/builder"
	"github.com/altshiftab/eventschema/pkg/types"
)

// Builder is a JSON schema builder.
// Builder provides a list of methods that may be used to add
// new elements to the schema.
// This should be used by programs that need to create a JSON schema
// from scratch, rather than unmarshaling it from a JSON representation.
//
// Programs should use [NewBuilder] or [NewSubBuilder] to get a Builder.
type Builder struct {
	b *builder.Builder
}

// NewBuilder returns a [Builder] to use to build a JSON schema.
// Use this to build an entirely new schema.
func NewBuilder() *Builder {
	b := &Builder{builder.New(Vocabulary)}
	b.b.AddString(&types.SchemaKeyword, SchemaID)
	return b
}

// NewSubBuilder returns a [Builder] like [NewBuilder],
// but is for a schema that will be part of some larger schema.
func NewSubBuilder() *Builder {
	return &Builder{builder.New(Vocabulary)}
}

// Build returns a newly built schema.
func (b *Builder) Build() *types.Schema {
	return b.b.Build()
}

// BoolSchema returns a newly built schema.
// If acceptAll is true the schema accepts all instance values,
// if false it accepts none.
// This is the JSON schema true and false values.
func BoolSchema(acceptAll bool) *types.Schema {
	b := NewSubBuilder()
	b.b.AddBool(&types.BoolKeyword, acceptAll)
	return b.Build()
}

// AddType adds a type keyword with one or more type names.
func (b *Builder) AddType(names ...string) *Builder {
	if len(names) == 1 {
		b.b.AddString(KeywordType, names[0])
	} else {
		b.b.AddStrings(KeywordType, names)
	}
	return b
}

// AddRequired adds a required keyword.
func (b *Builder) AddRequired(names ...string) *Builder {
	b.b.AddStrings(KeywordRequired, names)
	return b
}

// AddAdditionalProperties adds an additionalProperties keyword
// with a schema argument.
func (b *Builder) AddAdditionalProperties(s *types.Schema) *Builder {
	b.b.AddSchema(KeywordAdditionalProperties, s)
	return b
}

// AddNoAdditionalProperties adds "additionalProperties": false.
func (b *Builder) AddNoAdditionalProperties() *Builder {
	return b.AddAdditionalProperties(BoolSchema(false))
}

// AddProperties adds a properties keyword.
func (b *Builder) AddProperties(m map[string]*types.Schema) *Builder {
	b.b.AddMapSchema(KeywordProperties, m)
	return b
}

// AddMinItems adds a minItems keyword.
func (b *Builder) AddMinItems(n int64) *Builder {
	b.b.AddInt(KeywordMinItems, n)
	return b
}

// AddItems adds an items keyword.
func (b *Builder) AddItems(s *types.Schema) *Builder {
	b.b.AddSchema(KeywordItems, s)
	return b
}

// AddMinimum adds a minimum keyword.
func (b *Builder) AddMinimum(f float64) *Builder {
	b.b.AddFloat(KeywordMinimum, f)
	return b
}

// AddMaximum adds a maximum keyword.
func (b *Builder) AddMaximum(f float64) *Builder {
	b.b.AddFloat(KeywordMaximum, f)
	return b
}

// AddFormat adds a format keyword.
// This panics if the format is not known.
func (b *Builder) AddFormat(name string) *Builder {
	b.b.AddString(KeywordFormat, name)
	return b
}

// AddEnum adds an enum keyword.
func (b *Builder) AddEnum(values ...any) *Builder {
	if values == nil {
		values = []any{}
	}
	b.b.AddAny(KeywordEnum, values)
	return b
}

// AddTitle adds a title annotation.
func (b *Builder) AddTitle(s string) *Builder {
	b.b.AddString(KeywordTitle, s)
	return b
}

// AddDescription adds a description annotation.
func (b *Builder) AddDescription(s string) *Builder {
	b.b.AddString(KeywordDescription, s)
	return b
}

// AddSchemaParts adds a list of parts.
func (b *Builder) AddSchemaParts(parts []types.Part) *Builder {
	b.b.AddSchemaParts(parts)
	return b
}
