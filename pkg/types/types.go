// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types defines the JSON schema types.
// Most programs do not need to use this package.
//
// This package is used with a specific JSON schema vocabulary,
// that must be imported separately. For example,
//
//	import _ "github.com/altshiftab/eventschema/pkg/draft07"
package types

import (
	"fmt"
	"slices"
	"strings"
)

// Schema is a JSON schema.
// A JSON schema determines whether an instance is valid or not.
// Do not create values of this type directly.
// Instead, unmarshal from JSON or use a vocabulary-specific Builder.
//
// If you have an existing Schema, you can edit the Parts list,
// but you must call [Schema.Finalize] afterward.
// A Schema must not be modified while it is being used to validate.
type Schema struct {
	// The different elements of this Schema.
	Parts []Part
}

// Clone returns a copy of a Schema.
func (s *Schema) Clone() *Schema {
	return &Schema{Parts: slices.Clone(s.Parts)}
}

// String returns a somewhat readable representation of a Schema.
// The format differs from JSON output.
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteString("Schema{")
	for i, part := range s.Parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "{%s %v}", part.Keyword.Name, part.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Part is one part of a JSON schema.
// This is a keyword, such as "type" or "properties",
// along with the value associated with that keyword in the schema.
type Part struct {
	Keyword *Keyword
	Value   PartValue
}

// MakePart builds a Part.
func MakePart(keyword *Keyword, value PartValue) Part {
	return Part{
		Keyword: keyword,
		Value:   value,
	}
}

// Keyword is a schema keyword.
type Keyword struct {
	// Name is the keyword, such as type, required, and so forth.
	Name string

	// ArgType is the type of argument expected.
	ArgType ArgType

	// Validate is a function that checks whether the instance matches
	// the keyword. arg is the value from the schema, which is [Part.Value].
	//
	// The function returns an error if any.
	// A failure to validate will be type [*ValidationError]
	// or type [*ValidationErrors].
	// Any other error type indicates that validation could not complete.
	Validate func(arg PartValue, instance any, state *ValidationState) error

	// Check, if not nil, reports whether arg is acceptable
	// for this keyword. It is called when the schema is built,
	// so that a bad schema is rejected before any instance is seen.
	Check func(arg PartValue) error
}

// Equal reports whether two keywords are equal.
// This is for the benefit of the github.com/google/go-cmp package,
// which won't compare the Validate function values.
func (k1 Keyword) Equal(k2 Keyword) bool {
	return k1.Name == k2.Name && k1.ArgType == k2.ArgType
}

// PartValue is the value of a JSON schema element.
// This is accessed via a type switch.
// The possible types are
//   - [PartBool]
//   - [PartString]
//   - [PartStrings]
//   - [PartStringOrStrings]
//   - [PartInt]
//   - [PartFloat]
//   - [PartSchema]
//   - [PartMapSchema]
//   - [PartAny]
type PartValue interface {
	partValue() // restrict to types defined in this package
}

// PartBool is a schema part value that is a bool.
// This is a compact representation of a JSON schema.
// A value of true is the schema that matches every value.
// A value of false is the schema that matches no values.
type PartBool bool

// PartString is a schema part value that is a string.
// For example, the schema keyword "format" has a string
// value naming the format that the instance must match.
type PartString string

// PartStrings is a schema part value that is a list of strings.
// For example, the schema keyword "required" takes a list of strings
// where each string is a property that the instance is required to have.
type PartStrings []string

// PartStringOrStrings is a schema part that is either a single string
// or a list of strings. This is basically just for the "type" keyword,
// which takes either a single type string or an array of type strings.
// If the Strings is not nil, the String field must be the empty string.
type PartStringOrStrings struct {
	String  string
	Strings []string
}

// List returns the strings as a slice.
func (p PartStringOrStrings) List() []string {
	if p.Strings != nil {
		return p.Strings
	}
	return []string{p.String}
}

// PartInt is a schema part value that is an integer.
// For example, the schema keyword "minItems" specifies
// the minimum length of an array.
type PartInt int64

// PartFloat is a schema part value that is a floating-point number.
// For example, the schema keyword "maximum" specifies the maximum
// value of a number.
type PartFloat float64

// PartSchema is a schema part value that is a reference to a schema.
// For example, the schema keyword "items" refers to a schema
// that each element of an array must match.
type PartSchema struct {
	S *Schema
}

// PartMapSchema is a schema part value that is a map from strings to schemas.
// For example, the schema keyword "properties" has a mapping
// from property names to schemas, and matches an instance if the
// corresponding instance properties match the schemas.
type PartMapSchema map[string]*Schema

// PartAny is a schema part value that is an arbitrary type.
// For example, the schema keyword "enum" expects an array,
// and matches an instance if the instance is equal to one of the
// elements in the array.
type PartAny struct {
	V any
}

// Define a partValue method for each permitted Part type.
// This implements the [PartValue] interface.

func (PartBool) partValue()            {}
func (PartString) partValue()          {}
func (PartStrings) partValue()         {}
func (PartStringOrStrings) partValue() {}
func (PartInt) partValue()             {}
func (PartFloat) partValue()           {}
func (PartSchema) partValue()          {}
func (PartMapSchema) partValue()       {}
func (PartAny) partValue()             {}

// ArgType is an enumeration of the possible schema part types.
type ArgType int

const (
	ArgTypeBool ArgType = iota + 1
	ArgTypeString
	ArgTypeStrings
	ArgTypeStringOrStrings
	ArgTypeInt
	ArgTypeFloat
	ArgTypeSchema
	ArgTypeMapSchema
	ArgTypeAny
)

// LookupKeyword returns the value associated with a keyword in the schema.
// The bool result reports whether the keyword is present at all.
func (s *Schema) LookupKeyword(keyword string) (PartValue, bool) {
	for _, part := range s.Parts {
		if part.Keyword.Name == keyword {
			return part.Value, true
		}
	}
	return nil, false
}

// IsBoolSchema reports whether s is one of the boolean schemas
// true or false, and which one it is.
func (s *Schema) IsBoolSchema() (isBoolSchema, isTrueSchema bool) {
	for _, part := range s.Parts {
		if part.Keyword == &SchemaKeyword {
			continue
		}
		if part.Keyword != &BoolKeyword {
			return false, false
		}
		isBoolSchema = true
		isTrueSchema = bool(part.Value.(PartBool))
	}
	return isBoolSchema, isTrueSchema
}
