// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtype defines a few helpers for types.ArgType.
package argtype

import (
	"fmt"

	"github.com/altshiftab/eventschema/pkg/types"
)

// nameToString maps [types.ArgType] to a name used in
// builder method names and messages.
var nameToString = map[types.ArgType]string{
	types.ArgTypeBool:            "Bool",
	types.ArgTypeString:          "String",
	types.ArgTypeStrings:         "Strings",
	types.ArgTypeStringOrStrings: "StringOrStrings",
	types.ArgTypeInt:             "Int",
	types.ArgTypeFloat:           "Float",
	types.ArgTypeSchema:          "Schema",
	types.ArgTypeMapSchema:       "MapSchema",
	types.ArgTypeAny:             "Any",
}

// Name returns the name of a [types.ArgType].
func Name(at types.ArgType) string {
	if n, ok := nameToString[at]; ok {
		return n
	}
	panic(fmt.Sprintf("unexpected ArgType value %d", at))
}
