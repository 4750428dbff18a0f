// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draft07 defines the keywords of the subset of
// JSON schema draft 7 supported by this module.
//
// The validating keywords are type, required, additionalProperties,
// properties, minItems, items, minimum, maximum, format and enum.
// $id, title, description, $comment, default and examples are
// accepted as annotations, as is any unrecognized keyword.
// References ($ref, definitions) and the combining keywords
// (allOf, anyOf, oneOf, not, if) are not supported;
// a schema that uses $ref or a combining keyword is rejected.
package draft07

import (
	"github.com/altshiftab/eventschema/pkg/types"
)

// SchemaID is the value of the $schema keyword for this vocabulary.
const SchemaID = "http://json-schema.org/draft-07/schema"

// Vocabulary is the draft 7 subset vocabulary.
// It is registered as the default vocabulary.
var Vocabulary = &types.Vocabulary{
	Name:     "draft7",
	Schema:   SchemaID,
	Keywords: keywordMap,
	Cmp:      keywordCmp,
}

func init() {
	types.RegisterVocabulary(Vocabulary, true)
}
