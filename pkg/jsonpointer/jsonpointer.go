// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonpointer implements JSON pointers for schemas and instances.
// This is not a fully general package.
package jsonpointer

import (
	"fmt"
	"strings"

	"github.com/altshiftab/eventschema/internal/argtype"
	"github.com/altshiftab/eventschema/pkg/types"
)

// Split returns the decoded tokens of pointer.
// A leading '#' is permitted, as in a schema path.
func Split(pointer string) ([]string, error) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("JSON pointer %q does not start with '/'", pointer)
	}
	toks := strings.Split(pointer[1:], "/")
	for i, tok := range toks {
		toks[i] = decodeToken(tok)
	}
	return toks, nil
}

// DerefSchema takes a JSON pointer and a root schema and returns
// the schema to which the pointer refers.
// The pointer may be the schema path of a validation error
// with its final keyword removed.
func DerefSchema(root *types.Schema, pointer string) (*types.Schema, error) {
	toks, err := Split(pointer)
	if err != nil {
		return nil, err
	}

	s := root
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		found := false
		for _, part := range s.Parts {
			if part.Keyword.Name != tok {
				continue
			}
			found = true

			switch part.Keyword.ArgType {
			case types.ArgTypeSchema:
				s = part.Value.(types.PartSchema).S

			case types.ArgTypeMapSchema:
				i++
				if i >= len(toks) {
					return nil, fmt.Errorf("when dereferencing pointer %q expected map key after %q", pointer, tok)
				}
				tok = toks[i]
				m := part.Value.(types.PartMapSchema)
				ms, ok := m[tok]
				if !ok {
					return nil, fmt.Errorf("when dereferencing pointer %q map key %q not present", pointer, tok)
				}
				s = ms

			default:
				return nil, fmt.Errorf("when dereferencing pointer %q unexpected part type %s", pointer, argtype.Name(part.Keyword.ArgType))
			}

			break
		}
		if !found {
			return nil, fmt.Errorf("when dereferencing pointer %q keyword %q not present", pointer, tok)
		}
	}

	return s, nil
}

// DerefKeyword resolves the schema path of a validation error,
// such as "#/properties/events/required", to the schema holding
// the keyword and the keyword's value.
func DerefKeyword(root *types.Schema, schemaPath string) (*types.Schema, types.PartValue, error) {
	parent, keyword, ok := cutLast(schemaPath)
	if !ok {
		return nil, nil, fmt.Errorf("schema path %q has no keyword", schemaPath)
	}
	s, err := DerefSchema(root, parent)
	if err != nil {
		return nil, nil, err
	}
	pv, ok := s.LookupKeyword(keyword)
	if !ok {
		return nil, nil, fmt.Errorf("schema path %q: keyword %q not present", schemaPath, keyword)
	}
	return s, pv, nil
}

// cutLast splits off the final token of pointer.
func cutLast(pointer string) (parent, last string, ok bool) {
	i := strings.LastIndexByte(pointer, '/')
	if i < 0 {
		return "", "", false
	}
	return pointer[:i], decodeToken(pointer[i+1:]), true
}

// EncodeToken escapes a token for use in a JSON pointer.
func EncodeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// decodeToken unmangles a token in a JSON pointer.
func decodeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}
