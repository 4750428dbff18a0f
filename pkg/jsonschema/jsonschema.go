// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema loads schemas from JSON or YAML.
// All schemas use the draft 7 subset vocabulary of [draft07].
//
// A schema that cannot be used is rejected when it is loaded,
// with an error matching [ErrInvalidSchema],
// so that no document is ever validated against it.
package jsonschema

import (
	"errors"
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/altshiftab/eventschema/pkg/draft07"
	"github.com/altshiftab/eventschema/pkg/types"
)

type Schema = types.Schema

// ErrInvalidSchema is matched by every error
// returned for a schema that cannot be loaded.
var ErrInvalidSchema = errors.New("invalid schema")

// New parses a JSON schema.
func New(data []byte) (*Schema, error) {
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, invalid(fmt.Errorf("json unmarshal: %w", err))
	}
	return FromValue(v)
}

// NewYAML parses a schema written in YAML.
func NewYAML(data []byte) (*Schema, error) {
	v, err := DecodeYAML(data)
	if err != nil {
		return nil, invalid(fmt.Errorf("yaml unmarshal: %w", err))
	}
	return FromValue(v)
}

// FromValue builds a schema from a value already decoded
// from JSON or YAML.
func FromValue(v any) (*Schema, error) {
	s, err := types.SchemaFromJSON(draft07.SchemaID, v)
	if err != nil {
		return nil, invalid(err)
	}
	return s, nil
}

// invalid marks err as an invalid schema error.
func invalid(err error) error {
	return motmedelErrors.NewWithTrace(fmt.Errorf("%w: %w", ErrInvalidSchema, err))
}
