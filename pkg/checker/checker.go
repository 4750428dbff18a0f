// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checker binds a schema and checks documents against it.
//
// A [Checker] holds no state beyond its schema and options,
// so one Checker may be used by many goroutines at once.
package checker

import (
	"fmt"

	"github.com/altshiftab/eventschema/internal/appschema"
	"github.com/altshiftab/eventschema/internal/validerr"
	"github.com/altshiftab/eventschema/pkg/format"
	"github.com/altshiftab/eventschema/pkg/jsonschema"
	"github.com/altshiftab/eventschema/pkg/types"
)

// ValidationError is one violated constraint.
type ValidationError = validerr.ValidationError

// Result is the outcome of checking one document.
type Result struct {
	// Valid reports whether the document satisfies the schema.
	Valid bool `json:"valid"`
	// Errors lists every violation in a deterministic order.
	// It is nil when Valid is true.
	Errors []*ValidationError `json:"errors"`
}

// Checker checks documents against a bound schema.
type Checker struct {
	schema *types.Schema
	opts   types.ValidateOpts
}

// Option configures a [Checker].
type Option func(*Checker)

// WithFormats selects the strictness of the format keyword.
// The default is [format.Full].
func WithFormats(tier format.Tier) Option {
	return func(c *Checker) {
		c.opts.Formats = tier
	}
}

// WithMaxDepth limits how deeply subschemas may nest during
// a check. The default is [types.DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(c *Checker) {
		c.opts.MaxDepth = depth
	}
}

// New returns a Checker for s.
// s must not be modified afterward.
func New(s *types.Schema, opts ...Option) *Checker {
	c := &Checker{schema: s}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForApp returns a Checker for one of the built-in application
// schemas, "productions" or "events".
func ForApp(name string, opts ...Option) (*Checker, error) {
	s, err := appschema.Load(name)
	if err != nil {
		return nil, err
	}
	return New(s, opts...), nil
}

// Schema returns the bound schema.
func (c *Checker) Schema() *types.Schema {
	return c.schema
}

// Check validates document, which is a value as decoded from JSON.
// Violations are reported in the Result, not as an error.
// The error is non-nil only if the check could not complete,
// such as when nesting exceeds the depth limit.
func (c *Checker) Check(document any) (*Result, error) {
	err := c.schema.ValidateWithOpts(document, &c.opts)
	if err == nil {
		return &Result{Valid: true}, nil
	}
	if !validerr.IsValidationError(err) {
		return nil, err
	}
	return &Result{Errors: validerr.List(err)}, nil
}

// CheckJSON decodes a JSON document and checks it.
// A document that does not decode is an error, not a Result.
func (c *Checker) CheckJSON(data []byte) (*Result, error) {
	v, err := jsonschema.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON document: %w", err)
	}
	return c.Check(v)
}

// CheckYAML decodes a YAML document and checks it.
func (c *Checker) CheckYAML(data []byte) (*Result, error) {
	v, err := jsonschema.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("decoding YAML document: %w", err)
	}
	return c.Check(v)
}
