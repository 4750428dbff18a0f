// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"errors"
	"testing"

	"github.com/altshiftab/eventschema/pkg/draft07"
	"github.com/altshiftab/eventschema/pkg/types"
)

func mustSchema(t *testing.T, v map[string]any) *types.Schema {
	t.Helper()
	s, err := types.SchemaFromJSON(draft07.SchemaID, v)
	if err != nil {
		t.Fatalf("SchemaFromJSON: %v", err)
	}
	return s
}

func TestValidateTypeUnderProperties(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"properties": map[string]any{
			"name": map[string]any{
				"type": "string",
			},
		},
	})

	err := s.Validate(map[string]any{"name": 123.0})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected single ValidationError, got %T: %v", err, err)
	}
	if ve.SchemaPath != "#/properties/name/type" {
		t.Errorf("schemaPath: got %q, want %q", ve.SchemaPath, "#/properties/name/type")
	}
	if ve.InstancePath != "/name" {
		t.Errorf("instancePath: got %q, want %q", ve.InstancePath, "/name")
	}
	if ve.Message != "must be string" {
		t.Errorf("message: got %q", ve.Message)
	}
	if got, want := ve.Error(), "/name: must be string"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidateRequiredMissing(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"$schema":  draft07.SchemaID + "#",
		"required": []any{"name", "start"},
	})

	errs := types.ValidationErrorList(s.Validate(map[string]any{}))
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	for i, name := range []string{"name", "start"} {
		ve := errs[i]
		if ve.InstancePath != "" || ve.SchemaPath != "#/required" || ve.Keyword != "required" {
			t.Errorf("error %d: got %+v", i, ve)
		}
		if ve.Params["missingProperty"] != name {
			t.Errorf("error %d: missingProperty %v, want %q", i, ve.Params["missingProperty"], name)
		}
	}
	if got, want := errs[0].Error(), "(root): must have required property 'name'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidateTypeHalts(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"type":    "integer",
		"minimum": 0.0,
		"enum":    []any{1.0, 2.0},
	})
	errs := types.ValidationErrorList(s.Validate("x"))
	if len(errs) != 1 || errs[0].Keyword != "type" {
		t.Fatalf("got %v, want a single type error", errs)
	}

	// Sibling keywords still run when the type matches.
	errs = types.ValidationErrorList(s.Validate(-5.0))
	if len(errs) != 2 || errs[0].Keyword != "minimum" || errs[1].Keyword != "enum" {
		t.Fatalf("got %v, want minimum and enum errors", errs)
	}
}

func TestValidateEscapedPaths(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"properties": map[string]any{
			"a/b": map[string]any{
				"properties": map[string]any{
					"c~d": map[string]any{"type": "null"},
				},
			},
		},
	})
	errs := types.ValidationErrorList(s.Validate(map[string]any{
		"a/b": map[string]any{"c~d": true},
	}))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if got, want := errs[0].InstancePath, "/a~1b/c~0d"; got != want {
		t.Errorf("instancePath %q, want %q", got, want)
	}
	if got, want := errs[0].SchemaPath, "#/properties/a~1b/properties/c~0d/type"; got != want {
		t.Errorf("schemaPath %q, want %q", got, want)
	}
}

func TestValidateFalseSchema(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"items": false,
	})
	errs := types.ValidationErrorList(s.Validate([]any{1.0}))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if ve := errs[0]; ve.Keyword != "false schema" || ve.InstancePath != "/0" || ve.SchemaPath != "#/items" {
		t.Errorf("got %+v", ve)
	}
	if err := s.Validate([]any{}); err != nil {
		t.Errorf("empty array: %v", err)
	}
}

func TestValidateMaxDepth(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"items": map[string]any{
			"items": map[string]any{
				"items": map[string]any{},
			},
		},
	})
	doc := []any{[]any{[]any{1.0}}}

	if err := s.Validate(doc); err != nil {
		t.Fatalf("default depth: %v", err)
	}
	err := s.ValidateWithOpts(doc, &types.ValidateOpts{MaxDepth: 2})
	if !errors.Is(err, types.ErrMaxDepth) {
		t.Fatalf("got %v, want ErrMaxDepth", err)
	}
	if types.IsValidationError(err) {
		t.Error("depth error reported as a validation error")
	}
}

func TestValidateOtherGoTypes(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"n":    map[string]any{"type": "integer", "maximum": 10.0},
			"tags": map[string]any{"type": "array", "minItems": 2.0},
		},
	})
	ok := map[string]any{"n": int32(3), "tags": []string{"a", "b"}}
	if err := s.Validate(ok); err != nil {
		t.Errorf("Validate(%v): %v", ok, err)
	}
	bad := map[string]any{"n": uint8(11), "tags": [1]string{"a"}}
	if errs := types.ValidationErrorList(s.Validate(bad)); len(errs) != 2 {
		t.Errorf("Validate(%v) = %v, want 2 errors", bad, errs)
	}
}

func TestSchemaFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"unknown version", map[string]any{"$schema": "http://example.com/schema"}},
		{"bad type name", map[string]any{"type": "int"}},
		{"empty type list", map[string]any{"type": []any{}}},
		{"negative minItems", map[string]any{"minItems": -1.0}},
		{"fractional minItems", map[string]any{"minItems": 1.5}},
		{"unknown format", map[string]any{"format": "phone"}},
		{"enum not array", map[string]any{"enum": "v1"}},
		{"required not strings", map[string]any{"required": []any{1.0}}},
		{"nested", map[string]any{"properties": map[string]any{"a": map[string]any{"type": 3.0}}}},
		{"not a schema", "object"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := types.SchemaFromJSON(draft07.SchemaID, test.v); err == nil {
				t.Errorf("SchemaFromJSON(%v) succeeded, want error", test.v)
			}
		})
	}
}

func TestSchemaFromJSONUnknownKeyword(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"x-owner": "events team",
		"type":    "string",
	})
	if pv, ok := s.LookupKeyword("x-owner"); !ok || pv.(types.PartAny).V != "events team" {
		t.Errorf("x-owner: got %v, %t", pv, ok)
	}
	if err := s.Validate("a"); err != nil {
		t.Error(err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	const in = `{"type":"object","required":["name"],"properties":{"n":{"maximum":9223372036854775807},"v":{"enum":["v1",2]}},"title":"T"}`
	var s types.Schema
	if err := s.UnmarshalJSON([]byte(in)); err != nil {
		t.Fatal(err)
	}
	out, err := s.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"type":"object","required":["name"],"properties":{"n":{"maximum":9223372036854775808},"v":{"enum":["v1",2]}},"title":"T"}`
	if string(out) != want {
		t.Errorf("got  %s\nwant %s", out, want)
	}
}

func TestWalk(t *testing.T) {
	s := mustSchema(t, map[string]any{
		"properties": map[string]any{
			"b":   map[string]any{"items": map[string]any{}},
			"a":   map[string]any{},
			"c/d": map[string]any{},
		},
		"additionalProperties": false,
	})
	var paths []string
	s.Walk(func(path string, _ *types.Schema) bool {
		paths = append(paths, path)
		return true
	})
	want := []string{"", "/additionalProperties", "/properties/a", "/properties/b", "/properties/b/items", "/properties/c~1d"}
	if len(paths) != len(want) {
		t.Fatalf("got %q, want %q", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: got %q, want %q", i, paths[i], want[i])
		}
	}
}
