// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder_test

import (
	"testing"

	"github.com/altshiftab/eventschema/pkg/builder"
	"github.com/altshiftab/eventschema/pkg/draft07"
	"github.com/altshiftab/eventschema/pkg/types"
)

func TestWrongArgType(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *builder.Builder)
		want string
	}{
		{
			"string for int",
			func(b *builder.Builder) { b.AddString(draft07.KeywordMinItems, "1") },
			"AddString called for minItems which expects Int",
		},
		{
			"float for schema",
			func(b *builder.Builder) { b.AddFloat(draft07.KeywordItems, 1) },
			"AddFloat called for items which expects Schema",
		},
		{
			"strings for any",
			func(b *builder.Builder) { b.AddStrings(draft07.KeywordEnum, []string{"a"}) },
			"AddStrings called for enum which expects Any",
		},
		{
			"enum not array",
			func(b *builder.Builder) { b.AddAny(draft07.KeywordEnum, "a") },
			"enum: argument is string, must be an array",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("no panic")
				}
				if got, _ := r.(string); got != test.want {
					t.Errorf("panic %q, want %q", got, test.want)
				}
			}()
			test.fn(builder.New(draft07.Vocabulary))
		})
	}
}

func TestBuildIsIndependent(t *testing.T) {
	b := builder.New(draft07.Vocabulary)
	b.AddString(draft07.KeywordType, "string")
	first := b.Build()
	b.AddString(draft07.KeywordFormat, "email")
	second := b.Build()

	if len(first.Parts) != 1 || len(second.Parts) != 2 {
		t.Fatalf("got %d and %d parts, want 1 and 2", len(first.Parts), len(second.Parts))
	}
	if err := first.Validate("not an address"); err != nil {
		t.Errorf("first schema: %v", err)
	}
	if err := second.Validate("not an address"); err == nil {
		t.Error("second schema accepted a bad email")
	}
}

func TestBuildSorts(t *testing.T) {
	s := builder.New(draft07.Vocabulary).
		AddFloat(draft07.KeywordMaximum, 10).
		AddString(draft07.KeywordTitle, "count").
		AddString(draft07.KeywordType, "integer").
		Build()
	var names []string
	for _, p := range s.Parts {
		names = append(names, p.Keyword.Name)
	}
	if len(names) != 3 || names[0] != "type" || names[1] != "maximum" || names[2] != "title" {
		t.Errorf("keyword order %q", names)
	}

	// A type mismatch is reported alone.
	errs := types.ValidationErrorList(s.Validate(10.5))
	if len(errs) != 1 || errs[0].Keyword != "type" {
		t.Errorf("got %v, want one type error", errs)
	}
}
