// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/altshiftab/eventschema/pkg/format"
	"github.com/altshiftab/eventschema/pkg/types"
)

func TestMatchType(t *testing.T) {
	tests := []struct {
		typ      string
		instance any
		want     bool
	}{
		{"null", nil, true},
		{"null", false, false},
		{"boolean", true, true},
		{"boolean", 0.0, false},
		{"string", "", true},
		{"string", []byte("x"), false},
		{"number", 1.5, true},
		{"number", int8(-1), true},
		{"number", json.Number("12"), true},
		{"number", "1", false},
		{"integer", 3.0, true},
		{"integer", 3.5, false},
		{"integer", uint64(7), true},
		{"integer", math.Inf(1), false},
		{"object", map[string]any{}, true},
		{"object", map[string]int{"a": 1}, true},
		{"object", map[int]any{}, false},
		{"object", map[string]any(nil), false},
		{"array", []any{}, true},
		{"array", []int{1}, true},
		{"array", [2]string{}, true},
		{"array", "ab", false},
		{"array", nil, false},
	}
	for _, test := range tests {
		if got := matchType(test.typ, test.instance); got != test.want {
			t.Errorf("matchType(%q, %#v) = %t, want %t", test.typ, test.instance, got, test.want)
		}
	}
}

func TestCheckType(t *testing.T) {
	for _, arg := range []types.PartStringOrStrings{
		{String: "object"},
		{Strings: []string{"string", "null"}},
	} {
		if err := CheckType(arg); err != nil {
			t.Errorf("CheckType(%v): %v", arg, err)
		}
	}
	for _, arg := range []types.PartStringOrStrings{
		{String: "int"},
		{Strings: []string{}},
		{Strings: []string{"string", "float"}},
	} {
		if err := CheckType(arg); err == nil {
			t.Errorf("CheckType(%v) succeeded", arg)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{1.0, 1.0, true},
		{1.0, int64(1), true},
		{uint8(2), 2.0, true},
		{1.0, "1", false},
		{"v1", "v1", true},
		{"v1", "V1", false},
		{nil, nil, true},
		{nil, false, false},
		{true, true, true},
		{[]any{1.0, "a"}, []any{int32(1), "a"}, true},
		{[]any{1.0, "a"}, []any{"a", 1.0}, false},
		{map[string]any{"a": 1.0}, map[string]int{"a": 1}, true},
		{map[string]any{"a": 1.0}, map[string]any{"a": 1.0, "b": nil}, false},
	}
	for _, test := range tests {
		if got := equal(test.a, test.b); got != test.want {
			t.Errorf("equal(%#v, %#v) = %t, want %t", test.a, test.b, got, test.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{-5, "-5"},
		{1.5, "1.5"},
		{9223372036854775807, "9223372036854775808"},
		{1e21, "1e+21"},
		{0.0001, "0.0001"},
	}
	for _, test := range tests {
		if got := formatNumber(test.f); got != test.want {
			t.Errorf("formatNumber(%v) = %q, want %q", test.f, got, test.want)
		}
	}
}

func TestInstanceKeys(t *testing.T) {
	m, ok := instanceObject(map[string]bool{"b": true, "a": false, "c": true})
	if !ok {
		t.Fatal("instanceObject rejected a map[string]bool")
	}
	keys := instanceKeys(m)
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("instanceKeys = %q", keys)
	}
}

func TestMinimumNaN(t *testing.T) {
	state := &types.ValidationState{}
	nan := math.NaN()
	if err := ValidateMinimum(0, nan, state); err == nil {
		t.Error("NaN satisfied minimum")
	}
	if err := ValidateMaximum(0, nan, state); err == nil {
		t.Error("NaN satisfied maximum")
	}
	if err := ValidateMinimum(0, "x", state); err != nil {
		t.Errorf("minimum applied to a string: %v", err)
	}
}

func TestMinimumMessage(t *testing.T) {
	state := &types.ValidationState{}
	err := ValidateMinimum(0, -5.0, state)
	ve, ok := err.(*types.ValidationError)
	if !ok {
		t.Fatalf("got %T, want *ValidationError", err)
	}
	if ve.Message != "must be >= 0" || ve.Keyword != "minimum" || ve.SchemaPath != "#/minimum" {
		t.Errorf("got %+v", ve)
	}
	if ve.Params["comparison"] != ">=" || ve.Params["limit"] != 0.0 {
		t.Errorf("params %v", ve.Params)
	}
}

func TestCheckFormatAndEnum(t *testing.T) {
	if err := CheckFormat("date-time"); err != nil {
		t.Error(err)
	}
	if err := CheckFormat("phone"); err == nil {
		t.Error("CheckFormat(\"phone\") succeeded")
	}
	if err := CheckEnum(types.PartAny{V: []any{"v1"}}); err != nil {
		t.Error(err)
	}
	if err := CheckEnum(types.PartAny{V: "v1"}); err == nil {
		t.Error("CheckEnum accepted a string")
	}
	if err := CheckMinItems(-1); err == nil {
		t.Error("CheckMinItems accepted -1")
	}
}

func TestValidateFormatTiers(t *testing.T) {
	full := &types.ValidationState{}
	fast := &types.ValidationState{Opts: &types.ValidateOpts{Formats: format.Fast}}
	// February 30 passes only the fast check.
	const date = "2025-02-30"
	if err := ValidateFormat("date", date, full); err == nil {
		t.Errorf("full tier accepted %q", date)
	}
	if err := ValidateFormat("date", date, fast); err != nil {
		t.Errorf("fast tier rejected %q: %v", date, err)
	}
	if err := ValidateFormat("date", 12.0, full); err != nil {
		t.Errorf("date format applied to a number: %v", err)
	}
}
