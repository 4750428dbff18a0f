// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"maps"
	"reflect"
	"slices"
	"time"
)

// instanceObject returns the properties of an object instance.
// JSON objects are map[string]any; other maps with string keys
// are converted using reflection.
// The bool result reports whether instance is an object.
func instanceObject(instance any) (map[string]any, bool) {
	switch v := instance.(type) {
	case map[string]any:
		return v, v != nil
	case *map[string]any:
		if v == nil {
			return nil, false
		}
		return *v, *v != nil
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// instanceKeys returns the sorted property names of an object.
func instanceKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

// instanceArray returns the elements of an array instance.
// JSON arrays are []any; other slices and arrays
// are converted using reflection.
// The bool result reports whether instance is an array.
func instanceArray(instance any) ([]any, bool) {
	switch v := instance.(type) {
	case []any:
		return v, true
	case nil, string:
		return nil, false
	}

	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	a := make([]any, rv.Len())
	for i := range a {
		a[i] = rv.Index(i).Interface()
	}
	return a, true
}

// normalize converts a value to its JSON form for comparison:
// numbers become float64, maps become map[string]any,
// and slices become []any.
func normalize(v any) any {
	if f, ok := instanceFloat(v); ok {
		return f
	}
	switch v := v.(type) {
	case nil, bool, string:
		return v
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}
	if m, ok := instanceObject(v); ok {
		n := make(map[string]any, len(m))
		for k, e := range m {
			n[k] = normalize(e)
		}
		return n
	}
	if a, ok := instanceArray(v); ok {
		n := make([]any, len(a))
		for i, e := range a {
			n[i] = normalize(e)
		}
		return n
	}
	return v
}

// equal reports whether two values are equal as JSON values.
// Numbers compare by value regardless of their Go type;
// there is no other coercion.
func equal(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}
