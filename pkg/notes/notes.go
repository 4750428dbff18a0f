// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notes defines a type that holds information passed
// between keywords during schema validation.
//
// The "type" keyword records a [Halt] note when the instance has
// the wrong type, so that keywords like "required" or "enum" are
// not evaluated against a value of the wrong shape.
package notes

// Halt is the name of a bool note. When a keyword sets it to true,
// no further keywords of the same schema are evaluated.
const Halt = "halt"

// Notes is a set of notes, each with a name and a value.
// The zero value is directly usable.
// Notes may not be used concurrently by multiple goroutines.
type Notes struct {
	m map[string]any
}

// Set adds a note, replacing any existing note with the same name.
func (n *Notes) Set(name string, val any) {
	if n.m == nil {
		n.m = make(map[string]any)
	}
	n.m[name] = val
}

// Halted reports whether the [Halt] note is set.
func (n *Notes) Halted() bool {
	v, ok := n.m[Halt]
	return ok && v == true
}
