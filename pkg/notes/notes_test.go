// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notes

import "testing"

func TestHalted(t *testing.T) {
	var n Notes
	if n.Halted() {
		t.Error("n.Halted() == true for empty notes")
	}
	n.Set("type", "string")
	if n.Halted() {
		t.Error("n.Halted() == true with an unrelated note")
	}
	n.Set(Halt, false)
	if n.Halted() {
		t.Error("n.Halted() == true after setting false")
	}
	n.Set(Halt, true)
	if !n.Halted() {
		t.Error("n.Halted() == false after setting true")
	}
	n.Set(Halt, "yes")
	if n.Halted() {
		t.Error("n.Halted() == true for a non-bool note")
	}
}
