// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validerr

import (
	"errors"
	"testing"
)

func TestAddError(t *testing.T) {
	a := &ValidationError{InstancePath: "/a", Message: "first"}
	b := &ValidationError{Message: "second"}

	var err error
	AddError(&err, nil)
	if err != nil {
		t.Fatalf("adding nil: %v", err)
	}
	AddError(&err, a)
	if err != a {
		t.Fatalf("got %v, want the first error", err)
	}
	AddError(&err, &ValidationErrors{Errs: []*ValidationError{b}})
	if got := List(err); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("List = %v", got)
	}
	if got, want := err.Error(), "/a: first\n(root): second"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	fatal := errors.New("stop")
	AddError(&err, fatal)
	if err != fatal || IsValidationError(err) {
		t.Fatalf("got %v, want the non-validation error", err)
	}
	AddError(&err, a)
	if err != fatal {
		t.Errorf("validation error replaced %v", fatal)
	}
	other := errors.New("again")
	AddError(&err, other)
	if !errors.Is(err, fatal) || !errors.Is(err, other) {
		t.Errorf("got %v, want both errors", err)
	}
}

func TestList(t *testing.T) {
	if List(nil) != nil {
		t.Error("List(nil) is not nil")
	}
	if List(errors.New("x")) != nil {
		t.Error("List of a plain error is not nil")
	}
}
