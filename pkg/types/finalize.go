// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"slices"
)

// Finalize sorts the schema keywords into the order required for validation.
// Normally there is no need to call this explicitly.
// It will be called automatically by a Builder or by the JSON unmarshaler.
func (s *Schema) Finalize(v *Vocabulary) {
	slices.SortStableFunc(s.Parts, func(a, b Part) int {
		return v.Cmp(a.Keyword.Name, b.Keyword.Name)
	})
}
