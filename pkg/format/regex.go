// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "regexp"

// isValidRegex reports whether s is a regular expression
// that compiles and does not use the \Z anchor.
func isValidRegex(s string) bool {
	if hasUnescapedZ(s) {
		return false
	}
	_, err := regexp.Compile(s)
	return err == nil
}

// hasUnescapedZ reports whether s contains \Z
// where the backslash is not itself escaped.
func hasUnescapedZ(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			continue
		}
		if i+1 < len(s) && s[i+1] == 'Z' {
			return true
		}
		// Skip the escaped character.
		i++
	}
	return false
}
