// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "strings"

// isValidUUID reports whether s is a UUID,
// optionally with a urn:uuid: prefix.
func isValidUUID(s string) bool {
	if len(s) >= len("urn:uuid:") && strings.EqualFold(s[:len("urn:uuid:")], "urn:uuid:") {
		s = s[len("urn:uuid:"):]
	}

	hexOctets := func(want int) bool {
		if len(s) < 2*want {
			return false
		}
		for i := range 2 * want {
			if !isHex(s[i]) {
				return false
			}
		}
		s = s[2*want:]
		return true
	}

	dash := func() bool {
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
		return true
	}

	for i, n := range []int{4, 2, 2, 2, 6} {
		if i > 0 && !dash() {
			return false
		}
		if !hexOctets(n) {
			return false
		}
	}
	return len(s) == 0
}
